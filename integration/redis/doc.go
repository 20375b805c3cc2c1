// Package redis exposes Redis Pub/Sub channels as cold streamkit
// observables, and provides client initialization with connection
// validation and retry logic.
//
// # Connecting
//
// All configuration is handled through the Config struct with
// environment variable mapping:
//
//	type Config struct {
//		ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"`
//		RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
//		ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
//	}
//
// Connect validates the URL (redis:// and rediss:// schemes), attempts
// the connection with retries, and verifies connectivity with a ping
// before returning the client:
//
//	client, err := redis.Connect(ctx, redis.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
// # Streaming
//
// Stream adapts Pub/Sub channels to the streamkit producer contract.
// Each subscription opens its own *redis.PubSub, so subscriptions stay
// fully independent: unsubscribing one closes only its own Pub/Sub.
//
//	feed := redis.Stream(client, "orders")
//	sub := feed.Subscribe(stream.Handlers[redis.Message]{
//		Next: func(msg redis.Message) {
//			log.Printf("channel=%s payload=%s", msg.Channel, msg.Payload)
//		},
//		Complete: func() { log.Println("feed closed") },
//	})
//	defer sub.Unsubscribe()
//
// The go-redis client reconnects dropped Pub/Sub connections
// internally; the stream completes only when its Pub/Sub is closed,
// which normally happens through the subscription's own teardown (in
// which case the completion is dropped as a post-unsubscribe signal).
//
// # Error Handling
//
// The package defines sentinel errors checkable with errors.Is:
//
//   - ErrEmptyConnectionURL: no connection URL was provided
//   - ErrFailedToParseConnString: the connection URL is malformed
//   - ErrRedisNotReady: Redis did not answer pings within the retry budget
//   - ErrHealthcheckFailed: a health check ping failed
package redis
