package redis

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/streamkit/core/stream"
)

// Message is the value emitted for each received Pub/Sub message.
type Message struct {
	Channel string
	Payload string
}

// Stream returns a cold observable over the given Pub/Sub channels.
// Each subscription opens its own *redis.PubSub and pumps its messages
// to the subscriber; the teardown closes that Pub/Sub, which also stops
// the pump goroutine. The stream completes if the Pub/Sub is closed
// out from under an active subscription.
func Stream(client *redis.Client, channels ...string) *stream.Observable[Message] {
	return stream.New(func(obs *stream.Observer[Message]) stream.Teardown {
		ctx, cancel := context.WithCancel(context.Background())
		pubsub := client.Subscribe(ctx, channels...)

		go func() {
			for msg := range pubsub.Channel() {
				obs.Next(Message{
					Channel: msg.Channel,
					Payload: msg.Payload,
				})
			}
			// Channel closes when the Pub/Sub is closed. After an
			// unsubscribe this completion is silently dropped.
			obs.Complete()
		}()

		return func() {
			cancel()
			_ = pubsub.Close()
		}
	})
}
