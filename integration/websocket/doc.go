// Package websocket exposes a websocket endpoint as a cold streamkit
// observable of raw message payloads.
//
// Each subscription dials its own connection: subscribing twice opens
// two connections, and unsubscribing closes only the subscription's
// own. The producer pushes every received message to Next, completes on
// a normal close frame, and routes any other read or dial failure to
// Error as a stream.Error wrapping the underlying cause.
//
// # Usage
//
//	feed := websocket.Stream(websocket.Config{URL: "wss://example.com/feed"})
//
//	sub := feed.Subscribe(stream.Handlers[[]byte]{
//		Next:  func(data []byte) { log.Printf("message: %s", data) },
//		Error: func(err error) { log.Printf("feed failed: %v", err) },
//		Complete: func() { log.Println("feed closed") },
//	})
//	defer sub.Unsubscribe()
//
// The teardown closes the connection, which also stops the read pump.
// Interpreting payloads (JSON decoding, framing) is left to the
// subscriber.
package websocket
