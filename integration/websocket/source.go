package websocket

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/dmitrymomot/streamkit/core/stream"
)

// Config holds websocket dial settings. Designed for environment-based
// configuration using popular env parsing libraries.
type Config struct {
	URL              string        `env:"WS_URL,required"`
	HandshakeTimeout time.Duration `env:"WS_HANDSHAKE_TIMEOUT" envDefault:"10s"`
}

// Stream returns a cold observable over the endpoint's messages. The
// dial happens inside the producer, once per subscription; a dial
// failure terminates that subscription with an error without affecting
// any other.
func Stream(cfg Config, opts ...stream.Option[[]byte]) *stream.Observable[[]byte] {
	return stream.New(func(obs *stream.Observer[[]byte]) stream.Teardown {
		dialer := &websocket.Dialer{HandshakeTimeout: cfg.HandshakeTimeout}

		conn, resp, err := dialer.Dial(cfg.URL, nil)
		if err != nil {
			if resp != nil && resp.Body != nil {
				_ = resp.Body.Close()
			}
			obs.Error(stream.NewError("websocket dial failed").WithCause(err))
			return nil
		}

		go func() {
			for {
				_, data, err := conn.ReadMessage()
				if err != nil {
					if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
						obs.Complete()
					} else {
						// Includes the read error raised by the
						// teardown closing the connection; dropped
						// post-unsubscribe like any other signal.
						obs.Error(stream.NewError("websocket read failed").WithCause(err))
					}
					return
				}
				obs.Next(data)
			}
		}()

		return func() {
			_ = conn.Close()
		}
	}, opts...)
}
