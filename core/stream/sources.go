package stream

import (
	"log/slog"
	"time"
)

// From returns an Observable that synchronously emits every element of
// values in order, then completes. Each subscription replays the full
// sequence from scratch.
//
// The producer's teardown emits a debug diagnostic through the
// observable's logger; because the sequence completes before the
// producer returns, the diagnostic fires during Subscribe itself.
func From[T any](values []T, opts ...Option[T]) *Observable[T] {
	o := New[T](nil, opts...)
	o.producer = func(obs *Observer[T]) Teardown {
		for _, v := range values {
			obs.Next(v)
		}
		obs.Complete()

		return func() {
			o.logger.Debug("sequence stream disposed",
				slog.Int("values", len(values)))
		}
	}
	return o
}

// FromChannel returns an Observable that pumps ch, emitting each
// received value and completing when the channel closes. The pump
// goroutine starts at Subscribe and the teardown stops it; the channel
// itself stays open and owned by the caller.
//
// Note that a single channel has one stream of values: with multiple
// concurrent subscriptions each value reaches exactly one of them.
// Subscribe once per channel unless that is what you want.
func FromChannel[T any](ch <-chan T, opts ...Option[T]) *Observable[T] {
	o := New[T](nil, opts...)
	o.producer = func(obs *Observer[T]) Teardown {
		done := make(chan struct{})

		go func() {
			for {
				select {
				case <-done:
					return
				case v, ok := <-ch:
					if !ok {
						obs.Complete()
						return
					}
					obs.Next(v)
				}
			}
		}()

		return func() {
			close(done)
		}
	}
	return o
}

// Interval returns an Observable that emits an incrementing counter,
// starting at zero, every period. Emission runs on its own goroutine
// per subscription; the teardown stops the ticker. A non-positive
// period falls back to one second.
func Interval(period time.Duration, opts ...Option[int]) *Observable[int] {
	if period <= 0 {
		period = time.Second
	}

	o := New[int](nil, opts...)
	o.producer = func(obs *Observer[int]) Teardown {
		done := make(chan struct{})

		go func() {
			ticker := time.NewTicker(period)
			defer ticker.Stop()

			for i := 0; ; i++ {
				select {
				case <-done:
					return
				case <-ticker.C:
					obs.Next(i)
				}
			}
		}()

		return func() {
			close(done)
		}
	}
	return o
}
