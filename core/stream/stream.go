package stream

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// Teardown is a zero-argument cleanup routine supplied by a producer.
// It runs exactly once when its subscription ends, whether through a
// terminal signal or an explicit Unsubscribe.
type Teardown func()

// Producer is the routine an Observable runs once per subscription. It
// receives a fresh observer, pushes zero or more values through it, and
// may return a Teardown for releasing whatever resources it acquired.
// A nil return means there is nothing to clean up.
//
// A producer may emit synchronously before returning (see From) or
// hand the observer to a goroutine, timer, or I/O callback and emit
// later. The observer drops signals that arrive after the subscription
// ended, but stopping the producer's own work is the teardown's job.
type Producer[T any] func(*Observer[T]) Teardown

// Observable is a cold, re-runnable source of a value sequence. It
// holds no subscriber list and no buffered history: every Subscribe
// call runs the producer from scratch against its own observer, fully
// isolated from any other subscription.
//
// Example:
//
//	numbers := stream.New(func(obs *stream.Observer[int]) stream.Teardown {
//	    obs.Next(1)
//	    obs.Next(2)
//	    obs.Complete()
//	    return nil
//	})
//
//	sub := numbers.Subscribe(stream.Handlers[int]{
//	    Next: func(v int) { fmt.Println(v) },
//	})
//	defer sub.Unsubscribe()
type Observable[T any] struct {
	producer Producer[T]
	logger   *slog.Logger
}

// Option configures an Observable.
type Option[T any] func(*Observable[T])

// WithLogger configures structured logging for subscription lifecycle
// diagnostics. Logging is disabled by default; the core never writes to
// an ambient output channel.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(o *Observable[T]) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New creates an Observable from a producer routine. The producer is
// not invoked here; it runs once per Subscribe call. A nil producer
// yields a stream that never emits and never terminates on its own.
func New[T any](producer Producer[T], opts ...Option[T]) *Observable[T] {
	o := &Observable[T]{
		producer: producer,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Subscribe runs the producer against a fresh observer and returns the
// handle for ending the subscription. The producer's returned teardown
// is stored on the observer before the handle is returned; if the
// producer terminated the subscription synchronously, the teardown runs
// immediately instead of being lost.
//
// The producer is trusted not to panic: a panic escapes Subscribe
// unrecovered, surfacing in whatever goroutine ran the producer.
func (o *Observable[T]) Subscribe(handlers Handlers[T]) *Subscription {
	observer := newObserver(handlers)
	id := uuid.New().String()

	o.logger.Debug("stream subscribed",
		slog.String("subscription_id", id))

	if o.producer != nil {
		observer.setTeardown(o.producer(observer))
	}

	return &Subscription{
		id:       id,
		observer: observerHandle{
			unsubscribe:    observer.Unsubscribe,
			isUnsubscribed: observer.IsUnsubscribed,
		},
	}
}
