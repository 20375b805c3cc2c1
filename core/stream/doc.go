// Package stream provides a minimal push-based event-stream primitive:
// cold observables that run a producer routine once per subscription,
// per-subscription observers with optional handler triples, and
// teardown-on-unsubscribe resource cleanup. It is the foundation for
// reactive pipelines over synchronous or asynchronous sources without
// committing consumers to any particular scheduling model.
//
// # Core Components
//
// Observable wraps a producer routine. It is stateless across
// subscriptions: no subscriber list, no buffered history. Every
// Subscribe call constructs a fresh Observer, runs the producer against
// it, and captures any teardown the producer returns.
//
// Observer is the consumer-side handle a producer pushes into. It
// enforces the lifecycle invariants: values and terminal signals are
// dropped after unsubscription, Error and Complete are mutually
// exclusive and each ends the subscription, and the teardown runs
// exactly once.
//
// Subscription is the opaque handle Subscribe returns; its Unsubscribe
// method is idempotent and safe to call from any goroutine.
//
// Handlers carries up to three optional callbacks (Next, Error,
// Complete). Nil callbacks are no-ops, so subscribers implement only
// the signals they care about.
//
// # Basic Usage
//
//	feed := stream.From([]int{1, 2, 3})
//
//	sub := feed.Subscribe(stream.Handlers[int]{
//	    Next:     func(v int) { fmt.Println("got", v) },
//	    Complete: func() { fmt.Println("done") },
//	})
//	sub.Unsubscribe()
//
// Custom producers implement any source that can push values, from
// tickers to network callbacks:
//
//	clock := stream.New(func(obs *stream.Observer[time.Time]) stream.Teardown {
//	    ticker := time.NewTicker(time.Second)
//	    done := make(chan struct{})
//	    go func() {
//	        for {
//	            select {
//	            case <-done:
//	                return
//	            case t := <-ticker.C:
//	                obs.Next(t)
//	            }
//	        }
//	    }()
//	    return func() {
//	        ticker.Stop()
//	        close(done)
//	    }
//	})
//
// # Cold Streams
//
// Producers run once per Subscribe call with no shared state between
// runs. Re-subscribing re-runs the producer from scratch. There is no
// multicasting, replay, or backpressure; a producer that must fan out
// to many consumers over one underlying resource belongs a layer above
// this package.
//
// # Concurrency
//
// The package has no built-in scheduler. A producer may emit
// synchronously during Subscribe (as From does) or from goroutines it
// starts itself. Observer methods are safe for concurrent use and
// Unsubscribe is idempotent even under concurrent or re-entrant calls,
// but concurrent Next calls are not serialized: ordering among them is
// the producer's responsibility.
//
// Cancellation is cooperative. Unsubscribing silently drops any
// further signals, but the producer's own work keeps running unless
// its teardown stops it; long-running producers should also poll
// Observer.IsUnsubscribed.
//
// # Error Handling
//
// Stream failure is data, not a raised fault: producers pass an error
// value (typically stream.Error, which carries a message, an optional
// code, and an optional wrapped cause) to Observer.Error, and the
// subscription terminates after the Error handler fires. Signals
// arriving after termination are documented no-ops. A panic inside a
// producer routine is outside the protocol and propagates unrecovered.
//
// # Logging
//
// The core writes to no ambient output channel. Subscription lifecycle
// diagnostics are emitted at debug level only when a logger is injected
// via WithLogger.
package stream
