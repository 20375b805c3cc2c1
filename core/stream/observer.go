package stream

import "sync"

// Handlers is the optional callback triple a subscriber supplies to
// Subscribe. Any subset of callbacks may be nil; absent callbacks are
// silently skipped when the corresponding signal is delivered.
type Handlers[T any] struct {
	// Next receives each emitted value.
	Next func(T)

	// Error receives the terminal failure payload, typically *Error.
	Error func(error)

	// Complete is called once when the stream ends successfully.
	Complete func()
}

// Observer is the per-subscription consumer-side handle. It forwards
// signals to the subscriber's handlers and enforces the subscription
// lifecycle: no delivery after unsubscription, Error and Complete are
// mutually exclusive, and the teardown runs exactly once.
//
// Observers are created by Observable.Subscribe and handed to the
// producer routine. A producer may call Next any number of times, then
// at most one of Error or Complete. Calls arriving after the
// subscription ended are dropped without signal.
//
// All methods are safe for concurrent use. The observer does not
// serialize concurrent Next calls from multiple goroutines; ordering
// among them is whatever the producer's own scheduling yields.
type Observer[T any] struct {
	handlers Handlers[T]

	mu           sync.Mutex
	unsubscribed bool
	teardown     Teardown
	teardownDone bool
}

func newObserver[T any](handlers Handlers[T]) *Observer[T] {
	return &Observer[T]{handlers: handlers}
}

// Next forwards value to the Next handler, if one was supplied.
// It is a no-op after the subscription ended.
func (o *Observer[T]) Next(value T) {
	o.mu.Lock()
	if o.unsubscribed {
		o.mu.Unlock()
		return
	}
	next := o.handlers.Next
	o.mu.Unlock()

	if next != nil {
		next(value)
	}
}

// Error delivers the terminal failure payload to the Error handler, if
// one was supplied, and ends the subscription. The handler fires at
// most once per subscription and never after Complete. It is a no-op
// after the subscription ended.
func (o *Observer[T]) Error(err error) {
	o.mu.Lock()
	if o.unsubscribed {
		o.mu.Unlock()
		return
	}
	o.unsubscribed = true
	handler := o.handlers.Error
	teardown := o.claimTeardownLocked()
	o.mu.Unlock()

	if handler != nil {
		handler(err)
	}
	if teardown != nil {
		teardown()
	}
}

// Complete notifies the Complete handler, if one was supplied, and ends
// the subscription. Symmetric to Error: fires at most once and never
// after Error. It is a no-op after the subscription ended.
func (o *Observer[T]) Complete() {
	o.mu.Lock()
	if o.unsubscribed {
		o.mu.Unlock()
		return
	}
	o.unsubscribed = true
	handler := o.handlers.Complete
	teardown := o.claimTeardownLocked()
	o.mu.Unlock()

	if handler != nil {
		handler()
	}
	if teardown != nil {
		teardown()
	}
}

// Unsubscribe ends the subscription and runs the producer's teardown.
// It is idempotent: only the first logical call takes effect, even
// under concurrent or re-entrant invocation. Terminal signals and
// explicit unsubscription share this single exit path, so the teardown
// never runs more than once regardless of how the subscription ended.
func (o *Observer[T]) Unsubscribe() {
	o.mu.Lock()
	o.unsubscribed = true
	teardown := o.claimTeardownLocked()
	o.mu.Unlock()

	if teardown != nil {
		teardown()
	}
}

// IsUnsubscribed reports whether the subscription has ended, either via
// Unsubscribe or a terminal signal. Producers running asynchronously
// should poll this to stop work cooperatively; values emitted after
// unsubscription are dropped either way.
func (o *Observer[T]) IsUnsubscribed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.unsubscribed
}

// setTeardown stores the producer's cleanup routine into the observer's
// set-once teardown cell. If the subscription already ended (a
// synchronous producer terminated before returning its teardown), the
// routine runs immediately so synchronous completion cannot leak the
// producer's resources.
func (o *Observer[T]) setTeardown(teardown Teardown) {
	if teardown == nil {
		return
	}

	o.mu.Lock()
	if o.teardown != nil {
		o.mu.Unlock()
		return
	}
	o.teardown = teardown
	run := o.unsubscribed && !o.teardownDone
	if run {
		o.teardownDone = true
	}
	o.mu.Unlock()

	if run {
		teardown()
	}
}

// claimTeardownLocked hands out the teardown for invocation, at most
// once. Callers must hold o.mu and invoke the returned routine after
// unlocking so a teardown that re-enters the observer cannot deadlock.
func (o *Observer[T]) claimTeardownLocked() Teardown {
	if o.teardown == nil || o.teardownDone {
		return nil
	}
	o.teardownDone = true
	return o.teardown
}
