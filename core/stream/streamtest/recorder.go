// Package streamtest provides helpers for asserting on stream
// deliveries in tests.
package streamtest

import (
	"sync"

	"github.com/dmitrymomot/streamkit/core/stream"
)

// Recorder captures every signal delivered to a subscription so tests
// can assert on exact values, ordering, and terminal behavior. It is
// safe for use with producers that emit from their own goroutines.
type Recorder[T any] struct {
	mu        sync.Mutex
	values    []T
	err       error
	errors    int
	completes int
}

// NewRecorder creates an empty Recorder.
func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{}
}

// Handlers returns a handler set that records into the Recorder. Pass
// it to Observable.Subscribe.
func (r *Recorder[T]) Handlers() stream.Handlers[T] {
	return stream.Handlers[T]{
		Next: func(v T) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.values = append(r.values, v)
		},
		Error: func(err error) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.err = err
			r.errors++
		},
		Complete: func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.completes++
		},
	}
}

// Values returns a copy of the recorded values in delivery order.
func (r *Recorder[T]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, len(r.values))
	copy(out, r.values)
	return out
}

// Err returns the recorded terminal error, or nil if none fired.
func (r *Recorder[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// ErrorCount returns how many times the Error handler fired.
func (r *Recorder[T]) ErrorCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errors
}

// CompleteCount returns how many times the Complete handler fired.
func (r *Recorder[T]) CompleteCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.completes
}

// Completed reports whether the Complete handler fired at least once.
func (r *Recorder[T]) Completed() bool {
	return r.CompleteCount() > 0
}
