package stream

// observerHandle erases the observer's type parameter so Subscription
// can stay non-generic.
type observerHandle struct {
	unsubscribe    func()
	isUnsubscribed func() bool
}

// Subscription is the opaque handle returned by Subscribe. It closes
// over one specific observer; handles are never shared between
// subscriptions.
type Subscription struct {
	id       string
	observer observerHandle
}

// ID returns the unique identifier assigned to this subscription,
// useful for correlating log lines.
func (s *Subscription) ID() string {
	return s.id
}

// Unsubscribe ends the subscription and runs the producer's teardown.
// Idempotent: repeated calls are no-ops.
func (s *Subscription) Unsubscribe() {
	s.observer.unsubscribe()
}

// IsUnsubscribed reports whether the subscription has ended.
func (s *Subscription) IsUnsubscribed() bool {
	return s.observer.isUnsubscribed()
}
