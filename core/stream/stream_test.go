package stream_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/streamkit/core/stream"
	"github.com/dmitrymomot/streamkit/core/stream/streamtest"
)

func TestObservable_ColdSemantics(t *testing.T) {
	t.Parallel()

	t.Run("producer runs once per subscribe", func(t *testing.T) {
		t.Parallel()

		var runs int
		src := stream.New(func(obs *stream.Observer[int]) stream.Teardown {
			runs++
			obs.Next(runs)
			obs.Complete()
			return nil
		})

		assert.Equal(t, 0, runs, "producer must not run at construction")

		first := streamtest.NewRecorder[int]()
		src.Subscribe(first.Handlers())
		second := streamtest.NewRecorder[int]()
		src.Subscribe(second.Handlers())

		assert.Equal(t, 2, runs)
		assert.Equal(t, []int{1}, first.Values())
		assert.Equal(t, []int{2}, second.Values())
	})

	t.Run("subscriptions are isolated", func(t *testing.T) {
		t.Parallel()

		src, obs := capture[string](nil)
		a := src.Subscribe(stream.Handlers[string]{})
		firstObserver := *obs
		b := src.Subscribe(stream.Handlers[string]{})

		require.NotSame(t, firstObserver, *obs)

		a.Unsubscribe()
		assert.True(t, a.IsUnsubscribed())
		assert.False(t, b.IsUnsubscribed())
	})
}

func TestObservable_SubscriptionHandle(t *testing.T) {
	t.Parallel()

	t.Run("carries a unique id", func(t *testing.T) {
		t.Parallel()

		src := stream.New[int](nil)
		a := src.Subscribe(stream.Handlers[int]{})
		b := src.Subscribe(stream.Handlers[int]{})

		require.NotEmpty(t, a.ID())
		require.NotEmpty(t, b.ID())
		assert.NotEqual(t, a.ID(), b.ID())
	})

	t.Run("nil producer yields a silent stream", func(t *testing.T) {
		t.Parallel()

		src := stream.New[int](nil)
		rec := streamtest.NewRecorder[int]()

		var sub *stream.Subscription
		require.NotPanics(t, func() {
			sub = src.Subscribe(rec.Handlers())
		})

		assert.False(t, sub.IsUnsubscribed())
		sub.Unsubscribe()
		assert.True(t, sub.IsUnsubscribed())
		assert.Empty(t, rec.Values())
	})
}

func TestObservable_SynchronousCompletionRunsTeardown(t *testing.T) {
	t.Parallel()

	t.Run("complete before producer returns", func(t *testing.T) {
		t.Parallel()

		var teardowns int
		src := stream.New(func(obs *stream.Observer[int]) stream.Teardown {
			obs.Next(1)
			obs.Complete()
			return func() { teardowns++ }
		})

		sub := src.Subscribe(stream.Handlers[int]{})

		assert.Equal(t, 1, teardowns, "teardown of a synchronously completed producer must not be lost")
		sub.Unsubscribe()
		assert.Equal(t, 1, teardowns)
	})

	t.Run("error before producer returns", func(t *testing.T) {
		t.Parallel()

		var teardowns int
		src := stream.New(func(obs *stream.Observer[int]) stream.Teardown {
			obs.Error(stream.NewError("boom"))
			return func() { teardowns++ }
		})

		src.Subscribe(stream.Handlers[int]{})

		assert.Equal(t, 1, teardowns)
	})
}

func TestObservable_ErrorOnlyProducer(t *testing.T) {
	t.Parallel()

	boom := stream.NewError("boom")
	src := stream.New(func(obs *stream.Observer[string]) stream.Teardown {
		obs.Error(boom)
		return nil
	})

	rec := streamtest.NewRecorder[string]()
	sub := src.Subscribe(rec.Handlers())

	assert.Empty(t, rec.Values())
	assert.Equal(t, 1, rec.ErrorCount())
	assert.Equal(t, boom, rec.Err())
	assert.Equal(t, 0, rec.CompleteCount())
	assert.True(t, sub.IsUnsubscribed())
}

func TestObservable_WithLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	src := stream.New[int](nil, stream.WithLogger[int](logger))
	src.Subscribe(stream.Handlers[int]{})

	assert.Contains(t, buf.String(), "stream subscribed")
	assert.Contains(t, buf.String(), "subscription_id")
}

func TestObservable_NilLoggerIgnored(t *testing.T) {
	t.Parallel()

	src := stream.New[int](nil, stream.WithLogger[int](nil))
	require.NotPanics(t, func() {
		src.Subscribe(stream.Handlers[int]{})
	})
}
