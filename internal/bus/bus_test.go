package bus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishInvokesAllSubscribersInOrder(t *testing.T) {
	t.Parallel()

	b := New(context.Background())
	var calls []string

	b.Subscribe(KindCountdownTick, func(e Event) {
		calls = append(calls, "first")
		assert.Equal(t, CountdownTick{Value: 3}, e)
	})
	b.Subscribe(KindCountdownTick, func(e Event) {
		calls = append(calls, "second")
	})
	b.Subscribe(KindCountdownShow, func(e Event) {
		calls = append(calls, "other kind")
	})

	b.Publish(CountdownTick{Value: 3})
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestPublishWithoutSubscribers(t *testing.T) {
	t.Parallel()

	b := New(context.Background())
	assert.NotPanics(t, func() {
		b.Publish(CountdownHide{})
		b.Publish(nil)
	})
}

func TestUnsubscribe(t *testing.T) {
	t.Parallel()

	b := New(context.Background())
	var n int
	sub := b.Subscribe(KindBalanceUpdated, func(Event) { n++ })
	b.Subscribe(KindBalanceUpdated, func(Event) { n += 10 })

	b.Publish(BalanceUpdated{Balance: 1})
	require.Equal(t, 11, n)

	b.Unsubscribe(sub)
	b.Publish(BalanceUpdated{Balance: 2})
	assert.Equal(t, 21, n)
	assert.Equal(t, 1, b.Len(KindBalanceUpdated))

	// second removal and a never-registered subscription are no-ops
	b.Unsubscribe(sub)
	b.Unsubscribe(Subscription{kind: KindAdStarted})
	assert.Equal(t, 1, b.Len(KindBalanceUpdated))
}

func TestPanickingHandlerIsIsolated(t *testing.T) {
	t.Parallel()

	b := New(context.Background())
	var reached bool
	b.Subscribe(KindShowPercents, func(Event) { panic("ui bug") })
	b.Subscribe(KindShowPercents, func(Event) { reached = true })

	assert.NotPanics(t, func() { b.Publish(ShowPercents{P1: 80, P2: 60}) })
	assert.True(t, reached)
}

func TestSubscribeDuringPublish(t *testing.T) {
	t.Parallel()

	b := New(context.Background())
	var late int
	b.Subscribe(KindCountdownShow, func(Event) {
		b.Subscribe(KindCountdownShow, func(Event) { late++ })
	})

	b.Publish(CountdownShow{Seconds: 2})
	assert.Zero(t, late, "handlers added during a publish wait for the next one")

	b.Publish(CountdownShow{Seconds: 2})
	assert.Equal(t, 1, late)
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "UpdateScoreboard", UpdateScoreboard{}.Kind().String())
	assert.Equal(t, "Unknown", Kind(0).String())
}
