package ads

import (
	"context"
	"testing"
	"time"

	"github.com/posevs/posevs/internal/bus"
	"github.com/posevs/posevs/internal/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []bus.Event
}

func (r *recorder) Publish(e bus.Event) {
	r.events = append(r.events, e)
}

var testConfig = Config{InterstitialDuration: 1500 * time.Millisecond, RewardedDuration: 2500 * time.Millisecond}

func newDummy(t *testing.T) (*Dummy, *timer.Service, *recorder) {
	t.Helper()

	ctx := context.Background()
	rec := &recorder{}
	ts := timer.New(ctx)
	d, err := NewDummy(ctx, testConfig, ts, rec)
	require.NoError(t, err)
	return d, ts, rec
}

func TestRewardedAfterDuration(t *testing.T) {
	t.Parallel()

	d, ts, rec := newDummy(t)
	rewarded, failed := 0, 0
	d.ShowRewarded(func() { rewarded++ }, func() { failed++ })

	assert.False(t, d.Ready(PlacementDefault))
	assert.Equal(t, []bus.Event{bus.AdStarted{Placement: PlacementRewarded, Rewarded: true}}, rec.events)

	ts.Tick(2)
	assert.Zero(t, rewarded)

	ts.Tick(0.5)
	assert.Equal(t, 1, rewarded)
	assert.Zero(t, failed)
	assert.True(t, d.Ready(PlacementDefault))
	assert.Equal(t, bus.AdFinished{Placement: PlacementRewarded, Rewarded: true}, rec.events[len(rec.events)-1])

	ts.Tick(10)
	assert.Equal(t, 1, rewarded)
}

func TestInterstitial(t *testing.T) {
	t.Parallel()

	d, ts, rec := newDummy(t)
	closed := false
	d.ShowInterstitial(func() { closed = true })

	ts.Tick(1.5)
	assert.True(t, closed)
	assert.Equal(t, []bus.Event{
		bus.AdStarted{Placement: PlacementInterstitial},
		bus.AdFinished{Placement: PlacementInterstitial},
	}, rec.events)
}

func TestBusyFails(t *testing.T) {
	t.Parallel()

	d, ts, _ := newDummy(t)
	first, second, failed := 0, 0, 0
	d.ShowRewarded(func() { first++ }, nil)
	d.ShowRewarded(func() { second++ }, func() { failed++ })
	assert.Equal(t, 1, failed)

	ts.Tick(3)
	assert.Equal(t, 1, first)
	assert.Zero(t, second)

	// nil callbacks are allowed
	d.ShowRewarded(nil, nil)
	assert.NotPanics(t, func() { ts.Tick(3) })
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, testConfig.Validate())
	assert.ErrorIs(t, Config{InterstitialDuration: -time.Second}.Validate(), ErrInvalidConfig)
	assert.ErrorIs(t, Config{RewardedDuration: -time.Second}.Validate(), ErrInvalidConfig)

	_, err := NewDummy(context.Background(), Config{RewardedDuration: -1}, timer.New(context.Background()), nil)
	assert.Error(t, err)
}
