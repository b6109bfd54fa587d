package timer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelayFiresOnceInDueOrder(t *testing.T) {
	t.Parallel()

	s := New(context.Background())
	var got []string
	s.Delay(2, func() { got = append(got, "b") })
	s.Delay(1, func() { got = append(got, "a") })
	s.Delay(2, func() { got = append(got, "c") })
	s.Delay(5, func() { got = append(got, "d") })
	assert.Equal(t, 4, s.Len())

	s.Tick(0.5)
	assert.Empty(t, got)

	s.Tick(0.5)
	assert.Equal(t, []string{"a"}, got)

	s.Tick(3)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, 1, s.Len())

	s.Tick(10)
	s.Tick(10)
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
	assert.Zero(t, s.Len())
}

func TestDelayZeroWaitsForTick(t *testing.T) {
	t.Parallel()

	s := New(context.Background())
	fired := 0
	s.Delay(-1, func() { fired++ })
	assert.Zero(t, fired)

	s.Tick(0)
	assert.Equal(t, 1, fired)
}

func TestDelayFromCallback(t *testing.T) {
	t.Parallel()

	s := New(context.Background())
	var got []int
	s.Delay(1, func() {
		got = append(got, 1)
		s.Delay(0, func() { got = append(got, 2) })
	})

	s.Tick(1)
	assert.Equal(t, []int{1}, got)

	s.Tick(0)
	assert.Equal(t, []int{1, 2}, got)
}

func TestPanickingCallback(t *testing.T) {
	t.Parallel()

	s := New(context.Background())
	fired := false
	s.Delay(1, func() { panic("boom") })
	s.Delay(1, func() { fired = true })
	s.Delay(1, nil)

	assert.NotPanics(t, func() { s.Tick(1) })
	assert.True(t, fired)
	assert.Zero(t, s.Len())
}
