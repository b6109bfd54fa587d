package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type spender interface {
	TrySpend(int) bool
}

type wallet struct{ gold int }

func (w *wallet) TrySpend(n int) bool { return w.gold >= n }

type rules struct{ TargetScore int }

func TestRegisterGet(t *testing.T) {
	t.Parallel()

	r := New()
	Register(r, rules{TargetScore: 5})
	Register[spender](r, &wallet{gold: 10})

	got, ok := Get[rules](r)
	assert.True(t, ok)
	assert.Equal(t, 5, got.TargetScore)

	s, ok := Get[spender](r)
	assert.True(t, ok)
	assert.True(t, s.TrySpend(5))

	// keyed by the registered type, not the dynamic one
	_, ok = Get[*wallet](r)
	assert.False(t, ok)
}

func TestGetMissing(t *testing.T) {
	t.Parallel()

	r := New()
	got, ok := Get[spender](r)
	assert.False(t, ok)
	assert.Nil(t, got)

	assert.PanicsWithValue(t, "registry: registry.rules is not registered", func() {
		MustGet[rules](r)
	})
}

func TestOverwriteAndUnregister(t *testing.T) {
	t.Parallel()

	r := New()
	Register(r, rules{TargetScore: 3})
	Register(r, rules{TargetScore: 7})
	assert.Equal(t, 7, MustGet[rules](r).TargetScore)

	Unregister[rules](r)
	_, ok := Get[rules](r)
	assert.False(t, ok)

	assert.NotPanics(t, func() { Unregister[rules](r) })
}
