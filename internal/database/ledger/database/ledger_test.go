package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/posevs/posevs/internal/cache"
	"github.com/posevs/posevs/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T, c cache.Cache) *DB {
	t.Helper()

	ctx := context.Background()
	sdb, err := database.NewFromEnv(ctx, &database.Config{
		FilePath: filepath.Join(t.TempDir(), "posevs.db"),
		Timeout:  time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = sdb.Close(ctx) })

	return New(sdb, c)
}

func TestFetchMissing(t *testing.T) {
	t.Parallel()

	db := newTestDB(t, nil)
	_, err := db.Fetch("eco.gold.v1")
	assert.ErrorIs(t, err, ErrNotFound)

	v, ok, err := db.LoadBalance("eco.gold.v1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestStoreFetch(t *testing.T) {
	t.Parallel()

	db := newTestDB(t, nil)
	require.NoError(t, db.SaveBalance("eco.gold.v1", 15))

	v, ok, err := db.LoadBalance("eco.gold.v1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 15, v)

	require.NoError(t, db.SaveBalance("eco.gold.v1", 0))
	v, ok, err = db.LoadBalance("eco.gold.v1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Zero(t, v)
}

func TestCachedFetch(t *testing.T) {
	t.Parallel()

	c, err := cache.NewLRU(8)
	require.NoError(t, err)

	db := newTestDB(t, c)
	require.NoError(t, db.Store("eco.gold.v1", 7))

	cached, ok := c.Get("eco.gold.v1")
	require.True(t, ok)
	assert.Equal(t, int64(7), cached)

	// a cache hit must win over the stored value
	c.Add("eco.gold.v1", int64(42))
	v, err := db.Fetch("eco.gold.v1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)
}
