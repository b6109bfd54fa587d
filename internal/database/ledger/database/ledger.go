package database

import (
	"errors"
	"fmt"

	"github.com/posevs/posevs/internal/byteutil"
	"github.com/posevs/posevs/internal/cache"
	"github.com/posevs/posevs/internal/database"
	bolt "go.etcd.io/bbolt"
)

var ErrNotFound = fmt.Errorf("not found")

const bucket = "economy"

func New(db *database.DB, cache cache.Cache) *DB {
	return &DB{sDB: db, cache: cache}
}

// DB stores named integer balances in a single bbolt bucket.
type DB struct {
	sDB *database.DB

	cache cache.Cache
}

type fetchFn func(key string) ([]byte, error)

func (db *DB) cachedValue(key string, fn fetchFn) (int64, error) {
	if db.cache != nil {
		if v, ok := db.cache.Get(key); ok {
			return v.(int64), nil
		}
	}

	bytes, err := fn(key)
	if err != nil {
		return 0, fmt.Errorf("fetch: %w", err)
	}

	if len(bytes) == 0 {
		return 0, ErrNotFound
	}

	v, err := byteutil.DecodeBytesToInt64(bytes)
	if err != nil {
		return 0, fmt.Errorf("decode: %w", err)
	}

	if db.cache != nil {
		db.cache.Add(key, v)
	}

	return v, nil
}

func (db *DB) Fetch(key string) (int64, error) {
	v, err := db.cachedValue(key, func(key string) ([]byte, error) {
		var bytes []byte
		if err := db.sDB.DB.View(func(tx *bolt.Tx) error {
			b := tx.Bucket([]byte(bucket))
			if b == nil {
				return nil
			}
			// bbolt values are only valid inside the transaction
			if v := b.Get([]byte(key)); v != nil {
				bytes = append([]byte(nil), v...)
			}
			return nil
		}); err != nil {
			return nil, fmt.Errorf("view transaction error: %w", err)
		}

		return bytes, nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("cached value: %w", err)
	}

	return v, nil
}

func (db *DB) Store(key string, v int64) error {
	if err := db.sDB.DB.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(bucket))
		if err != nil {
			return fmt.Errorf("create bucket: %w", err)
		}

		if err := b.Put([]byte(key), byteutil.EncodeInt64ToBytes(v)); err != nil {
			return fmt.Errorf("put to bucket error: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("update transaction error: %w", err)
	}

	if db.cache != nil {
		db.cache.Add(key, v)
	}

	return nil
}

// LoadBalance implements economy.Store.
func (db *DB) LoadBalance(key string) (int, bool, error) {
	v, err := db.Fetch(key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}

	return int(v), true, nil
}

// SaveBalance implements economy.Store.
func (db *DB) SaveBalance(key string, v int) error {
	return db.Store(key, int64(v))
}
