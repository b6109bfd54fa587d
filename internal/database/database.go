package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/posevs/posevs/internal/logging"
	bolt "go.etcd.io/bbolt"
)

type Config struct {
	FilePath string        `envconfig:"POSEVS_DB_FILE_PATH" default:"posevs.db"`
	Timeout  time.Duration `envconfig:"POSEVS_DB_TIMEOUT" default:"1s"`
}

type DB struct {
	DB *bolt.DB
}

func NewFromEnv(ctx context.Context, config *Config) (*DB, error) {
	logger := logging.FromContext(ctx)
	logger.Infof("creating db connection, path %s", config.FilePath)

	if dir := filepath.Dir(config.FilePath); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := bolt.Open(config.FilePath, 0600, &bolt.Options{Timeout: config.Timeout})
	if err != nil {
		return nil, fmt.Errorf("creating connection DB: %w", err)
	}

	return &DB{DB: db}, nil
}

func (db *DB) Close(ctx context.Context) error {
	logger := logging.FromContext(ctx)
	logger.Infof("closing DB connection")

	if err := db.DB.Close(); err != nil {
		return fmt.Errorf("error close DB connection: %w", err)
	}

	return nil
}
