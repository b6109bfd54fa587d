package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/posevs/posevs/internal/cache"
	"github.com/posevs/posevs/internal/database"
	ledgerDb "github.com/posevs/posevs/internal/database/ledger/database"
	"github.com/posevs/posevs/internal/logging"
	"github.com/posevs/posevs/internal/posevs"
	"github.com/posevs/posevs/internal/posevs/resource"
	"github.com/posevs/posevs/internal/shutdown"
	"golang.org/x/sync/errgroup"
)

var version string

func main() {
	ctx, done := shutdown.New()
	defer done()

	config := posevs.Config{}
	if err := envconfig.Process("", &config); err != nil {
		logging.DefaultLogger().Fatalf("processing the config: %v", err)
	}

	logger := logging.NewLogger(config.Debug)
	ctx = logging.WithLogger(ctx, logger)

	if err := realMain(ctx, &config, done); err != nil {
		logger.Fatalf("main.realMain: %v", err)
	}
}

func realMain(ctx context.Context, config *posevs.Config, done func()) error {
	logger := logging.FromContext(ctx).Named("main.realMain")

	_, _ = fmt.Fprint(os.Stdout, resource.Graffiti)
	_, _ = fmt.Fprintf(os.Stdout, resource.GreetingCLI, resource.ProjectName, version)

	db, err := database.NewFromEnv(ctx, &config.DB)
	if err != nil {
		return fmt.Errorf("new database from env: %w", err)
	}

	defer func() {
		if err := db.Close(ctx); err != nil {
			logger.Errorf("db close: %v", err)
		}
	}()

	balanceCache, err := cache.NewLRU(config.CacheSize)
	if err != nil {
		return fmt.Errorf("can not create lru cache: %w", err)
	}

	reg, err := posevs.Bootstrap(ctx, config, ledgerDb.New(db, balanceCache), os.Stdout)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	manager := posevs.NewManager(ctx, reg)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// quit from the prompt ends the whole program
		defer done()
		if err := manager.Run(gctx); err != nil {
			return fmt.Errorf("run: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return manager.ReadCommands(gctx, os.Stdin)
	})

	return g.Wait()
}
