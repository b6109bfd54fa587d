package posevs

import (
	"context"
	"fmt"
	"io"

	"github.com/posevs/posevs/internal/ads"
	"github.com/posevs/posevs/internal/bus"
	"github.com/posevs/posevs/internal/economy"
	"github.com/posevs/posevs/internal/game"
	"github.com/posevs/posevs/internal/pose"
	"github.com/posevs/posevs/internal/registry"
	"github.com/posevs/posevs/internal/timer"
)

func (c *Config) validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("tick rate %s must be positive", c.TickRate)
	}
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("pose threshold %v is outside [0, 1]", c.Threshold)
	}
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if err := c.Economy.Validate(); err != nil {
		return err
	}
	return c.Ads.Validate()
}

// Bootstrap builds every game service and registers it. The presenter is
// attached before the ledger loads so the starting balance is printed.
func Bootstrap(ctx context.Context, config *Config, store economy.Store, out io.Writer) (*registry.Registry, error) {
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	reg := registry.New()
	registry.Register(reg, config)

	b := bus.New(ctx)
	registry.Register(reg, b)

	presenter := NewPresenter(out)
	presenter.Attach(b)
	registry.Register(reg, presenter)

	ledger := economy.New(ctx, store, b)
	if err := ledger.Init(config.Economy); err != nil {
		return nil, fmt.Errorf("economy init: %w", err)
	}
	registry.Register(reg, ledger)

	ts := timer.New(ctx)
	registry.Register(reg, ts)

	ad, err := ads.NewDummy(ctx, config.Ads, ts, b)
	if err != nil {
		return nil, fmt.Errorf("ads: %w", err)
	}
	registry.Register[ads.Ads](reg, ad)

	detector := pose.NewDetector(ctx, config.Threshold)
	registry.Register(reg, detector)

	library := pose.NewLibrary(pose.DefaultPoses)
	registry.Register(reg, library)

	registry.Register(reg, pose.Simulator{Jitter1: config.Jitter1, Jitter2: config.Jitter2})

	flow, err := game.NewFlow(ctx, game.Deps{
		Bus:       b,
		Economy:   ledger,
		Rules:     config.Rules,
		RoundCost: config.Economy.RoundCost,
		Tracker:   detector,
		Library:   library,
	})
	if err != nil {
		return nil, fmt.Errorf("game flow: %w", err)
	}
	registry.Register(reg, flow)

	return reg, nil
}
