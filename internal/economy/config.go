package economy

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid economy config")

type Config struct {
	// Gold a fresh install starts with
	StartGold int `envconfig:"POSEVS_START_GOLD" default:"10"`
	// Price of starting a match
	RoundCost int `envconfig:"POSEVS_ROUND_COST" default:"5"`
	// Gold granted for a completed rewarded ad
	AdReward int `envconfig:"POSEVS_AD_REWARD" default:"5"`
}

func (c Config) Validate() error {
	switch {
	case c.StartGold < 0:
		return fmt.Errorf("%w: start gold %d is negative", ErrInvalidConfig, c.StartGold)
	case c.RoundCost < 0:
		return fmt.Errorf("%w: round cost %d is negative", ErrInvalidConfig, c.RoundCost)
	case c.AdReward < 0:
		return fmt.Errorf("%w: ad reward %d is negative", ErrInvalidConfig, c.AdReward)
	}
	return nil
}
