package ads

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidConfig = errors.New("invalid ads config")

type Config struct {
	InterstitialDuration time.Duration `envconfig:"POSEVS_AD_INTERSTITIAL_DURATION" default:"1500ms"`
	RewardedDuration     time.Duration `envconfig:"POSEVS_AD_REWARDED_DURATION" default:"2500ms"`
}

func (c Config) Validate() error {
	if c.InterstitialDuration < 0 {
		return fmt.Errorf("%w: interstitial duration %s is negative", ErrInvalidConfig, c.InterstitialDuration)
	}
	if c.RewardedDuration < 0 {
		return fmt.Errorf("%w: rewarded duration %s is negative", ErrInvalidConfig, c.RewardedDuration)
	}
	return nil
}
