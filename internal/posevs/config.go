package posevs

import (
	"time"

	"github.com/posevs/posevs/internal/ads"
	"github.com/posevs/posevs/internal/database"
	"github.com/posevs/posevs/internal/economy"
	"github.com/posevs/posevs/internal/game"
)

type Config struct {
	// Development logging
	Debug bool `envconfig:"POSEVS_DEBUG" default:"false"`

	// Number of items in the balance cache
	CacheSize int `envconfig:"POSEVS_CACHE_SIZE" default:"64"`

	// Interval between two frames of the update loop
	TickRate time.Duration `envconfig:"POSEVS_TICK_RATE" default:"50ms"`

	// Start a new match whenever the game returns to the lobby
	AutoStart bool `envconfig:"POSEVS_AUTO_START" default:"false"`

	// Show an interstitial ad after every finished match
	AdAfterMatch bool `envconfig:"POSEVS_AD_AFTER_MATCH" default:"false"`

	// Similarity above which a pose counts as held
	Threshold float64 `envconfig:"POSEVS_POSE_THRESHOLD" default:"0.7"`

	// How far the simulated players drift from the target pose
	Jitter1 float64 `envconfig:"POSEVS_PLAYER1_JITTER" default:"0.1"`
	Jitter2 float64 `envconfig:"POSEVS_PLAYER2_JITTER" default:"0.15"`

	DB      database.Config
	Rules   game.Rules
	Economy economy.Config
	Ads     ads.Config
}
