package game

import (
	"errors"
	"fmt"
)

var ErrInvalidRules = errors.New("invalid round rules")

// Rules are the round parameters, fixed for the life of the process.
type Rules struct {
	// Round wins needed to take the match
	TargetScore int `envconfig:"POSEVS_TARGET_SCORE" default:"5"`
	// Countdown before the first pose of a match, seconds
	PrepSeconds float64 `envconfig:"POSEVS_PREP_SECONDS" default:"2"`
	// How long players hold each pose, seconds
	PoseSeconds float64 `envconfig:"POSEVS_POSE_SECONDS" default:"5"`
}

func (r Rules) Validate() error {
	switch {
	case r.TargetScore < 1:
		return fmt.Errorf("%w: target score %d must be at least 1", ErrInvalidRules, r.TargetScore)
	case r.PrepSeconds < 0:
		return fmt.Errorf("%w: prep seconds %v is negative", ErrInvalidRules, r.PrepSeconds)
	case r.PoseSeconds < 0:
		return fmt.Errorf("%w: pose seconds %v is negative", ErrInvalidRules, r.PoseSeconds)
	}
	return nil
}
