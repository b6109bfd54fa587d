// Package pose scores how closely a player's body landmarks match a target
// pose. It is a placeholder for real pose detection: positions are compared
// directly, without any normalisation for scale or camera placement.
package pose

import (
	"math"

	"github.com/posevs/posevs/internal/util"
)

const (
	// Landmarks at or below this confidence are ignored.
	MinConfidence = 0.5
	// Mean distance at which similarity drops to zero, in normalised
	// coordinates.
	MaxDistance = 0.5
)

// Point is a position in normalised [0,1]² image space.
type Point struct {
	X, Y float64
}

func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

type Landmark struct {
	Position   Point   `json:"position"`
	Confidence float64 `json:"confidence"`
	ID         int     `json:"id"`
}

type Pose struct {
	Name      string     `json:"name"`
	Landmarks []Landmark `json:"landmarks"`
}

// Similarity returns 1 - meanDistance/MaxDistance clamped to [0,1], averaged
// over the index pairs where both landmarks are confident. Sequences of
// different length, or with no confident pair, score 0.
func Similarity(target, sample []Landmark) float64 {
	if len(target) != len(sample) {
		return 0
	}

	var total float64
	var n int
	for i := range target {
		if target[i].Confidence <= MinConfidence || sample[i].Confidence <= MinConfidence {
			continue
		}
		total += target[i].Position.Distance(sample[i].Position)
		n++
	}

	if n == 0 {
		return 0
	}

	return util.Clamp01(1 - (total/float64(n))/MaxDistance)
}

// Percent converts a similarity to a rounded percentage.
func Percent(similarity float64) int {
	return int(math.Round(util.Clamp01(similarity) * 100))
}
