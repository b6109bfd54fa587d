package pose

import (
	"github.com/posevs/posevs/internal/util"
	"github.com/valyala/fastrand"
)

const jitterSteps = 1 << 16

// Simulator fakes camera samples by displacing each target landmark by up to
// the player's jitter in both axes. It stands in for a camera feed when the
// game runs headless.
type Simulator struct {
	Jitter1, Jitter2 float64
}

func (s Simulator) Sample(target Pose) (Pose, Pose) {
	return jitter(target, s.Jitter1), jitter(target, s.Jitter2)
}

func jitter(target Pose, amount float64) Pose {
	out := Pose{Name: target.Name, Landmarks: make([]Landmark, len(target.Landmarks))}
	for i, lm := range target.Landmarks {
		lm.Position = Point{
			X: util.Clamp01(lm.Position.X + offset(amount)),
			Y: util.Clamp01(lm.Position.Y + offset(amount)),
		}
		out.Landmarks[i] = lm
	}
	return out
}

// offset is uniform in [-amount, amount].
func offset(amount float64) float64 {
	u := float64(fastrand.Uint32n(jitterSteps+1)) / jitterSteps
	return (2*u - 1) * amount
}
