package pose

import (
	"fmt"

	"github.com/valyala/fastrand"
)

func twoHands(name string, left, right Point) Pose {
	return Pose{
		Name: name,
		Landmarks: []Landmark{
			{Position: left, Confidence: 1, ID: 0},
			{Position: right, Confidence: 1, ID: 1},
		},
	}
}

// DefaultPoses are the built-in targets, tracked by the two hand landmarks.
var DefaultPoses = []Pose{
	twoHands("Arms Up", Point{0.5, 0.8}, Point{0.5, 0.6}),
	twoHands("T-Pose", Point{0.3, 0.7}, Point{0.7, 0.7}),
	twoHands("Star Jump", Point{0.4, 0.8}, Point{0.6, 0.8}),
	twoHands("Squat", Point{0.5, 0.4}, Point{0.5, 0.3}),
	twoHands("Lunge", Point{0.4, 0.5}, Point{0.6, 0.5}),
}

func NewLibrary(poses []Pose) *Library {
	return &Library{poses: poses}
}

type Library struct {
	poses []Pose
}

func (l *Library) Len() int {
	return len(l.poses)
}

func (l *Library) At(i int) (Pose, error) {
	if i < 0 || i >= len(l.poses) {
		return Pose{}, fmt.Errorf("pose index %d out of range [0,%d)", i, len(l.poses))
	}
	return l.poses[i], nil
}

// Random picks a pose uniformly. It returns false for an empty library.
func (l *Library) Random() (Pose, bool) {
	if len(l.poses) == 0 {
		return Pose{}, false
	}
	p, err := l.At(int(fastrand.Uint32n(uint32(len(l.poses)))))
	return p, err == nil
}
