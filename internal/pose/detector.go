package pose

import (
	"context"
	"sync"

	"github.com/posevs/posevs/internal/logging"
	"go.uber.org/zap"
)

const DefaultThreshold = 0.7

func NewDetector(ctx context.Context, threshold float64) *Detector {
	return &Detector{
		logger:    logging.FromContext(ctx).Named("pose.detector"),
		threshold: threshold,
	}
}

// Detector holds the current target and the latest player samples and keeps
// both players' similarity up to date.
type Detector struct {
	mtx sync.RWMutex

	logger    *zap.SugaredLogger
	threshold float64
	target    *Pose
	p1, p2    *Pose
	sim1      float64
	sim2      float64
}

// SetTarget replaces the target pose and rescores the stored samples.
func (d *Detector) SetTarget(target Pose) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	d.target = &target
	d.logger.Debugf("target pose %q set, %d landmarks", target.Name, len(target.Landmarks))
	d.calculate()
}

func (d *Detector) Target() (Pose, bool) {
	d.mtx.RLock()
	defer d.mtx.RUnlock()
	if d.target == nil {
		return Pose{}, false
	}
	return *d.target, true
}

// UpdatePlayers stores fresh samples. Similarities are recomputed only once a
// target is set.
func (d *Detector) UpdatePlayers(p1, p2 Pose) {
	d.mtx.Lock()
	defer d.mtx.Unlock()

	d.p1, d.p2 = &p1, &p2
	d.calculate()
}

func (d *Detector) calculate() {
	if d.target == nil || d.p1 == nil || d.p2 == nil {
		return
	}

	d.sim1 = Similarity(d.target.Landmarks, d.p1.Landmarks)
	d.sim2 = Similarity(d.target.Landmarks, d.p2.Landmarks)
}

func (d *Detector) Similarities() (float64, float64) {
	d.mtx.RLock()
	defer d.mtx.RUnlock()
	return d.sim1, d.sim2
}

// Winner returns 1 or 2 for the player with the higher similarity, 0 on a tie.
func (d *Detector) Winner() int {
	s1, s2 := d.Similarities()
	switch {
	case s1 > s2:
		return 1
	case s2 > s1:
		return 2
	default:
		return 0
	}
}

// IsValidPose reports whether either player is above the detector threshold.
func (d *Detector) IsValidPose() bool {
	s1, s2 := d.Similarities()
	return s1 > d.threshold || s2 > d.threshold
}
