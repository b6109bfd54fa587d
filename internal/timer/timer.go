package timer

import (
	"context"
	"sort"
	"sync"

	"github.com/posevs/posevs/internal/logging"
	"go.uber.org/zap"
)

// Service runs delayed callbacks on the update loop. Time only moves when
// Tick is called, so callbacks always run on the ticking goroutine.
type Service struct {
	mtx sync.Mutex

	logger  *zap.SugaredLogger
	now     float64
	seq     uint64
	pending []entry
}

type entry struct {
	due float64
	seq uint64
	fn  func()
}

func New(ctx context.Context) *Service {
	return &Service{logger: logging.FromContext(ctx).Named("timer")}
}

// Delay schedules fn to run once at least seconds from now. Negative delays
// count as zero.
func (s *Service) Delay(seconds float64, fn func()) {
	if fn == nil {
		return
	}
	if !(seconds > 0) {
		seconds = 0
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()

	s.seq++
	e := entry{due: s.now + seconds, seq: s.seq, fn: fn}
	i := sort.Search(len(s.pending), func(i int) bool {
		return s.pending[i].due > e.due
	})
	s.pending = append(s.pending, entry{})
	copy(s.pending[i+1:], s.pending[i:])
	s.pending[i] = e
}

// Tick advances the clock by dt seconds and runs every callback that came
// due, earliest first. Callbacks scheduled while ticking wait for the next
// Tick.
func (s *Service) Tick(dt float64) {
	s.mtx.Lock()
	if dt > 0 {
		s.now += dt
	}
	n := sort.Search(len(s.pending), func(i int) bool {
		return s.pending[i].due > s.now
	})
	due := make([]entry, n)
	copy(due, s.pending[:n])
	s.pending = s.pending[n:]
	s.mtx.Unlock()

	for _, e := range due {
		s.run(e)
	}
}

func (s *Service) run(e entry) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorf("delayed callback %d panicked: %v", e.seq, r)
		}
	}()
	e.fn()
}

// Len returns the number of callbacks still waiting.
func (s *Service) Len() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return len(s.pending)
}
