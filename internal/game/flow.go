package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/posevs/posevs/internal/bus"
	"github.com/posevs/posevs/internal/logging"
	"github.com/posevs/posevs/internal/pose"
	"github.com/valyala/fastrand"
	"go.uber.org/zap"
)

// maxSettle bounds the transitions one Tick may chain through.
const maxSettle = 64

// Random fallback scores are drawn from [fallbackMin, fallbackMax].
const (
	fallbackMin = 60
	fallbackMax = 96
)

type Publisher interface {
	Publish(bus.Event)
}

type Economy interface {
	Balance() int
	TrySpend(amount int) bool
}

// PoseTracker scores both players against the target pose.
type PoseTracker interface {
	SetTarget(target pose.Pose)
	Similarities() (float64, float64)
}

// PoseJudge is optionally implemented by a PoseTracker. It reports whether
// either player held the pose well enough and who was closer.
type PoseJudge interface {
	IsValidPose() bool
	Winner() int
}

// Deps are the collaborators of a Flow. Tracker and Library are optional:
// without a tracker rounds are scored randomly, without a library no target
// pose is chosen.
type Deps struct {
	Bus       Publisher
	Economy   Economy
	Rules     Rules
	RoundCost int
	Tracker   PoseTracker
	Library   *pose.Library
	// Intn returns a value in [0, n). Defaults to fastrand.
	Intn func(n int) int
}

func (d Deps) validate() error {
	if d.Bus == nil {
		return errors.New("game: bus is required")
	}
	if d.Economy == nil {
		return errors.New("game: economy is required")
	}
	if d.RoundCost < 0 {
		return fmt.Errorf("game: round cost %d is negative", d.RoundCost)
	}
	return d.Rules.Validate()
}

// Flow is the round state machine. It is not safe for concurrent use: the
// host calls Tick, RequestStart and Reset from its update loop only.
type Flow struct {
	logger  *zap.SugaredLogger
	deps    Deps
	states  map[Kind]State
	current State
	session *MatchSession
}

// NewFlow builds the five states and enters the lobby.
func NewFlow(ctx context.Context, deps Deps) (*Flow, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}

	if deps.Intn == nil {
		deps.Intn = func(n int) int {
			return int(fastrand.Uint32n(uint32(n)))
		}
	}

	f := &Flow{
		logger:  logging.FromContext(ctx).Named("game.flow"),
		deps:    deps,
		session: NewMatchSession(),
	}
	f.states = map[Kind]State{
		KindLobby:     &lobbyState{},
		KindCountdown: &countdownState{f: f},
		KindPose:      &poseState{f: f},
		KindScoring:   &scoringState{f: f},
		KindResult:    &resultState{f: f},
	}

	if deps.Tracker == nil {
		f.logger.Debugf("no pose tracker configured, rounds are scored randomly")
	}

	f.Change(KindLobby)
	return f, nil
}

// Current returns the kind of the active state.
func (f *Flow) Current() Kind {
	if f.current == nil {
		return 0
	}
	return f.current.Kind()
}

// Session returns a copy of the running match score.
func (f *Flow) Session() MatchSession {
	return *f.session
}

// Change exits the current state and enters kind. An unknown kind is a
// programming error and panics.
func (f *Flow) Change(kind Kind) {
	next, ok := f.states[kind]
	if !ok {
		panic(fmt.Sprintf("game: unknown state %s (%d)", kind, kind))
	}

	prev := f.Current()
	if f.current != nil {
		f.current.Exit()
	}
	f.current = next
	f.logger.Debugf("state %s -> %s", prev, kind)
	f.current.Enter()
}

// Tick advances the active state by dt seconds. Transitions requested by a
// state are applied immediately and the new state is ticked with dt=0, so
// states that decide on entry (Scoring, Result) resolve within this call.
// A negative or NaN dt counts as zero.
func (f *Flow) Tick(dt float64) {
	if f.current == nil {
		return
	}
	if !(dt > 0) {
		dt = 0
	}

	next, ok := f.current.Tick(dt)
	for i := 0; ok && i < maxSettle; i++ {
		f.Change(next)
		next, ok = f.current.Tick(0)
	}
	if ok {
		f.logger.Warnf("state %s still settling after %d transitions", f.Current(), maxSettle)
	}
}

// RequestStart begins a match from the lobby. It charges the round cost;
// when the balance does not cover it the insufficient gold popup is requested
// and nothing else changes.
func (f *Flow) RequestStart() bool {
	if kind := f.Current(); kind != KindLobby && kind != KindResult {
		f.logger.Debugf("start ignored in state %s", kind)
		return false
	}

	if !f.deps.Economy.TrySpend(f.deps.RoundCost) {
		f.logger.Infof("not enough gold to start: balance %d, cost %d", f.deps.Economy.Balance(), f.deps.RoundCost)
		f.deps.Bus.Publish(bus.ShowInsufficientGold{})
		return false
	}

	f.deps.Bus.Publish(bus.HideInsufficientGold{})
	f.session = NewMatchSession()
	f.logger.Infof("match %s started", f.session.ID)
	f.Change(KindCountdown)
	return true
}

// Reset abandons the running match and returns to the lobby.
func (f *Flow) Reset() {
	if f.Current() == KindLobby {
		return
	}
	f.Change(KindLobby)
}

func (f *Flow) publish(e bus.Event) {
	f.deps.Bus.Publish(e)
}

// judge reports whether the pose was held and the tracker's round winner.
// Without a judging tracker every pose counts as held.
func (f *Flow) judge() (bool, int) {
	if j, ok := f.deps.Tracker.(PoseJudge); ok {
		return j.IsValidPose(), j.Winner()
	}
	return true, 0
}

// percents scores the finished round, falling back to random values in
// [fallbackMin, fallbackMax] when no tracker is configured.
func (f *Flow) percents() (int, int) {
	if f.deps.Tracker != nil {
		s1, s2 := f.deps.Tracker.Similarities()
		return pose.Percent(s1), pose.Percent(s2)
	}

	span := fallbackMax - fallbackMin + 1
	return fallbackMin + f.deps.Intn(span), fallbackMin + f.deps.Intn(span)
}
