package game

import "math"

type Kind uint8

const (
	KindLobby Kind = iota + 1
	KindCountdown
	KindPose
	KindScoring
	KindResult
)

func (k Kind) String() string {
	switch k {
	case KindLobby:
		return "Lobby"
	case KindCountdown:
		return "Countdown"
	case KindPose:
		return "Pose"
	case KindScoring:
		return "Scoring"
	case KindResult:
		return "Result"
	}
	return "Unknown"
}

// State is one node of the round state machine. Tick returns the kind to
// change to and true when the state is done.
type State interface {
	Kind() Kind
	Enter()
	Tick(dt float64) (Kind, bool)
	Exit()
}

// timer is the countdown shared by the Countdown and Pose states.
type timer struct {
	remaining float64
	last      int
}

func (t *timer) reset(seconds float64) int {
	t.remaining = seconds
	t.last = ceil(seconds)
	return t.last
}

// advance subtracts dt and reports the displayed value if it changed. An
// overshooting tick (remaining below zero) never reports.
func (t *timer) advance(dt float64) (int, bool) {
	t.remaining -= dt
	if t.remaining < 0 {
		return 0, false
	}

	cur := ceil(t.remaining)
	if cur == t.last {
		return 0, false
	}
	t.last = cur
	return cur, true
}

func (t *timer) expired() bool {
	return t.remaining <= 0
}

func ceil(v float64) int {
	return int(math.Ceil(v))
}
