package game

import "github.com/posevs/posevs/internal/bus"

// lobbyState waits for RequestStart.
type lobbyState struct{}

func (*lobbyState) Kind() Kind                { return KindLobby }
func (*lobbyState) Enter()                    {}
func (*lobbyState) Tick(float64) (Kind, bool) { return 0, false }
func (*lobbyState) Exit()                     {}

type countdownState struct {
	f *Flow
	timer
}

func (*countdownState) Kind() Kind { return KindCountdown }

func (s *countdownState) Enter() {
	shown := s.reset(s.f.deps.Rules.PrepSeconds)
	s.f.publish(bus.CountdownShow{Seconds: shown})
}

func (s *countdownState) Tick(dt float64) (Kind, bool) {
	if v, ok := s.advance(dt); ok {
		s.f.publish(bus.CountdownTick{Value: v})
	}
	if s.expired() {
		return KindPose, true
	}
	return 0, false
}

func (s *countdownState) Exit() {
	s.f.publish(bus.CountdownHide{})
}

type poseState struct {
	f *Flow
	timer
	target string
}

func (*poseState) Kind() Kind { return KindPose }

func (s *poseState) Enter() {
	shown := s.reset(s.f.deps.Rules.PoseSeconds)
	s.target = ""

	if lib := s.f.deps.Library; lib != nil {
		if p, ok := lib.Random(); ok {
			s.target = p.Name
			if s.f.deps.Tracker != nil {
				s.f.deps.Tracker.SetTarget(p)
			}
		}
	}

	s.f.publish(bus.CountdownShow{Seconds: shown})
	s.f.publish(bus.SetCenterIcon{Pose: s.target})
}

func (s *poseState) Tick(dt float64) (Kind, bool) {
	if v, ok := s.advance(dt); ok {
		s.f.publish(bus.CountdownTick{Value: v})
	}
	if s.expired() {
		return KindScoring, true
	}
	return 0, false
}

func (s *poseState) Exit() {
	s.f.publish(bus.CountdownHide{})
}

type scoringState struct {
	f      *Flow
	p1, p2 int
}

func (*scoringState) Kind() Kind { return KindScoring }

func (s *scoringState) Enter() {
	s.p1, s.p2 = s.f.percents()
	s.f.publish(bus.ShowPercents{P1: s.p1, P2: s.p2})

	session := s.f.session
	winner := session.Record(s.p1, s.p2)
	s.f.publish(bus.UpdateScoreboard{A: session.Player1Wins, B: session.Player2Wins})

	held, closer := s.f.judge()
	s.f.logger.Infow("round scored",
		"match", session.ID,
		"round", session.Rounds,
		"p1", s.p1,
		"p2", s.p2,
		"roundWinner", winner,
		"closer", closer,
		"held", held,
		"score", []int{session.Player1Wins, session.Player2Wins},
	)
	if !held {
		s.f.logger.Infof("round %d: neither player held the pose", session.Rounds)
	}
}

func (s *scoringState) Tick(float64) (Kind, bool) {
	if s.f.session.Winner(s.f.deps.Rules.TargetScore) != 0 {
		return KindResult, true
	}
	return KindPose, true
}

func (*scoringState) Exit() {}

type resultState struct {
	f *Flow
}

func (*resultState) Kind() Kind { return KindResult }

func (s *resultState) Enter() {
	session := s.f.session
	s.f.publish(bus.CountdownHide{})
	s.f.publish(bus.MatchFinished{
		Winner: session.Winner(s.f.deps.Rules.TargetScore),
		A:      session.Player1Wins,
		B:      session.Player2Wins,
	})
}

func (*resultState) Tick(float64) (Kind, bool) {
	return KindLobby, true
}

func (*resultState) Exit() {}
