package game

import "github.com/google/uuid"

func NewMatchSession() *MatchSession {
	return &MatchSession{ID: uuid.New()}
}

// MatchSession is the score of one match. A fresh session starts with every
// paid RequestStart.
type MatchSession struct {
	ID          uuid.UUID
	Rounds      int
	Player1Wins int
	Player2Wins int
}

// Record counts a finished round. The strictly higher percentage wins the
// round; a tie scores nobody. It returns the round winner, 0 on a tie.
func (s *MatchSession) Record(p1, p2 int) int {
	s.Rounds++
	switch {
	case p1 > p2:
		s.Player1Wins++
		return 1
	case p2 > p1:
		s.Player2Wins++
		return 2
	}
	return 0
}

// Winner returns the player that reached target, or 0.
func (s *MatchSession) Winner(target int) int {
	switch {
	case s.Player1Wins >= target && s.Player1Wins >= s.Player2Wins:
		return 1
	case s.Player2Wins >= target:
		return 2
	}
	return 0
}
