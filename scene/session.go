package scene

import (
	"github.com/google/uuid"
)

// Outcome is the result of a round
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "none"
	}
}

// Session is the per-round state owned by one Encounter
// The first recorded outcome is final
type Session struct {
	MonstersDestroyed int
	RoundID           uuid.UUID

	outcome Outcome
}

// NewSession starts a round with a zero counter and a fresh round ID
func NewSession() *Session {
	return &Session{RoundID: uuid.New()}
}

// AddKill increments the counter and returns the new value
func (s *Session) AddKill() int {
	s.MonstersDestroyed++
	return s.MonstersDestroyed
}

// Kills returns the counter
func (s *Session) Kills() int {
	return s.MonstersDestroyed
}

// Decide records the outcome if none is recorded yet and reports whether this call did it
func (s *Session) Decide(won bool) bool {
	if s.outcome != OutcomeNone {
		return false
	}
	if won {
		s.outcome = OutcomeWon
	} else {
		s.outcome = OutcomeLost
	}
	return true
}

// Decided reports whether the round is over
func (s *Session) Decided() bool {
	return s.outcome != OutcomeNone
}

// Outcome returns the recorded outcome
func (s *Session) Outcome() Outcome {
	return s.outcome
}
