package sim

import (
	"slices"

	"github.com/vovakirdan/arkanoo/internal/core"
)

// Outcome is the session-level result of a tick.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeLifeLost
	OutcomeGameOver
	OutcomeLevelComplete
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeLifeLost:
		return "life_lost"
	case OutcomeGameOver:
		return "game_over"
	case OutcomeLevelComplete:
		return "level_complete"
	default:
		return "unknown"
	}
}

// Report lists what happened during one tick.
type Report struct {
	Sounds     []core.Sound // each cue at most once per tick
	ScoreDelta int
	Outcome    Outcome
}

func (s *Session) emit(snd core.Sound) {
	if !slices.Contains(s.pending.Sounds, snd) {
		s.pending.Sounds = append(s.pending.Sounds, snd)
	}
}

// drain hands out everything collected since the previous tick.
func (s *Session) drain(outcome Outcome) Report {
	r := s.pending
	r.Outcome = outcome
	s.pending = Report{}
	return r
}
