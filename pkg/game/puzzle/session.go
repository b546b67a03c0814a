// Package puzzle resolves one door's clue against player input.
package puzzle

import (
	"strings"
	"time"

	"escaperoom/pkg/game/clues"
)

// HintPenalty is deducted the first time a hint is revealed on an instance.
const HintPenalty = 5

// State of a resolution session.
type State int

const (
	Active State = iota
	Solved
	Locked
)

func (s State) String() string {
	switch s {
	case Active:
		return "active"
	case Solved:
		return "solved"
	case Locked:
		return "locked"
	default:
		return "unknown"
	}
}

// OutcomeKind is what one submitted line did.
type OutcomeKind int

const (
	OutcomeIgnored       OutcomeKind = iota // Empty line
	OutcomeRejected                         // Session already closed
	OutcomeTimeout                          // Took too long; counts as wrong
	OutcomeHint                             // Hint revealed
	OutcomeHintUsed                         // Hint was already revealed
	OutcomeInvalidChoice                    // Not A-D on a multiple choice clue
	OutcomeCorrect
	OutcomeWrong
)

// Outcome describes the effect of one Submit call.
type Outcome struct {
	Kind       OutcomeKind
	State      State // state after the submission
	ScoreDelta int
	Attempts   int    // attempts left after the submission
	Hint       string // for OutcomeHint and OutcomeHintUsed
}

// Session is the attempt/hint state machine for one clue instance.
// The attempt counter and hint flag live on the instance itself.
type Session struct {
	clue       *clues.Instance
	state      State
	lastPrompt time.Time
}

// NewSession opens a session at time now. An instance with no attempts
// left opens already Locked.
func NewSession(c *clues.Instance, now time.Time) *Session {
	s := &Session{clue: c, lastPrompt: now}
	if c.Locked() {
		s.state = Locked
	}
	return s
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Clue returns the instance being resolved.
func (s *Session) Clue() *clues.Instance {
	return s.clue
}

// LastPrompt returns when the time limit was last restarted.
func (s *Session) LastPrompt() time.Time {
	return s.lastPrompt
}

// Submit feeds one line of input received at time now.
func (s *Session) Submit(line string, now time.Time) Outcome {
	c := s.clue
	if s.state != Active {
		return s.outcome(OutcomeRejected, 0)
	}

	in := strings.TrimSpace(line)
	if in == "" {
		return s.outcome(OutcomeIgnored, 0)
	}

	if limit := c.Def.TimeLimit; limit > 0 && now.Sub(s.lastPrompt) > limit {
		s.lastPrompt = now
		return s.miss(OutcomeTimeout)
	}

	if in == "h" || in == "H" {
		s.lastPrompt = now
		if c.UsedHint {
			o := s.outcome(OutcomeHintUsed, 0)
			o.Hint = c.Def.Hint
			return o
		}
		c.UsedHint = true
		o := s.outcome(OutcomeHint, -HintPenalty)
		o.Hint = c.Def.Hint
		return o
	}

	var correct bool
	if c.Def.Kind == clues.MultipleChoice {
		if len(in) != 1 || !clues.IsChoiceLetter(in[0]) {
			return s.outcome(OutcomeInvalidChoice, 0)
		}
		correct = clues.ChoiceIndex(in[0]) == clues.ChoiceIndex(c.Def.Correct)
	} else {
		correct = c.Def.Matches(in)
	}

	if correct {
		s.state = Solved
		return s.outcome(OutcomeCorrect, c.Def.Points)
	}
	return s.miss(OutcomeWrong)
}

// miss consumes an attempt and locks the session when none are left.
func (s *Session) miss(kind OutcomeKind) Outcome {
	s.clue.Attempts--
	if s.clue.Attempts <= 0 {
		s.clue.Attempts = 0
		s.state = Locked
	}
	return s.outcome(kind, 0)
}

func (s *Session) outcome(kind OutcomeKind, delta int) Outcome {
	return Outcome{
		Kind:       kind,
		State:      s.state,
		ScoreDelta: delta,
		Attempts:   s.clue.Attempts,
	}
}
