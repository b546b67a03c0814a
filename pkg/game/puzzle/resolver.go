package puzzle

import (
	"time"

	"go.uber.org/zap"

	"escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/clues"
	"escaperoom/pkg/game/renderer"
)

// Scorer owns the running score.
type Scorer interface {
	AdjustScore(delta int) int
}

// Resolver drives a Session from an input source until it is Solved or
// Locked, reporting every step to a Sink.
type Resolver struct {
	In  input.Source
	Out renderer.Sink
	Now func() time.Time
	Log *zap.Logger
}

// NewResolver creates a Resolver using the wall clock.
func NewResolver(in input.Source, out renderer.Sink, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{In: in, Out: out, Now: time.Now, Log: log}
}

// Resolve runs one attempt cycle on c. It returns true when the clue was
// solved and false when it locked. An error is only returned when the input
// source fails.
func (r *Resolver) Resolve(c *clues.Instance, score Scorer) (bool, error) {
	r.Out.Emit(renderer.Event{Kind: renderer.EventPuzzle, Clue: c, Attempts: c.Attempts})

	s := NewSession(c, r.Now())
	for s.State() == Active {
		r.Out.Emit(renderer.Event{Kind: renderer.EventAnswerPrompt, Clue: c, Attempts: c.Attempts})

		line, err := r.In.ReadLine()
		if err != nil {
			return false, err
		}

		o := s.Submit(line, r.Now())
		total := score.AdjustScore(o.ScoreDelta)
		r.report(c, o, total)
	}

	if s.State() == Locked {
		r.Out.Emit(renderer.Event{Kind: renderer.EventLocked, Clue: c})
		r.Log.Debug("clue locked", zap.Int("clue", c.Index))
		return false, nil
	}
	r.Log.Debug("clue solved", zap.Int("clue", c.Index), zap.Bool("hint", c.UsedHint))
	return true, nil
}

func (r *Resolver) report(c *clues.Instance, o Outcome, score int) {
	ev := renderer.Event{Clue: c, Attempts: o.Attempts, Score: score}
	switch o.Kind {
	case OutcomeTimeout:
		ev.Kind = renderer.EventTimeout
	case OutcomeHint:
		ev.Kind = renderer.EventHint
		ev.Amount = HintPenalty
		ev.Text = o.Hint
	case OutcomeHintUsed:
		ev.Kind = renderer.EventHintAlreadyUsed
	case OutcomeInvalidChoice:
		ev.Kind = renderer.EventInvalidChoice
	case OutcomeCorrect:
		ev.Kind = renderer.EventCorrect
		ev.Amount = o.ScoreDelta
	case OutcomeWrong:
		ev.Kind = renderer.EventWrong
	default:
		return
	}
	r.Out.Emit(ev)
}
