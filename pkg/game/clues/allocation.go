package clues

import (
	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"

	"escaperoom/pkg/engine/rng"
)

// Fallback describes which rule produced a draw.
type Fallback int

const (
	FallbackNone      Fallback = iota // Matched the requested difficulty
	FallbackAnyTag                    // No unused match; any unused entry
	FallbackExhausted                 // Nothing unused; uniform over the whole catalog, may repeat
)

func (f Fallback) String() string {
	switch f {
	case FallbackAnyTag:
		return "any-tag"
	case FallbackExhausted:
		return "exhausted"
	default:
		return "none"
	}
}

// Draw is the result of one allocation.
type Draw struct {
	Index    int
	Fallback Fallback
}

// AllocationState remembers which catalog entries a session has handed out.
type AllocationState struct {
	used mapset.Set[int]
}

// NewAllocationState creates an empty state for a new session.
func NewAllocationState() *AllocationState {
	return &AllocationState{used: mapset.New[int]()}
}

// IsUsed reports whether index i has been allocated this session.
func (s *AllocationState) IsUsed(i int) bool {
	return s.used.Has(i)
}

// MarkUsed records index i as allocated.
func (s *AllocationState) MarkUsed(i int) {
	s.used.Put(i)
}

// Count returns the number of allocated indices.
func (s *AllocationState) Count() int {
	return s.used.Size()
}

// Reset forgets all allocations.
func (s *AllocationState) Reset() {
	s.used = mapset.New[int]()
}

// Allocator draws definitions from a Bank for one session.
type Allocator struct {
	bank  *Bank
	state *AllocationState
	rand  rng.Source
	log   *zap.Logger
}

// NewAllocator creates an Allocator. A nil logger is replaced by a no-op one.
func NewAllocator(bank *Bank, state *AllocationState, src rng.Source, log *zap.Logger) *Allocator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Allocator{bank: bank, state: state, rand: src, log: log}
}

// State returns the allocation state shared by this allocator.
func (a *Allocator) State() *AllocationState {
	return a.state
}

// Allocate picks a catalog index for a room that wants a hard (or easy) clue.
// With excludeUsed, indices already handed out this session are skipped.
// A draw is marked used unless it came from the exhausted fallback.
func (a *Allocator) Allocate(wantHard, excludeUsed bool) Draw {
	n := a.bank.Len()
	available := func(i int) bool {
		return !excludeUsed || !a.state.IsUsed(i)
	}

	var candidates []int
	for i := 0; i < n; i++ {
		if available(i) && a.bank.matches(i, wantHard) {
			candidates = append(candidates, i)
		}
	}

	fallback := FallbackNone
	if len(candidates) == 0 {
		fallback = FallbackAnyTag
		for i := 0; i < n; i++ {
			if available(i) {
				candidates = append(candidates, i)
			}
		}
	}

	if len(candidates) == 0 {
		idx := a.rand.Intn(n)
		a.log.Warn("clue bank exhausted, reusing definition", zap.Int("clue", idx))
		return Draw{Index: idx, Fallback: FallbackExhausted}
	}

	idx := candidates[a.rand.Intn(len(candidates))]
	a.state.MarkUsed(idx)
	a.log.Debug("clue allocated",
		zap.Int("clue", idx),
		zap.Bool("hard", wantHard),
		zap.Stringer("fallback", fallback),
	)
	return Draw{Index: idx, Fallback: fallback}
}

// Issue allocates one definition and wraps it in a fresh instance.
func (a *Allocator) Issue(wantHard bool) *Instance {
	d := a.Allocate(wantHard, true)
	return NewInstance(d.Index, a.bank.Definition(d.Index))
}

// IssuePair allocates two instances for a two-door room. The second draw is
// re-rolled while it repeats the first.
func (a *Allocator) IssuePair(wantHard bool) (*Instance, *Instance) {
	first := a.Allocate(wantHard, true)
	second := a.Allocate(wantHard, true)
	for second.Index == first.Index && a.bank.Len() > 1 {
		second = a.Allocate(wantHard, true)
	}
	return NewInstance(first.Index, a.bank.Definition(first.Index)),
		NewInstance(second.Index, a.bank.Definition(second.Index))
}

// IssueFinal returns a fresh instance of the final gate clue. It never
// touches the allocation state.
func (a *Allocator) IssueFinal() *Instance {
	return NewInstance(a.bank.FinalIndex(), a.bank.Final())
}
