package clues

import (
	"errors"
	"fmt"
)

// ErrNoFinal is returned when a catalog has no final gate entry.
var ErrNoFinal = errors.New("catalog has no final clue")

// Bank is the static catalog. The final entry is stored apart from the
// normal entries so normal allocation can never reach it.
type Bank struct {
	normal []Definition
	final  Definition
}

// NewBank validates the definitions and builds a Bank.
// There must be at least one normal definition.
func NewBank(normal []Definition, final Definition) (*Bank, error) {
	if len(normal) == 0 {
		return nil, fmt.Errorf("%w: catalog has no normal clues", ErrInvalidDefinition)
	}
	for i, d := range normal {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("clue %d: %w", i, err)
		}
	}
	if err := final.Validate(); err != nil {
		return nil, fmt.Errorf("final clue: %w", err)
	}
	defs := make([]Definition, len(normal))
	copy(defs, normal)
	return &Bank{normal: defs, final: final}, nil
}

// Len returns the number of normal definitions.
func (b *Bank) Len() int {
	return len(b.normal)
}

// Definition returns the normal definition at index i.
func (b *Bank) Definition(i int) Definition {
	return b.normal[i]
}

// Final returns the final gate definition.
func (b *Bank) Final() Definition {
	return b.final
}

// FinalIndex is the catalog index reported for final gate instances.
// It sits one past the last normal entry.
func (b *Bank) FinalIndex() int {
	return len(b.normal)
}

// matches reports whether definition i may be drawn for the requested difficulty.
func (b *Bank) matches(i int, wantHard bool) bool {
	switch b.normal[i].Difficulty {
	case Any:
		return true
	case Hard:
		return wantHard
	default:
		return !wantHard
	}
}
