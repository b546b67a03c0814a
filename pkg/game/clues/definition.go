// Package clues holds the puzzle catalog and the per-door puzzle instances
// drawn from it.
package clues

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind is how a clue is answered.
type Kind int

const (
	FreeText       Kind = iota // Typed answer compared case-insensitively
	MultipleChoice             // One of four lettered options
)

func (k Kind) String() string {
	switch k {
	case FreeText:
		return "text"
	case MultipleChoice:
		return "choice"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Difficulty tags which rooms a clue may be drawn for.
type Difficulty int

const (
	Easy Difficulty = iota
	Hard
	Any
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Any:
		return "any"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// NumOptions is the number of options on every multiple choice clue.
const NumOptions = 4

// ChoiceLetters are the labels of the options, in order.
var ChoiceLetters = [NumOptions]byte{'A', 'B', 'C', 'D'}

// ErrInvalidDefinition is wrapped by every validation failure.
var ErrInvalidDefinition = errors.New("invalid clue definition")

// Definition is an immutable catalog entry.
type Definition struct {
	Kind       Kind
	Problem    string
	Solution   string             // FreeText only
	Options    [NumOptions]string // MultipleChoice only
	Correct    byte               // MultipleChoice only: 'A'..'D'
	Hint       string
	Points     int
	TimeLimit  time.Duration // per attempt, 0 = unlimited
	Difficulty Difficulty
}

// IsChoiceLetter reports whether c names one of the options (either case).
func IsChoiceLetter(c byte) bool {
	return ChoiceIndex(c) >= 0
}

// ChoiceIndex returns the option index for a letter, or -1.
func ChoiceIndex(c byte) int {
	c = upperASCII(c)
	for i, l := range ChoiceLetters {
		if l == c {
			return i
		}
	}
	return -1
}

// CorrectOption returns the text of the correct option for multiple choice clues.
func (d Definition) CorrectOption() string {
	if i := ChoiceIndex(d.Correct); i >= 0 {
		return d.Options[i]
	}
	return ""
}

// Answer returns a short description of the expected answer.
func (d Definition) Answer() string {
	if d.Kind == MultipleChoice {
		return fmt.Sprintf("%c) %s", d.Correct, d.CorrectOption())
	}
	return d.Solution
}

// Validate checks the shape invariants of a definition.
func (d Definition) Validate() error {
	if strings.TrimSpace(d.Problem) == "" {
		return fmt.Errorf("%w: empty problem", ErrInvalidDefinition)
	}
	if d.Points < 0 {
		return fmt.Errorf("%w: negative points on %q", ErrInvalidDefinition, d.Problem)
	}
	if d.TimeLimit < 0 {
		return fmt.Errorf("%w: negative time limit on %q", ErrInvalidDefinition, d.Problem)
	}
	switch d.Kind {
	case MultipleChoice:
		for i, o := range d.Options {
			if strings.TrimSpace(o) == "" {
				return fmt.Errorf("%w: option %c is empty on %q", ErrInvalidDefinition, ChoiceLetters[i], d.Problem)
			}
		}
		if !IsChoiceLetter(d.Correct) || d.Correct != upperASCII(d.Correct) {
			return fmt.Errorf("%w: correct label %q is not one of A-D on %q", ErrInvalidDefinition, d.Correct, d.Problem)
		}
	case FreeText:
		for _, o := range d.Options {
			if o != "" {
				return fmt.Errorf("%w: free text clue %q has options", ErrInvalidDefinition, d.Problem)
			}
		}
		if strings.TrimSpace(d.Solution) == "" {
			return fmt.Errorf("%w: empty solution on %q", ErrInvalidDefinition, d.Problem)
		}
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidDefinition, d.Kind)
	}
	return nil
}

// Matches checks a free text answer against the solution.
// Only ASCII letters are case-folded.
func (d Definition) Matches(answer string) bool {
	return lowerASCII(answer) == lowerASCII(d.Solution)
}

func upperASCII(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c - 'A' + 'a'
		}
	}
	return string(b)
}
