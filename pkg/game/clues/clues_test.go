package clues

import (
	"errors"
	"strings"
	"testing"

	"escaperoom/pkg/engine/rng"
)

func choice(problem string, diff Difficulty) Definition {
	return Definition{
		Kind:       MultipleChoice,
		Problem:    problem,
		Options:    [NumOptions]string{"a", "b", "c", "d"},
		Correct:    'A',
		Hint:       "hint",
		Points:     10,
		Difficulty: diff,
	}
}

func text(problem, solution string, diff Difficulty) Definition {
	return Definition{
		Kind:       FreeText,
		Problem:    problem,
		Solution:   solution,
		Hint:       "hint",
		Points:     10,
		Difficulty: diff,
	}
}

func mustBank(t *testing.T, normal ...Definition) *Bank {
	t.Helper()
	b, err := NewBank(normal, text("final", "gopher", Any))
	if err != nil {
		t.Fatalf("NewBank() error = %v", err)
	}
	return b
}

func TestDefinition_Validate(t *testing.T) {
	missingOption := choice("q", Easy)
	missingOption.Options[2] = " "
	badLabel := choice("q", Easy)
	badLabel.Correct = 'E'
	lowerLabel := choice("q", Easy)
	lowerLabel.Correct = 'b'
	textWithOptions := text("q", "a", Easy)
	textWithOptions.Options[0] = "x"

	tests := []struct {
		name string
		def  Definition
		ok   bool
	}{
		{"valid choice", choice("q", Easy), true},
		{"valid text", text("q", "answer", Hard), true},
		{"empty option", missingOption, false},
		{"label out of range", badLabel, false},
		{"lower case label", lowerLabel, false},
		{"text with options", textWithOptions, false},
		{"text without solution", text("q", "", Easy), false},
		{"empty problem", text("", "a", Easy), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidDefinition) {
				t.Errorf("Validate() = %v, want ErrInvalidDefinition", err)
			}
		})
	}
}

func TestDefinition_Matches(t *testing.T) {
	d := text("q", "H2O", Easy)
	tests := []struct {
		answer string
		want   bool
	}{
		{"h2o", true},
		{"H2O", true},
		{"h2o ", false},
		{"ho2", false},
	}
	for _, tt := range tests {
		if got := d.Matches(tt.answer); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}

func TestChoiceIndex(t *testing.T) {
	for c, want := range map[byte]int{'a': 0, 'B': 1, 'c': 2, 'D': 3, 'e': -1, '1': -1} {
		if got := ChoiceIndex(c); got != want {
			t.Errorf("ChoiceIndex(%q) = %d, want %d", c, got, want)
		}
	}
}

func TestAllocate_MatchesDifficulty(t *testing.T) {
	bank := mustBank(t,
		choice("easy0", Easy),
		choice("hard1", Hard),
		choice("any2", Any),
		choice("easy3", Easy),
	)
	tests := []struct {
		name     string
		wantHard bool
		allowed  map[int]bool
	}{
		{"hard", true, map[int]bool{1: true, 2: true}},
		{"easy", false, map[int]bool{0: true, 2: true, 3: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := int64(1); seed <= 20; seed++ {
				a := NewAllocator(bank, NewAllocationState(), rng.New(seed), nil)
				d := a.Allocate(tt.wantHard, true)
				if !tt.allowed[d.Index] || d.Fallback != FallbackNone {
					t.Fatalf("seed %d: Allocate(%v) = %+v, want index in %v with no fallback", seed, tt.wantHard, d, tt.allowed)
				}
			}
		})
	}
}

func TestAllocate_NoRepeatsUntilExhausted(t *testing.T) {
	bank := mustBank(t,
		choice("e0", Easy),
		choice("e1", Easy),
		choice("h2", Hard),
	)
	state := NewAllocationState()
	a := NewAllocator(bank, state, rng.New(3), nil)

	seen := map[int]bool{}
	wantFallbacks := []Fallback{FallbackNone, FallbackNone, FallbackAnyTag}
	for i, want := range wantFallbacks {
		d := a.Allocate(false, true)
		if seen[d.Index] {
			t.Fatalf("draw %d repeated index %d", i, d.Index)
		}
		seen[d.Index] = true
		if d.Fallback != want {
			t.Errorf("draw %d fallback = %v, want %v", i, d.Fallback, want)
		}
	}
	if state.Count() != 3 {
		t.Errorf("state.Count() = %d, want 3", state.Count())
	}

	d := a.Allocate(true, true)
	if d.Fallback != FallbackExhausted {
		t.Errorf("draw after exhaustion fallback = %v, want %v", d.Fallback, FallbackExhausted)
	}
	if d.Index < 0 || d.Index >= bank.Len() {
		t.Errorf("exhausted draw index = %d, want in [0, %d)", d.Index, bank.Len())
	}
	if state.Count() != 3 {
		t.Errorf("exhausted draw changed state.Count() to %d, want 3", state.Count())
	}
}

func TestAllocate_IncludeUsed(t *testing.T) {
	bank := mustBank(t, choice("e0", Easy))
	state := NewAllocationState()
	a := NewAllocator(bank, state, rng.NewSequence(0), nil)
	a.Allocate(false, true)
	d := a.Allocate(false, false)
	if d.Index != 0 || d.Fallback != FallbackNone {
		t.Errorf("Allocate(false, false) = %+v, want index 0 without fallback", d)
	}
}

func TestIssuePair_Distinct(t *testing.T) {
	bank := mustBank(t, choice("e0", Easy), choice("e1", Easy), choice("e2", Easy))
	// Exhaust the bank first so both draws come from the random fallback,
	// and script the fallback to repeat once.
	state := NewAllocationState()
	for i := 0; i < bank.Len(); i++ {
		state.MarkUsed(i)
	}
	a := NewAllocator(bank, state, rng.NewSequence(1, 1, 1, 2), nil)
	first, second := a.IssuePair(false)
	if first.Index == second.Index {
		t.Errorf("IssuePair() indices = %d, %d; want distinct", first.Index, second.Index)
	}
	if first.Index != 1 || second.Index != 2 {
		t.Errorf("IssuePair() indices = %d, %d; want 1, 2", first.Index, second.Index)
	}
}

func TestIssuePair_SingleEntryBankTerminates(t *testing.T) {
	bank := mustBank(t, choice("only", Easy))
	a := NewAllocator(bank, NewAllocationState(), rng.New(1), nil)
	first, second := a.IssuePair(false)
	if first.Index != 0 || second.Index != 0 {
		t.Errorf("IssuePair() on one-entry bank = %d, %d; want 0, 0", first.Index, second.Index)
	}
}

func TestIssueFinal_NeverMarksUsed(t *testing.T) {
	bank := mustBank(t, choice("e0", Easy))
	state := NewAllocationState()
	a := NewAllocator(bank, state, rng.New(1), nil)
	for i := 0; i < 3; i++ {
		f := a.IssueFinal()
		if f.Def.Problem != "final" || f.Index != bank.FinalIndex() {
			t.Errorf("IssueFinal() = %q (index %d), want final at %d", f.Def.Problem, f.Index, bank.FinalIndex())
		}
		if f.Attempts != DefaultAttempts || f.UsedHint {
			t.Errorf("IssueFinal() state = attempts %d hint %v, want fresh", f.Attempts, f.UsedHint)
		}
	}
	if state.Count() != 0 {
		t.Errorf("state.Count() after IssueFinal = %d, want 0", state.Count())
	}
}

func TestInstance_ResetAttemptsKeepsHint(t *testing.T) {
	c := NewInstance(4, choice("q", Easy))
	c.Attempts = 0
	c.UsedHint = true
	c.ResetAttempts()
	if c.Attempts != DefaultAttempts || !c.UsedHint || c.Def.Problem != "q" {
		t.Errorf("after ResetAttempts: %+v, want full attempts, hint kept, same definition", c)
	}
}

func TestDefault_Catalog(t *testing.T) {
	b, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if b.Len() < 17 {
		t.Errorf("Default().Len() = %d, want enough entries for a full map", b.Len())
	}
	if b.Final().Kind != FreeText || b.Final().Points != 15 {
		t.Errorf("Default().Final() = %+v, want 15-point free text gate", b.Final())
	}
	hard := 0
	for i := 0; i < b.Len(); i++ {
		if b.Definition(i).Difficulty != Easy {
			hard++
		}
	}
	if hard < 3 {
		t.Errorf("default catalog has %d hard-eligible clues, want at least 3", hard)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "no final",
			yaml: "clues:\n  - kind: text\n    problem: p\n    solution: s\n",
			want: ErrNoFinal,
		},
		{
			name: "three options",
			yaml: "clues:\n  - kind: choice\n    problem: p\n    options: [a, b, c]\n    correct: A\nfinal:\n  problem: f\n  solution: s\n",
			want: ErrInvalidDefinition,
		},
		{
			name: "unknown difficulty",
			yaml: "clues:\n  - kind: text\n    difficulty: brutal\n    problem: p\n    solution: s\nfinal:\n  problem: f\n  solution: s\n",
			want: ErrInvalidDefinition,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoad_LowerCaseLabel(t *testing.T) {
	src := `
clues:
  - kind: choice
    difficulty: hard
    problem: p
    options: [w, x, y, z]
    correct: d
    time_limit: 5
final:
  problem: f
  solution: s
`
	b, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	d := b.Definition(0)
	if d.Correct != 'D' || d.CorrectOption() != "z" || d.TimeLimit.Seconds() != 5 {
		t.Errorf("Load() definition = %+v, want correct D (z) with 5s limit", d)
	}
}
