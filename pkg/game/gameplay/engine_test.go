package gameplay

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/clues"
	"escaperoom/pkg/game/puzzle"
	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/game/state"
	"escaperoom/pkg/game/world"
)

// newTestEngine builds a seeded game reading the given lines, with a frozen clock.
func newTestEngine(t *testing.T, seed int64, lines ...string) (*Engine, *renderer.Recorder) {
	t.Helper()
	bank, err := clues.Default()
	if err != nil {
		t.Fatalf("clues.Default() error = %v", err)
	}
	g := BuildGame(bank, seed, nil)
	script := strings.Join(lines, "\n")
	if len(lines) > 0 {
		script += "\n"
	}
	rec := &renderer.Recorder{}
	e := NewEngine(g, input.NewReader(strings.NewReader(script)), rec, nil)
	frozen := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	e.SetClock(func() time.Time { return frozen })
	return e, rec
}

// answer returns the correct reply for c.
func answer(c *clues.Instance) string {
	if c.Def.Kind == clues.MultipleChoice {
		return string(c.Def.Correct)
	}
	return c.Def.Solution
}

// wrong returns a reply that is accepted but incorrect for c.
func wrong(c *clues.Instance) string {
	if c.Def.Kind == clues.MultipleChoice {
		for _, l := range clues.ChoiceLetters {
			if l != c.Def.Correct {
				return string(l)
			}
		}
	}
	return "definitely not it"
}

// doorTo returns the 1-based door number in room from that leads to to.
func doorTo(t *testing.T, g *state.Game, from, to world.RoomID) int {
	t.Helper()
	for i, d := range g.Graph.Room(from).Doors {
		if d.To == to {
			return i + 1
		}
	}
	t.Fatalf("room %d has no door to %d", from, to)
	return 0
}

func clueOn(g *state.Game, room world.RoomID, door int) *clues.Instance {
	return g.Graph.Room(room).Doors[door-1].Clue
}

func TestEngine_EndToEndEscape(t *testing.T) {
	e, _ := newTestEngine(t, 11)
	g := e.Game

	// Entrance 2 -> 9 -> 10 (merge of 9 and 12) -> exit 100 -> final gate.
	c2 := clueOn(g, 2, 1)
	c9 := clueOn(g, 9, 1)
	c10 := clueOn(g, 10, 1)
	final := clueOn(g, 100, 1)

	lines := []string{
		"1", answer(c2),
		"1", "h", answer(c9),
		"1", wrong(c10), answer(c10),
		"1", answer(final),
	}
	e.In = input.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	e.Resolver.In = e.In

	rec := &renderer.Recorder{}
	e.Out, e.Resolver.Out = rec, rec

	if !e.Start(2) {
		t.Fatal("Start(2) = false")
	}
	if err := e.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := state.StartScore + c2.Def.Points - puzzle.HintPenalty + c9.Def.Points + c10.Def.Points + final.Def.Points
	if g.Phase() != state.PhaseWon {
		t.Fatalf("Phase() = %v, want %v", g.Phase(), state.PhaseWon)
	}
	if g.Score != want {
		t.Errorf("final score = %d, want %d", g.Score, want)
	}
	if ev, ok := rec.Last(renderer.EventWon); !ok || ev.Score != want || ev.Room.ID != 100 {
		t.Errorf("won event = %+v, %v; want score %d at room 100", ev, ok, want)
	}
	if got, want := g.History.Path(), []world.RoomID{2, 9, 10, 100}; !reflect.DeepEqual(got, want) {
		t.Errorf("History.Path() = %v, want %v", got, want)
	}
}

func TestEngine_UndoWalksHistory(t *testing.T) {
	e, rec := newTestEngine(t, 3)
	g := e.Game
	e.Start(1)
	g.MoveTo(5)
	g.MoveTo(6)

	if err := e.ProcessIntent(input.MapToIntent("0")); err != nil {
		t.Fatalf("ProcessIntent(undo) error = %v", err)
	}
	if g.Current != 5 {
		t.Errorf("Current after undo = %d, want 5", g.Current)
	}
	if got, want := g.History.Path(), []world.RoomID{1, 5}; !reflect.DeepEqual(got, want) {
		t.Errorf("History.Path() = %v, want %v", got, want)
	}

	e.ProcessIntent(input.MapToIntent("0"))
	e.ProcessIntent(input.MapToIntent("0"))
	if g.Current != 1 || g.History.Len() != 1 {
		t.Errorf("after undoing past the seed current %d len %d, want 1 and 1", g.Current, g.History.Len())
	}
	if rec.Count(renderer.EventNoPrevious) != 1 {
		t.Errorf("no-previous events = %d, want 1", rec.Count(renderer.EventNoPrevious))
	}
}

func TestEngine_WrongDoorPenaltyAndReset(t *testing.T) {
	e, rec := newTestEngine(t, 4)
	g := e.Game
	c := clueOn(g, 1, 1)
	before := c.Def

	lines := []string{"1", wrong(c), wrong(c), wrong(c), "1", wrong(c), wrong(c), answer(c)}
	e.In = input.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	e.Resolver.In = e.In
	e.Start(1)

	if err := e.Run(); !errors.Is(err, input.ErrClosed) {
		t.Fatalf("Run() error = %v, want input.ErrClosed once the script ends", err)
	}
	if rec.Count(renderer.EventDoorFailed) != 1 {
		t.Fatalf("door failed events = %d, want 1", rec.Count(renderer.EventDoorFailed))
	}
	ev, _ := rec.Last(renderer.EventDoorFailed)
	if ev.Score != state.StartScore-WrongDoorPenalty || ev.Amount != WrongDoorPenalty {
		t.Errorf("door failed event = %+v, want score %d", ev, state.StartScore-WrongDoorPenalty)
	}
	if !reflect.DeepEqual(c.Def, before) {
		t.Error("clue definition changed after reset")
	}
	// Second cycle had the full budget: two misses and a solve.
	if g.Current != 5 {
		t.Errorf("Current = %d, want 5 after solving on the third try", g.Current)
	}
	if want := state.StartScore - WrongDoorPenalty + c.Def.Points; g.Score != want {
		t.Errorf("Score = %d, want %d", g.Score, want)
	}
}

func TestEngine_InvalidDoorChangesNothing(t *testing.T) {
	e, rec := newTestEngine(t, 5)
	g := e.Game
	e.Start(3)

	for _, code := range []string{"2", "7", "door"} {
		if err := e.ProcessIntent(input.MapToIntent(code)); err != nil {
			t.Fatalf("ProcessIntent(%q) error = %v", code, err)
		}
	}
	if rec.Count(renderer.EventInvalidDoor) != 3 {
		t.Errorf("invalid door events = %d, want 3", rec.Count(renderer.EventInvalidDoor))
	}
	if g.Current != 3 || g.Score != state.StartScore || clueOn(g, 3, 1).Attempts != clues.DefaultAttempts {
		t.Errorf("state changed: current %d score %d", g.Current, g.Score)
	}
}

func TestEngine_DeadEndDoor(t *testing.T) {
	e, rec := newTestEngine(t, 6)
	g := e.Game
	g.Graph.Room(1).Doors[0].To = world.NoRoom
	e.Start(1)

	e.ProcessIntent(input.MapToIntent("1"))
	if rec.Count(renderer.EventDeadEnd) != 1 || rec.Count(renderer.EventPuzzle) != 0 {
		t.Errorf("events = %v, want a dead end without a puzzle", rec.Kinds())
	}
	if g.Current != 1 {
		t.Errorf("Current = %d, want 1", g.Current)
	}
}

func TestEngine_TrapIsFlavourOnly(t *testing.T) {
	e, rec := newTestEngine(t, 7)
	g := e.Game
	door := doorTo(t, g, 7, 5)
	c := clueOn(g, 7, door)

	e.Start(4)
	g.MoveTo(7)
	e.In = input.NewReader(strings.NewReader(answer(c) + "\n"))
	e.Resolver.In = e.In

	if err := e.ProcessIntent(input.MapToIntent(string(rune('0' + door)))); err != nil {
		t.Fatalf("ProcessIntent(door %d) error = %v", door, err)
	}
	ev, ok := rec.Last(renderer.EventTrap)
	if !ok || ev.Trap.Name != "sector-reset" {
		t.Fatalf("trap event = %+v, %v; want sector-reset", ev, ok)
	}
	if g.Current != 5 {
		t.Errorf("Current = %d, want 5 (trap does not redirect)", g.Current)
	}
	if want := state.StartScore + c.Def.Points; g.Score != want {
		t.Errorf("Score = %d, want %d (trap does not penalise)", g.Score, want)
	}
}

func TestEngine_FinalGateStaysLocked(t *testing.T) {
	e, rec := newTestEngine(t, 8)
	g := e.Game
	final := clueOn(g, 99, 1)

	e.Start(1)
	g.MoveTo(5)
	g.MoveTo(6)
	g.MoveTo(99)

	e.In = input.NewReader(strings.NewReader(strings.Repeat(wrong(final)+"\n", 3)))
	e.Resolver.In = e.In

	if err := e.ProcessIntent(input.MapToIntent("2")); err != nil {
		t.Fatalf("ProcessIntent(2) error = %v", err)
	}
	if rec.Count(renderer.EventInvalidDoor) != 1 {
		t.Errorf("door 2 at an exit: events %v, want invalid door", rec.Kinds())
	}

	if err := e.ProcessIntent(input.MapToIntent("1")); err != nil {
		t.Fatalf("ProcessIntent(1) error = %v", err)
	}
	if rec.Count(renderer.EventFinalLocked) != 1 || final.Attempts != 0 {
		t.Fatalf("after three misses: final-locked %d attempts %d, want 1 and 0", rec.Count(renderer.EventFinalLocked), final.Attempts)
	}
	if g.Score != state.StartScore {
		t.Errorf("Score = %d, want %d (no penalty at the final gate)", g.Score, state.StartScore)
	}

	// The gate stays locked and reads no input; the script is already spent.
	if err := e.ProcessIntent(input.MapToIntent("1")); err != nil {
		t.Fatalf("ProcessIntent(1) on a locked gate error = %v", err)
	}
	if rec.Count(renderer.EventFinalLocked) != 2 || g.Phase() != state.PhaseAtExitGate {
		t.Errorf("locked gate retry: final-locked %d phase %v", rec.Count(renderer.EventFinalLocked), g.Phase())
	}

	e.ProcessIntent(input.MapToIntent("0"))
	if g.Current != 6 || final.Attempts != 0 {
		t.Errorf("undo from exit: current %d final attempts %d, want 6 and still 0", g.Current, final.Attempts)
	}
}

func TestEngine_QuitForfeitsScore(t *testing.T) {
	e, rec := newTestEngine(t, 9, "9", "1")
	e.Start(2)
	e.Game.AdjustScore(25)

	if err := e.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if e.Game.Phase() != state.PhaseQuit || e.Game.Score != 0 {
		t.Errorf("after quit phase %v score %d, want quit and 0", e.Game.Phase(), e.Game.Score)
	}
	if ev, ok := rec.Last(renderer.EventQuit); !ok || ev.Score != 0 {
		t.Errorf("quit event = %+v, %v; want score 0", ev, ok)
	}
	// Nothing is processed after the game is over.
	e.ProcessIntent(input.MapToIntent("1"))
	if rec.Count(renderer.EventPuzzle) != 0 {
		t.Error("a puzzle was opened after quitting")
	}
}

func TestEngine_InputClosed(t *testing.T) {
	e, rec := newTestEngine(t, 10)
	e.Start(1)
	if err := e.Run(); !errors.Is(err, input.ErrClosed) {
		t.Fatalf("Run() error = %v, want input.ErrClosed", err)
	}
	if rec.Count(renderer.EventInputClosed) != 1 {
		t.Errorf("input closed events = %d, want 1", rec.Count(renderer.EventInputClosed))
	}
}

func TestBuildGame_SameSeedSameMap(t *testing.T) {
	bank, err := clues.Default()
	if err != nil {
		t.Fatalf("clues.Default() error = %v", err)
	}
	a := BuildGame(bank, 77, nil)
	b := BuildGame(bank, 77, nil)
	if a.Seed != 77 || a.Score != state.StartScore {
		t.Errorf("BuildGame seed %d score %d, want 77 and %d", a.Seed, a.Score, state.StartScore)
	}
	for _, r := range a.Graph.Rooms() {
		other := b.Graph.Room(r.ID)
		for i, d := range r.Doors {
			if d.To != other.Doors[i].To || d.Clue.Index != other.Doors[i].Clue.Index {
				t.Fatalf("room %d door %d differs between builds with the same seed", r.ID, i+1)
			}
		}
	}
}
