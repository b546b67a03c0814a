// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"

	"escaperoom/pkg/game/clues"
	"escaperoom/pkg/game/setup"
	"escaperoom/pkg/game/state"
	"escaperoom/pkg/game/world"
)

// DumpGraph writes a full debug dump of the room graph to w: metadata,
// every room with its doors and puzzles, trapped edges and reachability.
// Answers are included.
func DumpGraph(w io.Writer, g *state.Game) error {
	bw := bufio.NewWriter(w)
	graph := g.Graph
	rep := setup.Analyze(graph)

	// --- Metadata ---
	fmt.Fprintln(bw, "=== MAP DUMP DEBUG (rooms, doors, puzzles, routing) ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "seed: %d\n", g.Seed)
	fmt.Fprintf(bw, "rooms: %d\n", len(graph.Rooms()))
	fmt.Fprintf(bw, "entrances: %v\n", graph.Entrances())
	fmt.Fprintf(bw, "exits: %v\n", graph.Exits())
	fmt.Fprintf(bw, "score: %d\n", g.Score)
	fmt.Fprintf(bw, "solvable: %v\n", rep.Solvable())
	fmt.Fprintln(bw, "")

	// --- Rooms ---
	fmt.Fprintln(bw, "--- Rooms ---")
	for _, r := range graph.Rooms() {
		fmt.Fprintf(bw, "room: %d type: %s", r.ID, r.Label())
		if g.HasVisited(r.ID) {
			fmt.Fprint(bw, " visited: true")
		}
		fmt.Fprintln(bw)
		for i, d := range r.Doors {
			writeDoor(bw, r, i, d)
		}
	}
	fmt.Fprintln(bw, "")

	// --- Traps ---
	fmt.Fprintln(bw, "--- Traps ---")
	for _, e := range graph.Traps() {
		t, _ := graph.TrapFor(e.From, e.To)
		fmt.Fprintf(bw, "  %d -> %d: %s\n", e.From, e.To, t.Name)
	}
	fmt.Fprintln(bw, "")

	// --- Reachability ---
	fmt.Fprintln(bw, "--- Reachability ---")
	for _, id := range graph.Entrances() {
		fmt.Fprintf(bw, "  entrance %d reaches exits: %v\n", id, rep.Exits[id])
	}
	if len(rep.Unreached) > 0 {
		fmt.Fprintf(bw, "  unreached rooms: %v\n", rep.Unreached)
	}
	for _, d := range rep.DeadDoors {
		fmt.Fprintf(bw, "  dead door: room %d door %d\n", d.Room, d.Door)
	}

	return bw.Flush()
}

func writeDoor(w io.Writer, r *world.Room, i int, d world.Door) {
	label := fmt.Sprintf("door %d", i+1)
	target := "[NONE]"
	switch {
	case r.IsExit():
		label = "final door"
		target = "escape"
	case !d.DeadEnd():
		target = fmt.Sprintf("room %d", d.To)
	}
	fmt.Fprintf(w, "  %s -> %s\n", label, target)

	c := d.Clue
	if c == nil {
		return
	}
	fmt.Fprintf(w, "    clue: #%d kind: %s difficulty: %s points: %d time_limit: %s attempts: %d hint_used: %v\n",
		c.Index, c.Def.Kind, c.Def.Difficulty, c.Def.Points, c.Def.TimeLimit, c.Attempts, c.UsedHint)
	fmt.Fprintf(w, "    problem: %q\n", c.Def.Problem)
	if c.Def.Kind == clues.MultipleChoice {
		for j, opt := range c.Def.Options {
			fmt.Fprintf(w, "      %c) %s\n", clues.ChoiceLetters[j], opt)
		}
	}
	fmt.Fprintf(w, "    answer: %q\n", c.Def.Answer())
}
