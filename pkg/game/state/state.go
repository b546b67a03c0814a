package state

import (
	"github.com/zyedidia/generic/mapset"

	"escaperoom/pkg/game/world"
)

// StartScore is the score every game begins with.
const StartScore = 100

// Phase is where the game loop stands.
type Phase int

const (
	PhaseChoosing   Phase = iota // Picking an entrance
	PhaseAtRoom                  // Standing in a room with doors
	PhaseAtExitGate              // Standing in an exit room in front of the final gate
	PhaseWon
	PhaseQuit
)

func (p Phase) String() string {
	switch p {
	case PhaseChoosing:
		return "choosing"
	case PhaseAtRoom:
		return "at-room"
	case PhaseAtExitGate:
		return "at-exit-gate"
	case PhaseWon:
		return "won"
	case PhaseQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Game represents the state of one playthrough
type Game struct {
	Graph *world.Graph

	Current world.RoomID

	Score int

	History *History

	Visited mapset.Set[world.RoomID]

	Seed int64 // Seed the graph was built from

	finished Phase // PhaseWon or PhaseQuit once the game is over
	started  bool
}

// NewGame creates a new game over a built graph
func NewGame(g *world.Graph) *Game {
	return &Game{
		Graph:   g,
		Score:   StartScore,
		Visited: mapset.New[world.RoomID](),
	}
}

// Enter places the player in the n-th entrance (1-based) and seeds the history.
func (g *Game) Enter(n int) bool {
	r := g.Graph.Entrance(n)
	if r == nil {
		return false
	}
	g.Current = r.ID
	g.History = NewHistory(r.ID)
	g.Visited.Put(r.ID)
	g.started = true
	return true
}

// Room returns the room the player stands in, or nil before an entrance is chosen.
func (g *Game) Room() *world.Room {
	if !g.started {
		return nil
	}
	return g.Graph.Room(g.Current)
}

// MoveTo advances into id and records it in the history.
func (g *Game) MoveTo(id world.RoomID) {
	g.History.Push(id)
	g.Current = id
	g.Visited.Put(id)
}

// Undo steps back to the previous room. It returns false when the player is
// still in the entrance they started from.
func (g *Game) Undo() bool {
	id, ok := g.History.Undo()
	if !ok {
		return false
	}
	g.Current = id
	return true
}

// AdjustScore adds delta to the score and returns the new score.
func (g *Game) AdjustScore(delta int) int {
	g.Score += delta
	return g.Score
}

// Win ends the game as an escape.
func (g *Game) Win() {
	g.finished = PhaseWon
}

// Quit ends the game and forfeits the score.
func (g *Game) Quit() {
	g.Score = 0
	g.finished = PhaseQuit
}

// Phase reports where the game loop stands.
func (g *Game) Phase() Phase {
	switch {
	case g.finished == PhaseWon || g.finished == PhaseQuit:
		return g.finished
	case !g.started:
		return PhaseChoosing
	}
	if r := g.Room(); r != nil && r.IsExit() {
		return PhaseAtExitGate
	}
	return PhaseAtRoom
}

// Over reports whether the game has ended.
func (g *Game) Over() bool {
	p := g.Phase()
	return p == PhaseWon || p == PhaseQuit
}

// HasVisited reports whether the player has stood in room id.
func (g *Game) HasVisited(id world.RoomID) bool {
	return g.Visited.Has(id)
}
