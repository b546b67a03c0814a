package world

import (
	"sort"

	"go.uber.org/zap"

	"escaperoom/pkg/engine/rng"
	"escaperoom/pkg/game/clues"
)

// Graph owns every room of a session. Topology is fixed once built; only the
// clue instances on the doors change afterwards.
type Graph struct {
	rooms     []Room
	index     map[RoomID]int
	entrances []RoomID
	exits     []RoomID
	traps     map[Edge]Trap
}

// Room returns the room with the given id, or nil.
func (g *Graph) Room(id RoomID) *Room {
	i, ok := g.index[id]
	if !ok {
		return nil
	}
	return &g.rooms[i]
}

// Rooms returns every room in construction order.
func (g *Graph) Rooms() []*Room {
	out := make([]*Room, len(g.rooms))
	for i := range g.rooms {
		out[i] = &g.rooms[i]
	}
	return out
}

// Entrances returns the entrance ids in layout order.
func (g *Graph) Entrances() []RoomID {
	return append([]RoomID(nil), g.entrances...)
}

// Exits returns the exit ids in layout order.
func (g *Graph) Exits() []RoomID {
	return append([]RoomID(nil), g.exits...)
}

// Entrance returns the n-th entrance (1-based), or nil.
func (g *Graph) Entrance(n int) *Room {
	if n < 1 || n > len(g.entrances) {
		return nil
	}
	return g.Room(g.entrances[n-1])
}

// TrapFor looks up the trap on a move, if any.
func (g *Graph) TrapFor(from, to RoomID) (Trap, bool) {
	t, ok := g.traps[Edge{From: from, To: to}]
	return t, ok
}

// Traps returns the trapped edges sorted by source then destination.
func (g *Graph) Traps() []Edge {
	edges := make([]Edge, 0, len(g.traps))
	for e := range g.traps {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}

// Builder assembles a Graph from a topology table.
type Builder struct {
	Layout []RoomPlan
	Traps  map[Edge]Trap
	Rand   rng.Source
	Log    *zap.Logger
}

// NewBuilder creates a Builder for the default station map.
func NewBuilder(src rng.Source, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{Layout: DefaultLayout, Traps: DefaultTraps, Rand: src, Log: log}
}

// Build constructs the graph. It never fails: destinations that are missing
// or unknown become dead ends.
func (b *Builder) Build(alloc *clues.Allocator) *Graph {
	log := b.Log
	if log == nil {
		log = zap.NewNop()
	}
	g := &Graph{
		rooms: make([]Room, 0, len(b.Layout)),
		index: make(map[RoomID]int, len(b.Layout)),
		traps: make(map[Edge]Trap, len(b.Traps)),
	}

	// Nodes with empty doors
	for _, plan := range b.Layout {
		diff := plan.Difficulty
		if plan.Category != Intermediate {
			diff = clues.Easy
		}
		g.index[plan.ID] = len(g.rooms)
		g.rooms = append(g.rooms, Room{
			ID:         plan.ID,
			Category:   plan.Category,
			Difficulty: diff,
			Doors:      make([]Door, DoorCount(plan.Category, diff)),
		})
		switch plan.Category {
		case Entrance:
			g.entrances = append(g.entrances, plan.ID)
		case Exit:
			g.exits = append(g.exits, plan.ID)
		}
	}

	// Destinations
	for i, plan := range b.Layout {
		r := &g.rooms[i]
		if r.IsExit() {
			continue
		}
		for d := range r.Doors {
			if d < len(plan.Doors) {
				if _, ok := g.index[plan.Doors[d]]; ok {
					r.Doors[d].To = plan.Doors[d]
				}
			}
		}
	}

	// Clues
	for i := range g.rooms {
		r := &g.rooms[i]
		switch {
		case r.IsExit():
			r.Doors[0].Clue = alloc.IssueFinal()
		case r.IsEasy():
			r.Doors[0].Clue, r.Doors[1].Clue = alloc.IssuePair(false)
		default:
			r.Doors[0].Clue = alloc.Issue(r.IsHard())
		}
	}

	// Shuffle easy branches; a door keeps its puzzle when it moves.
	for i := range g.rooms {
		r := &g.rooms[i]
		if !r.IsEasy() {
			continue
		}
		if b.Rand.Intn(2) == 0 {
			r.Doors[0], r.Doors[1] = r.Doors[1], r.Doors[0]
			log.Debug("doors swapped", zap.Int("room", int(r.ID)))
		}
	}

	for e, t := range b.Traps {
		g.traps[e] = t
	}

	log.Debug("graph built",
		zap.Int("rooms", len(g.rooms)),
		zap.Int("allocated", alloc.State().Count()),
	)
	return g
}
