// Package setup checks the built room graph for solvability.
package setup

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"escaperoom/pkg/game/world"
)

// Reachable returns every room that can be walked to from start through
// doors, start included. Exit gates and dead ends lead nowhere.
func Reachable(g *world.Graph, start world.RoomID) mapset.Set[world.RoomID] {
	visited := mapset.New[world.RoomID]()
	queue := []world.RoomID{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		r := g.Room(current)
		if r == nil || visited.Has(current) {
			continue
		}
		visited.Put(current)

		if r.IsExit() {
			continue
		}
		for _, d := range r.Doors {
			if !d.DeadEnd() && !visited.Has(d.To) {
				queue = append(queue, d.To)
			}
		}
	}
	return visited
}

// ReachableExits returns the exits reachable from room start, sorted by id.
func ReachableExits(g *world.Graph, start world.RoomID) []world.RoomID {
	seen := Reachable(g, start)
	var exits []world.RoomID
	for _, id := range g.Exits() {
		if seen.Has(id) {
			exits = append(exits, id)
		}
	}
	sortIDs(exits)
	return exits
}

func sortIDs(ids []world.RoomID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
