package setup

import (
	"github.com/zyedidia/generic/mapset"

	"escaperoom/pkg/game/world"
)

// DoorRef names one door: a room and its 1-based door number.
type DoorRef struct {
	Room world.RoomID
	Door int
}

// Report is the result of Analyze.
type Report struct {
	// Exits lists, for each entrance, the exits it can reach.
	Exits map[world.RoomID][]world.RoomID
	// Unreached are rooms no entrance can walk to.
	Unreached []world.RoomID
	// DeadDoors are doors of non-exit rooms that lead nowhere.
	DeadDoors []DoorRef
}

// Solvable reports whether every entrance reaches at least one exit.
func (r Report) Solvable() bool {
	for _, exits := range r.Exits {
		if len(exits) == 0 {
			return false
		}
	}
	return len(r.Exits) > 0
}

// Analyze walks the graph from every entrance.
func Analyze(g *world.Graph) Report {
	rep := Report{Exits: make(map[world.RoomID][]world.RoomID)}
	reached := mapset.New[world.RoomID]()

	for _, entrance := range g.Entrances() {
		Reachable(g, entrance).Each(func(id world.RoomID) {
			reached.Put(id)
		})
		rep.Exits[entrance] = ReachableExits(g, entrance)
	}

	for _, r := range g.Rooms() {
		if !reached.Has(r.ID) {
			rep.Unreached = append(rep.Unreached, r.ID)
		}
		if r.IsExit() {
			continue
		}
		for i, d := range r.Doors {
			if d.DeadEnd() {
				rep.DeadDoors = append(rep.DeadDoors, DoorRef{Room: r.ID, Door: i + 1})
			}
		}
	}
	sortIDs(rep.Unreached)
	return rep
}
