// Package world holds the room graph the player moves through.
// Rooms live in an arena owned by the Graph; doors refer to rooms by id.
package world

import (
	"fmt"

	"escaperoom/pkg/game/clues"
)

// RoomID is the stable identity of a room.
type RoomID int

// NoRoom marks a door that leads nowhere.
const NoRoom RoomID = 0

// Category is the structural role of a room.
type Category int

const (
	Entrance Category = iota
	Intermediate
	Exit
)

func (c Category) String() string {
	switch c {
	case Entrance:
		return "ENTRANCE"
	case Intermediate:
		return "INTERMEDIATE"
	case Exit:
		return "EXIT"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Door is an outgoing edge paired with the puzzle that guards it.
type Door struct {
	To   RoomID // NoRoom for dead ends and for the final gate
	Clue *clues.Instance
}

// DeadEnd reports whether the door has no destination.
func (d Door) DeadEnd() bool {
	return d.To == NoRoom
}

// Room is one node of the graph.
type Room struct {
	ID         RoomID
	Category   Category
	Difficulty clues.Difficulty // Easy or Hard, meaningful for Intermediate rooms only
	Doors      []Door
}

// IsExit reports whether the room holds a final gate.
func (r *Room) IsExit() bool {
	return r.Category == Exit
}

// IsEasy reports whether the room is an easy intermediate room.
func (r *Room) IsEasy() bool {
	return r.Category == Intermediate && r.Difficulty == clues.Easy
}

// IsHard reports whether the room is a hard intermediate room.
func (r *Room) IsHard() bool {
	return r.Category == Intermediate && r.Difficulty == clues.Hard
}

// DoorCount returns how many doors a room of this shape has.
func DoorCount(cat Category, diff clues.Difficulty) int {
	if cat == Intermediate && diff == clues.Easy {
		return 2
	}
	return 1
}

// Door returns door i (0-based) and whether it exists.
func (r *Room) Door(i int) (*Door, bool) {
	if i < 0 || i >= len(r.Doors) {
		return nil, false
	}
	return &r.Doors[i], true
}

// Label is a short description like "INTERMEDIATE (HARD)".
func (r *Room) Label() string {
	if r.Category == Intermediate {
		if r.Difficulty == clues.Hard {
			return r.Category.String() + " (HARD)"
		}
		return r.Category.String() + " (EASY)"
	}
	return r.Category.String()
}
