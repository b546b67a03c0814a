package world

import "escaperoom/pkg/game/clues"

// RoomPlan is one row of a topology table.
type RoomPlan struct {
	ID         RoomID
	Category   Category
	Difficulty clues.Difficulty
	Doors      []RoomID // destinations by door; missing entries are dead ends
}

// DefaultLayout is the station map: four entrances, eight intermediate rooms
// and two exits. Rooms 6 and 8 point at each other, and several rooms merge
// into 5, 10, 99 and 100.
var DefaultLayout = []RoomPlan{
	{ID: 1, Category: Entrance, Doors: []RoomID{5}},
	{ID: 2, Category: Entrance, Doors: []RoomID{9}},
	{ID: 3, Category: Entrance, Doors: []RoomID{11}},
	{ID: 4, Category: Entrance, Doors: []RoomID{7}},

	{ID: 5, Category: Intermediate, Difficulty: clues.Hard, Doors: []RoomID{6}},
	{ID: 6, Category: Intermediate, Difficulty: clues.Easy, Doors: []RoomID{99, 8}},
	{ID: 7, Category: Intermediate, Difficulty: clues.Easy, Doors: []RoomID{8, 5}},
	{ID: 8, Category: Intermediate, Difficulty: clues.Easy, Doors: []RoomID{99, 6}},
	{ID: 9, Category: Intermediate, Difficulty: clues.Hard, Doors: []RoomID{10}},
	{ID: 10, Category: Intermediate, Difficulty: clues.Hard, Doors: []RoomID{100}},
	{ID: 11, Category: Intermediate, Difficulty: clues.Easy, Doors: []RoomID{12, 9}},
	{ID: 12, Category: Intermediate, Difficulty: clues.Easy, Doors: []RoomID{10, 100}},

	{ID: 99, Category: Exit},
	{ID: 100, Category: Exit},
}
