package state

import "escaperoom/pkg/game/world"

// History is the stack of rooms the player has moved through.
// The seed entry (the starting entrance) is never popped.
type History struct {
	stack []world.RoomID
}

// NewHistory starts a history at the given entrance.
func NewHistory(seed world.RoomID) *History {
	return &History{stack: []world.RoomID{seed}}
}

// Push records a move into id.
func (h *History) Push(id world.RoomID) {
	h.stack = append(h.stack, id)
}

// Undo pops the current room and returns the one below it.
// With only the seed left it does nothing and returns false.
func (h *History) Undo() (world.RoomID, bool) {
	if len(h.stack) <= 1 {
		return h.Top(), false
	}
	h.stack = h.stack[:len(h.stack)-1]
	return h.Top(), true
}

// Top returns the most recent room.
func (h *History) Top() world.RoomID {
	return h.stack[len(h.stack)-1]
}

// Len returns the number of entries including the seed.
func (h *History) Len() int {
	return len(h.stack)
}

// Path returns the entries oldest first. A nil history has no path.
func (h *History) Path() []world.RoomID {
	if h == nil {
		return nil
	}
	return append([]world.RoomID(nil), h.stack...)
}
