package input

import (
	"sort"
	"strconv"
	"strings"
)

// Action represents a high-level intent at the room prompt.
type Action int

const (
	ActionNone Action = iota

	// Doors
	ActionDoor1
	ActionDoor2

	// Abilities
	ActionUndo
	ActionQuit
)

// Intent is what the player wants to do at the room prompt.
// Code keeps the raw token so invalid choices can be echoed back.
type Intent struct {
	Action Action
	Code   string
}

// DoorIndex returns the 0-based door index for door actions, or -1.
func (i Intent) DoorIndex() int {
	switch i.Action {
	case ActionDoor1:
		return 0
	case ActionDoor2:
		return 1
	default:
		return -1
	}
}

// bindings maps normalized codes to actions.
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	"1":      ActionDoor1,
	"2":      ActionDoor2,
	"0":      ActionUndo,
	"back":   ActionUndo,
	"undo":   ActionUndo,
	"9":      ActionQuit,
	"quit":   ActionQuit,
	"q":      ActionQuit,
	"escape": ActionQuit,
}

// MapToIntent normalizes a raw line and applies the bindings.
func MapToIntent(code string) Intent {
	norm := strings.ToLower(strings.TrimSpace(code))
	if act, ok := bindings[norm]; ok {
		return Intent{Action: act, Code: norm}
	}
	return Intent{Action: ActionNone, Code: norm}
}

// ParseChoice parses a numeric menu choice and checks it is within [min, max].
func ParseChoice(code string, min, max int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil || n < min || n > max {
		return 0, false
	}
	return n, true
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionDoor1:
		return "Door 1"
	case ActionDoor2:
		return "Door 2"
	case ActionUndo:
		return "Undo Move"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't shuffle between frames.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
