package renderer

import (
	"escaperoom/pkg/game/clues"
	"escaperoom/pkg/game/world"
)

// EventKind identifies what happened.
type EventKind int

const (
	EventNone EventKind = iota

	// Session
	EventWelcome
	EventEntranceMenu
	EventInvalidEntrance
	EventChoicePrompt
	EventInputClosed

	// Navigation
	EventMoved
	EventUndo
	EventNoPrevious
	EventInvalidDoor
	EventDeadEnd
	EventTrap

	// Puzzle resolution
	EventPuzzle
	EventAnswerPrompt
	EventTimeout
	EventHint
	EventHintAlreadyUsed
	EventInvalidChoice
	EventCorrect
	EventWrong
	EventLocked

	// Outcomes of a resolved door
	EventDoorFailed
	EventFinalLocked
	EventWon
	EventQuit
)

var eventNames = map[EventKind]string{
	EventNone:            "none",
	EventWelcome:         "welcome",
	EventEntranceMenu:    "entrance-menu",
	EventInvalidEntrance: "invalid-entrance",
	EventChoicePrompt:    "choice-prompt",
	EventInputClosed:     "input-closed",
	EventMoved:           "moved",
	EventUndo:            "undo",
	EventNoPrevious:      "no-previous",
	EventInvalidDoor:     "invalid-door",
	EventDeadEnd:         "dead-end",
	EventTrap:            "trap",
	EventPuzzle:          "puzzle",
	EventAnswerPrompt:    "answer-prompt",
	EventTimeout:         "timeout",
	EventHint:            "hint",
	EventHintAlreadyUsed: "hint-already-used",
	EventInvalidChoice:   "invalid-choice",
	EventCorrect:         "correct",
	EventWrong:           "wrong",
	EventLocked:          "locked",
	EventDoorFailed:      "door-failed",
	EventFinalLocked:     "final-locked",
	EventWon:             "won",
	EventQuit:            "quit",
}

func (k EventKind) String() string {
	if n, ok := eventNames[k]; ok {
		return n
	}
	return "unknown"
}

// Event is one structured message from the core.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind     EventKind
	Score    int    // running score after the event
	Amount   int    // points won or penalty taken
	Attempts int    // attempts left on the clue
	Count    int    // number of entrances for EventEntranceMenu
	Text     string // hint text
	Code     string // offending input for invalid choices
	Room     *world.Room
	Clue     *clues.Instance
	Trap     world.Trap
	Path     []world.RoomID // rooms walked, oldest first, on game end
}

// Recorder is a Sink that keeps every event, for tests and replays.
type Recorder struct {
	Events []Event
}

// Emit appends ev.
func (r *Recorder) Emit(ev Event) {
	r.Events = append(r.Events, ev)
}

// Kinds returns the kinds of the recorded events in order.
func (r *Recorder) Kinds() []EventKind {
	out := make([]EventKind, len(r.Events))
	for i, ev := range r.Events {
		out[i] = ev.Kind
	}
	return out
}

// Count returns how many events of kind k were recorded.
func (r *Recorder) Count(k EventKind) int {
	n := 0
	for _, ev := range r.Events {
		if ev.Kind == k {
			n++
		}
	}
	return n
}

// Last returns the most recent event of kind k.
func (r *Recorder) Last(k EventKind) (Event, bool) {
	for i := len(r.Events) - 1; i >= 0; i-- {
		if r.Events[i].Kind == k {
			return r.Events[i], true
		}
	}
	return Event{}, false
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.Events = nil
}
