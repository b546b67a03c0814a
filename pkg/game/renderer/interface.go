package renderer

import (
	"escaperoom/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleRoom
	StyleDoor
	StyleDeadEnd
	StyleAction
	StyleActionShort
	StyleDenied
	StyleSuccess
	StyleScore
	StyleHint
	StyleTrap
	StyleSubtle
)

// Sink receives game events. The core only ever talks to a Sink; how the
// events look on screen is up to the implementation.
type Sink interface {
	Emit(ev Event)
}

// Renderer defines the interface for presentation backends.
type Renderer interface {
	Sink

	// Init initializes the renderer (colors, catalogs, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders the room the player is standing in,
	// with score, doors and abilities.
	RenderFrame(g *state.Game)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string
}

// Discard is a Sink that drops every event.
var Discard Sink = discard{}

type discard struct{}

func (discard) Emit(Event) {}
