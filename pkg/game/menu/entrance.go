// Package menu runs the pre-game prompts.
package menu

import (
	"escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/game/state"
)

// ChooseEntrance asks for an entrance until a valid one is given and returns
// it (1-based). Invalid input is reported and the menu is shown again. The
// only error is the input source failing, typically input.ErrClosed.
func ChooseEntrance(in input.Source, out renderer.Sink, g *state.Game) (int, error) {
	count := len(g.Graph.Entrances())
	for {
		out.Emit(renderer.Event{Kind: renderer.EventEntranceMenu, Count: count})

		line, err := in.ReadLine()
		if err != nil {
			return 0, err
		}
		if n, ok := input.ParseChoice(line, 1, count); ok {
			return n, nil
		}
		out.Emit(renderer.Event{Kind: renderer.EventInvalidEntrance, Code: line, Count: count})
	}
}
