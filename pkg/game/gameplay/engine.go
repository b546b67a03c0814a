package gameplay

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/puzzle"
	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/game/state"
)

// WrongDoorPenalty is deducted when a door's puzzle locks.
const WrongDoorPenalty = 10

// Engine runs one game: it reads intents, gates doors behind puzzles and
// keeps score.
type Engine struct {
	Game     *state.Game
	In       input.Source
	Out      renderer.Sink
	Resolver *puzzle.Resolver
	Log      *zap.Logger
}

// NewEngine wires an engine over g. out may be a full Renderer; when it is,
// the room frame is drawn before each choice.
func NewEngine(g *state.Game, in input.Source, out renderer.Sink, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		Game:     g,
		In:       in,
		Out:      out,
		Resolver: puzzle.NewResolver(in, out, log),
		Log:      log,
	}
}

// SetClock replaces the clock used for puzzle time limits.
func (e *Engine) SetClock(now func() time.Time) {
	e.Resolver.Now = now
}

// Start places the player at entrance n (1-based).
func (e *Engine) Start(n int) bool {
	if !e.Game.Enter(n) {
		return false
	}
	e.Log.Info("game started", zap.Int("entrance", n), zap.Int("room", int(e.Game.Current)))
	e.Out.Emit(renderer.Event{Kind: renderer.EventMoved, Room: e.Game.Room(), Score: e.Game.Score})
	return true
}

// Run processes choices until the game is won or quit. It returns
// input.ErrClosed if the input runs out first.
func (e *Engine) Run() error {
	for !e.Game.Over() {
		if r, ok := e.Out.(renderer.Renderer); ok {
			r.RenderFrame(e.Game)
		}
		e.Out.Emit(renderer.Event{Kind: renderer.EventChoicePrompt, Room: e.Game.Room(), Score: e.Game.Score})

		line, err := e.In.ReadLine()
		if err != nil {
			if errors.Is(err, input.ErrClosed) {
				e.Out.Emit(renderer.Event{Kind: renderer.EventInputClosed, Score: e.Game.Score, Path: e.Game.History.Path()})
			}
			return err
		}
		if err := e.ProcessIntent(input.MapToIntent(line)); err != nil {
			if errors.Is(err, input.ErrClosed) {
				e.Out.Emit(renderer.Event{Kind: renderer.EventInputClosed, Score: e.Game.Score, Path: e.Game.History.Path()})
			}
			return err
		}
	}
	return nil
}

// ProcessIntent applies one room-prompt decision. Invalid choices are
// reported and change nothing.
func (e *Engine) ProcessIntent(it input.Intent) error {
	g := e.Game
	if g.Over() || g.Room() == nil {
		return nil
	}

	switch it.Action {
	case input.ActionQuit:
		g.Quit()
		e.Log.Info("game quit")
		e.Out.Emit(renderer.Event{Kind: renderer.EventQuit, Score: g.Score, Path: g.History.Path()})
		return nil
	case input.ActionUndo:
		e.undo()
		return nil
	}

	door := it.DoorIndex()
	if g.Phase() == state.PhaseAtExitGate {
		if door != 0 {
			e.invalidDoor(it)
			return nil
		}
		return e.finalGate()
	}
	if _, ok := g.Room().Door(door); !ok {
		e.invalidDoor(it)
		return nil
	}
	return e.openDoor(door)
}

func (e *Engine) undo() {
	g := e.Game
	if !g.Undo() {
		e.Out.Emit(renderer.Event{Kind: renderer.EventNoPrevious, Room: g.Room()})
		return
	}
	e.Log.Debug("undo", zap.Int("room", int(g.Current)))
	e.Out.Emit(renderer.Event{Kind: renderer.EventUndo, Room: g.Room(), Score: g.Score})
}

func (e *Engine) invalidDoor(it input.Intent) {
	e.Out.Emit(renderer.Event{Kind: renderer.EventInvalidDoor, Code: it.Code, Room: e.Game.Room()})
}

// openDoor resolves the puzzle on door i of the current room and moves
// through it on success.
func (e *Engine) openDoor(i int) error {
	g := e.Game
	room := g.Room()
	door, _ := room.Door(i)

	if door.DeadEnd() {
		e.Out.Emit(renderer.Event{Kind: renderer.EventDeadEnd, Room: room})
		return nil
	}

	ok, err := e.Resolver.Resolve(door.Clue, g)
	if err != nil {
		return err
	}
	if !ok {
		g.AdjustScore(-WrongDoorPenalty)
		door.Clue.ResetAttempts()
		e.Log.Debug("door failed",
			zap.Int("room", int(room.ID)),
			zap.Int("door", i+1),
			zap.Int("score", g.Score),
		)
		e.Out.Emit(renderer.Event{Kind: renderer.EventDoorFailed, Room: room, Amount: WrongDoorPenalty, Score: g.Score})
		return nil
	}

	if trap, hit := g.Graph.TrapFor(room.ID, door.To); hit {
		e.Log.Debug("trap triggered", zap.String("trap", trap.Name))
		e.Out.Emit(renderer.Event{Kind: renderer.EventTrap, Trap: trap, Room: room})
	}

	g.MoveTo(door.To)
	e.Log.Debug("moved",
		zap.Int("from", int(room.ID)),
		zap.Int("to", int(door.To)),
		zap.Int("score", g.Score),
	)
	e.Out.Emit(renderer.Event{Kind: renderer.EventMoved, Room: g.Room(), Score: g.Score})
	return nil
}

// finalGate resolves the exit room's gate. A locked gate is not reset.
func (e *Engine) finalGate() error {
	g := e.Game
	room := g.Room()
	ok, err := e.Resolver.Resolve(room.Doors[0].Clue, g)
	if err != nil {
		return err
	}
	if !ok {
		e.Log.Debug("final gate locked", zap.Int("room", int(room.ID)))
		e.Out.Emit(renderer.Event{Kind: renderer.EventFinalLocked, Room: room, Score: g.Score})
		return nil
	}
	g.Win()
	e.Log.Info("escaped", zap.Int("room", int(room.ID)), zap.Int("score", g.Score))
	e.Out.Emit(renderer.Event{Kind: renderer.EventWon, Room: room, Score: g.Score, Path: g.History.Path()})
	return nil
}
