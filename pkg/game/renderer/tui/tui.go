package tui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/gookit/color"

	"escaperoom/pkg/engine/terminal"
	"escaperoom/pkg/game/clues"
	"escaperoom/pkg/game/i18n"
	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/game/state"
	"escaperoom/pkg/game/world"
)

// TUIRenderer writes the game to a terminal as coloured text.
type TUIRenderer struct {
	Out     io.Writer
	NoColor bool

	colorRoom        color.Style
	colorDoor        color.Style
	colorDeadEnd     color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorSuccess     color.Style
	colorScore       color.Style
	colorHint        color.Style
	colorTrap        color.Style
	colorSubtle      color.Style
}

// New creates a TUI renderer writing to out, or to stdout when out is nil.
func New(out io.Writer) *TUIRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TUIRenderer{Out: out}
}

// Init initializes the colour styles.
func (t *TUIRenderer) Init() {
	t.colorRoom = color.Style{color.FgCyan, color.OpBold}
	t.colorDoor = color.Style{color.FgYellow, color.OpBold}
	t.colorDeadEnd = color.Style{color.FgGray}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSuccess = color.Style{color.FgGreen, color.OpBold}
	t.colorScore = color.Style{color.FgBlue, color.OpBold}
	t.colorHint = color.Style{color.FgYellow}
	t.colorTrap = color.Style{color.FgRed, color.BgBlack, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
}

// Clear clears the terminal screen. It does nothing when stdout is not a
// terminal.
func (t *TUIRenderer) Clear() {
	if !terminal.IsInteractive() {
		return
	}
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if t.NoColor {
		return text
	}
	switch style {
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleDoor:
		return t.colorDoor.Sprint(text)
	case renderer.StyleDeadEnd:
		return t.colorDeadEnd.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSuccess:
		return t.colorSuccess.Sprint(text)
	case renderer.StyleScore:
		return t.colorScore.Sprint(text)
	case renderer.StyleHint:
		return t.colorHint.Sprint(text)
	case renderer.StyleTrap:
		return t.colorTrap.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// RenderFrame renders the room the player stands in
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	r := g.Room()
	if r == nil {
		return
	}
	rule := strings.Repeat("=", terminal.RuleWidth())

	t.println("")
	t.println(t.StyleText(rule, renderer.StyleSubtle))
	t.println(t.StyleText(i18n.T("SCORE", g.Score), renderer.StyleScore))
	t.println(t.StyleText(i18n.T("ROOM_ID", int(r.ID)), renderer.StyleRoom))
	t.println(i18n.T("ROOM_TYPE", r.Label()))

	t.println("")
	t.println(i18n.T("DOORS"))
	if r.IsExit() {
		t.printOption("1", t.StyleText(i18n.T("FINAL_DOOR"), renderer.StyleDoor))
	} else {
		for i, d := range r.Doors {
			t.printOption(fmt.Sprint(i+1), i18n.T("DOOR_TO", i+1)+t.doorTarget(g, d))
		}
	}

	t.println("")
	t.println(i18n.T("ABILITIES"))
	t.printOption("0", t.StyleText(i18n.T("ABILITY_UNDO"), renderer.StyleAction))
	t.printOption("9", t.StyleText(i18n.T("ABILITY_QUIT"), renderer.StyleAction))
	t.println(t.StyleText(rule, renderer.StyleSubtle))
}

func (t *TUIRenderer) doorTarget(g *state.Game, d world.Door) string {
	if d.DeadEnd() {
		return t.StyleText(i18n.T("DOOR_NONE"), renderer.StyleDeadEnd)
	}
	txt := t.StyleText(i18n.T("DOOR_ROOM", int(d.To)), renderer.StyleDoor)
	if g.HasVisited(d.To) {
		txt += " " + t.StyleText(i18n.T("VISITED"), renderer.StyleSubtle)
	}
	return txt
}

// Emit renders one event.
func (t *TUIRenderer) Emit(ev renderer.Event) {
	switch ev.Kind {
	case renderer.EventWelcome:
		t.println(t.StyleText(i18n.T("WELCOME"), renderer.StyleRoom))
	case renderer.EventEntranceMenu:
		t.println(i18n.T("ENTRANCE_MENU"))
		for i := 1; i <= ev.Count; i++ {
			t.printOption(fmt.Sprint(i), i18n.T("ENTRANCE_OPTION", i))
		}
		t.print(i18n.T("ENTRANCE_PROMPT", ev.Count))
	case renderer.EventInvalidEntrance:
		t.denied(i18n.T("INVALID_ENTRANCE", ev.Code))
	case renderer.EventChoicePrompt:
		t.print(i18n.T("CHOICE_PROMPT"))
	case renderer.EventInputClosed:
		t.println("")
		t.println(t.StyleText(i18n.T("INPUT_CLOSED", ev.Score), renderer.StyleScore))
		t.printPath(ev.Path)

	case renderer.EventMoved:
		if ev.Room != nil {
			t.println(t.StyleText(i18n.T("MOVED", int(ev.Room.ID)), renderer.StyleSubtle))
		}
	case renderer.EventUndo:
		if ev.Room != nil {
			t.println(t.StyleText(i18n.T("UNDO", int(ev.Room.ID)), renderer.StyleSubtle))
		}
	case renderer.EventNoPrevious:
		t.denied(i18n.T("NO_PREVIOUS"))
	case renderer.EventInvalidDoor:
		t.denied(i18n.T("INVALID_DOOR"))
	case renderer.EventDeadEnd:
		t.denied(i18n.T("DEAD_END"))
	case renderer.EventTrap:
		t.println("")
		t.println(t.StyleText(i18n.T(ev.Trap.MessageKey), renderer.StyleTrap))

	case renderer.EventPuzzle:
		t.printPuzzle(ev.Clue)
	case renderer.EventAnswerPrompt:
		t.printAnswerPrompt(ev)
	case renderer.EventTimeout:
		t.denied(i18n.T("TIMEOUT"))
	case renderer.EventHint:
		t.println(t.StyleText(i18n.T("HINT", ev.Amount, ev.Text), renderer.StyleHint))
	case renderer.EventHintAlreadyUsed:
		t.println(t.StyleText(i18n.T("HINT_ALREADY_USED"), renderer.StyleSubtle))
	case renderer.EventInvalidChoice:
		t.denied(i18n.T("INVALID_CHOICE"))
	case renderer.EventCorrect:
		t.println(t.StyleText(i18n.T("CORRECT", ev.Amount), renderer.StyleSuccess))
	case renderer.EventWrong:
		t.denied(i18n.T("WRONG"))
	case renderer.EventLocked:
		t.denied(i18n.T("LOCKED"))

	case renderer.EventDoorFailed:
		t.println("")
		t.denied(i18n.T("DOOR_FAILED"))
		t.denied(i18n.T("PENALTY", ev.Amount))
	case renderer.EventFinalLocked:
		t.denied(i18n.T("FINAL_LOCKED"))
	case renderer.EventWon:
		t.println("")
		t.println(t.StyleText(i18n.T("WON", ev.Score), renderer.StyleSuccess))
		t.printPath(ev.Path)
	case renderer.EventQuit:
		t.println("")
		t.denied(i18n.T("QUIT"))
		t.println(t.StyleText(i18n.T("FINAL_SCORE", ev.Score), renderer.StyleScore))
		t.printPath(ev.Path)
	}
}

func (t *TUIRenderer) printPuzzle(c *clues.Instance) {
	if c == nil {
		return
	}
	t.println("")
	t.println(t.StyleText(i18n.T("PUZZLE_HEADER"), renderer.StyleRoom))
	t.println(c.Def.Problem)
	t.println("")
	if c.Def.Kind == clues.MultipleChoice {
		for i, opt := range c.Def.Options {
			t.println(t.StyleText(string(clues.ChoiceLetters[i]), renderer.StyleActionShort) + ") " + opt)
		}
		t.println("")
	}
}

func (t *TUIRenderer) printAnswerPrompt(ev renderer.Event) {
	t.println(t.StyleText(i18n.T("ATTEMPTS", ev.Attempts), renderer.StyleSubtle))
	if ev.Clue != nil && ev.Clue.Def.Kind == clues.MultipleChoice {
		t.print(i18n.T("ANSWER_PROMPT_CHOICE"))
		return
	}
	t.print(i18n.T("ANSWER_PROMPT"))
}

func (t *TUIRenderer) printPath(path []world.RoomID) {
	if len(path) == 0 {
		return
	}
	ids := make([]string, len(path))
	for i, id := range path {
		ids[i] = fmt.Sprint(int(id))
	}
	t.println(t.StyleText(i18n.T("PATH", strings.Join(ids, " -> ")), renderer.StyleSubtle))
}

// printOption prints a numbered menu line
func (t *TUIRenderer) printOption(key, text string) {
	t.println("  " + t.StyleText(key, renderer.StyleActionShort) + ") " + text)
}

func (t *TUIRenderer) denied(msg string) {
	t.println(t.StyleText(msg, renderer.StyleDenied))
}

func (t *TUIRenderer) print(s string) {
	fmt.Fprint(t.Out, s)
}

func (t *TUIRenderer) println(s string) {
	fmt.Fprintln(t.Out, s)
}

var _ renderer.Renderer = (*TUIRenderer)(nil)
