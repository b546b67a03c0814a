package world

// Edge is a directed room-to-room move.
type Edge struct {
	From, To RoomID
}

// Trap is a warning shown after a successful move along a trapped edge.
// It has no mechanical effect.
type Trap struct {
	Name       string
	MessageKey string // i18n key rendered by the presentation layer
}

// DefaultTraps are the trapped edges of DefaultLayout.
var DefaultTraps = map[Edge]Trap{
	{From: 7, To: 5}:  {Name: "sector-reset", MessageKey: "TRAP_SECTOR_RESET"},
	{From: 8, To: 6}:  {Name: "infinite-loop", MessageKey: "TRAP_INFINITE_LOOP"},
	{From: 11, To: 9}: {Name: "hard-path", MessageKey: "TRAP_HARD_PATH"},
}
