package clues

// DefaultAttempts is the attempt budget of a freshly issued instance.
const DefaultAttempts = 3

// Instance is the runtime copy of a definition owned by exactly one door.
type Instance struct {
	Def      Definition
	Index    int // catalog index the definition came from
	Attempts int
	UsedHint bool
}

// NewInstance issues a fresh instance of def.
func NewInstance(index int, def Definition) *Instance {
	return &Instance{
		Def:      def,
		Index:    index,
		Attempts: DefaultAttempts,
	}
}

// ResetAttempts restores the attempt budget. Definition, points and the
// hint flag are left alone.
func (c *Instance) ResetAttempts() {
	c.Attempts = DefaultAttempts
}

// Locked reports whether the attempt budget is spent.
func (c *Instance) Locked() bool {
	return c.Attempts <= 0
}
