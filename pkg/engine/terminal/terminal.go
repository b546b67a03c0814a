package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth = 80

	// MaxRuleWidth caps separator lines on very wide terminals.
	MaxRuleWidth = 60
)

// IsInteractive reports whether stdout is attached to a terminal.
// Screen clearing and colours are only used when it is.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// GetWidth returns the current terminal width.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

// RuleWidth returns the width to use for horizontal separators.
func RuleWidth() int {
	return clampRule(GetWidth())
}

func clampRule(width int) int {
	if width > MaxRuleWidth {
		return MaxRuleWidth
	}
	if width < 10 {
		return 10
	}
	return width
}
