package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdout is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// FitLevel clamps a requested level size to what the terminal can show.
// reserved is the number of rows kept free for text below the map.
// Zero requested dimensions take the full available space.
func FitLevel(width, height, reserved int) (int, int) {
	termWidth, termHeight := GetSize()
	return fit(width, termWidth), fit(height, termHeight-reserved)
}

func fit(requested, available int) int {
	if available < 1 {
		available = 1
	}
	if requested <= 0 || requested > available {
		return available
	}
	return requested
}
