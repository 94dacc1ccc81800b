package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// fdWriter is implemented by *os.File
type fdWriter interface {
	Fd() uintptr
}

// SizeOf returns the width and height of the terminal behind w.
// Writers that are not terminals get DefaultWidth x DefaultHeight.
func SizeOf(w io.Writer) (width, height int) {
	f, ok := w.(fdWriter)
	if !ok {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetSize returns the current size of the terminal on stdout.
func GetSize() (width, height int) {
	return SizeOf(os.Stdout)
}

// IsTerminal reports whether w is attached to an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
