//go:build tinygo

// Package display mirrors the console onto a board's screen
package display

import (
	"io"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

// New returns a terminal on d.  Write to it like a console; the ANSI clear
// sequence in the banner is handled by the terminal.
func New(d drivers.Displayer) io.Writer {
	terminal := tinyterm.NewTerminal(d)
	terminal.Configure(&tinyterm.Config{
		Font:              &proggy.TinySZ8pt7b,
		FontHeight:        10,
		FontOffset:        6,
		UseSoftwareScroll: true,
	})
	return terminal
}
