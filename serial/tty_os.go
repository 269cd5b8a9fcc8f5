//go:build !tinygo

package serial

import (
	"fmt"
	"io"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-tty"
)

// ttyPort is the local terminal in raw mode, so the Enter key reads as a
// carriage return
type ttyPort struct {
	tty *tty.TTY
	out io.Writer
}

// OpenTTY opens the controlling terminal as a console port
func OpenTTY() (Port, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	return &ttyPort{
		tty: t,
		out: colorable.NewColorable(t.Output()),
	}, nil
}

func (p *ttyPort) Read(b []byte) (int, error) {
	return p.tty.Input().Read(b)
}

func (p *ttyPort) Write(b []byte) (int, error) {
	return p.out.Write(b)
}

func (p *ttyPort) Close() error {
	return p.tty.Close()
}
