package trng

import (
	"io"
)

// Runner serves a thing on a console
type Runner struct {
	thinger Thinger
	bus     *Bus
	console *Console
	mirrors []*WriterSocket
}

// NewRunner returns a runner serving thinger on port.  The runner owns port.
func NewRunner(thinger Thinger, port io.ReadWriteCloser) *Runner {
	var r Runner

	r.thinger = thinger
	r.bus = NewBus("runner bus", nil, nil)
	r.console = NewConsole("console", port, r.bus)

	return &r
}

// Mirror copies everything broadcast by the thing to w
func (r *Runner) Mirror(name string, w io.Writer) {
	r.mirrors = append(r.mirrors, NewWriterSocket(name, w, r.bus))
}

// Run writes the thing's banner to the console and serves the console until
// the port ends or the runner is closed
func (r *Runner) Run() error {
	r.thinger.SetFlag(ThingFlagMetal)

	for tag, handler := range r.thinger.Subscribers() {
		r.bus.Handle(tag, handler)
	}

	if banner := r.thinger.Banner(); len(banner) > 0 {
		pkt := &Packet{bus: r.bus, src: r.console, message: banner}
		pkt.Reply().Broadcast()
	}

	Logf("Serving %s on %s (%s)", r.thinger, r.console, r.bus.Name())
	err := r.console.Serve()

	for _, m := range r.mirrors {
		m.Close()
	}
	return err
}

// Close the console, ending Run
func (r *Runner) Close() {
	r.console.Close()
}
