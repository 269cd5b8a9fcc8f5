package trng

import (
	"errors"
	"fmt"
	"io"
)

// ASCII carriage return, sent by a terminal for the Enter key
const CarriageReturn = 0x0D

// TagEnter is the tag of the packet injected for each carriage return read on
// a console
const TagEnter = "enter"

// Console wraps a serial port and implements the Socketer interface.  The
// console reads the port one byte at a time and injects a TagEnter packet on
// the bus for each carriage return.  All other bytes are dropped.
type Console struct {
	socket
	mu      Mutex
	port    io.ReadWriteCloser
	closing bool
}

// NewConsole returns a console serving port on bus.  The console owns port
// and closes it on Close.
func NewConsole(name string, port io.ReadWriteCloser, bus *Bus) *Console {
	return &Console{
		socket: socket{name, "", 0, bus},
		port:   port,
	}
}

// Write writes p to the port
func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.port.Write(p)
}

func (c *Console) Send(pkt *Packet) error {
	msg := pkt.Bytes()
	if len(msg) == 0 {
		return nil
	}
	_, err := c.Write(msg)
	return err
}

// Close the console and its port.  A Serve in progress returns nil.
func (c *Console) Close() {
	c.mu.Lock()
	if c.closing {
		c.mu.Unlock()
		return
	}
	c.closing = true
	c.mu.Unlock()
	if err := c.port.Close(); err != nil {
		Logf("Closing %s: %s", c, err)
	}
}

func (c *Console) isClosing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closing
}

// Serve plugs the console into the bus and polls the port until it ends or
// the console is closed.  Serve returns nil on io.EOF or Close, otherwise the
// read error.
func (c *Console) Serve() error {
	c.bus.plugin(c)
	defer c.bus.unplug(c)

	var buf [1]byte
	for {
		n, err := c.port.Read(buf[:])
		if n == 1 && buf[0] == CarriageReturn {
			c.bus.receive(&Packet{bus: c.bus, src: c, tag: TagEnter})
		}
		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) || c.isClosing() {
			return nil
		}
		return fmt.Errorf("reading %s: %w", c, err)
	}
}
