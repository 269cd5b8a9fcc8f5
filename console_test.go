package trng

import (
	"bytes"
	"errors"
	"io"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/merliot/trng/serial"
)

func init() {
	SetLogOutput(io.Discard)
}

func TestConsoleEnter(t *testing.T) {
	c := qt.New(t)
	bus := NewBus("test bus", nil, nil)
	port := &serial.Mock{ReadData: []byte("ab\rc\n\r\r")}
	con := NewConsole("test console", port, bus)

	enters := 0
	bus.Handle(TagEnter, func(pkt *Packet) {
		enters++
		pkt.Set([]byte("ok\r\n")).Reply()
	})

	c.Assert(con.Serve(), qt.IsNil)
	c.Assert(enters, qt.Equals, 3)
	c.Assert(port.Written(), qt.Equals, "ok\r\nok\r\nok\r\n")
}

func TestConsoleReadError(t *testing.T) {
	c := qt.New(t)
	bus := NewBus("test bus", nil, nil)
	boom := errors.New("framing error")
	port := &serial.Mock{ReadData: []byte("\r"), ReadErr: boom}
	con := NewConsole("test console", port, bus)

	err := con.Serve()
	c.Assert(err, qt.ErrorIs, boom)
	c.Assert(err, qt.ErrorMatches, `reading test console: framing error`)
}

func TestConsoleClose(t *testing.T) {
	c := qt.New(t)
	bus := NewBus("test bus", nil, nil)
	var con *Console
	port := &serial.Mock{}
	port.ReadFunc = func(p []byte) (int, error) {
		// closing mid-read, as a signal handler would
		con.Close()
		return 0, errors.New("file already closed")
	}
	con = NewConsole("test console", port, bus)

	c.Assert(con.Serve(), qt.IsNil)
	c.Assert(port.Closed, qt.IsTrue)
}

func TestConsoleUnplugsOnReturn(t *testing.T) {
	c := qt.New(t)
	plugged := 0
	bus := NewBus("test bus",
		func(Socketer) { plugged++ },
		func(Socketer) { plugged-- })
	con := NewConsole("test console", &serial.Mock{}, bus)
	c.Assert(con.Serve(), qt.IsNil)
	c.Assert(plugged, qt.Equals, 0)
}

func TestConsoleSendEmpty(t *testing.T) {
	c := qt.New(t)
	port := &serial.Mock{WriteErr: errors.New("never called")}
	con := NewConsole("test console", port, NewBus("test bus", nil, nil))
	c.Assert(con.Send(NewPacket("")), qt.IsNil)
}

type banner struct {
	Thing
	handled int
}

func (b *banner) Banner() []byte { return []byte("hello\r\n") }

func (b *banner) Subscribers() Subscribers {
	return Subscribers{TagEnter: func(*Packet) { b.handled++ }}
}

func TestRunner(t *testing.T) {
	c := qt.New(t)
	thing := &banner{Thing: NewThing("id", "model", "name")}
	port := &serial.Mock{ReadData: []byte("\r\r")}
	var mirror bytes.Buffer

	r := NewRunner(thing, port)
	r.Mirror("mirror", &mirror)
	c.Assert(r.Run(), qt.IsNil)

	c.Assert(thing.IsMetal(), qt.IsTrue)
	c.Assert(thing.handled, qt.Equals, 2)
	c.Assert(port.Written(), qt.Equals, "hello\r\n")
	c.Assert(mirror.String(), qt.Equals, "hello\r\n")

	r.Close()
	c.Assert(port.Closed, qt.IsTrue)
}

func TestGetEnv(t *testing.T) {
	c := qt.New(t)
	c.Setenv("TRNG_TEST_NAME", "console")
	c.Setenv("TRNG_TEST_BAUD", "9600")
	c.Setenv("TRNG_TEST_BAD", "fast")
	c.Assert(GetEnv("TRNG_TEST_NAME", "x"), qt.Equals, "console")
	c.Assert(GetEnv("TRNG_TEST_UNSET", "x"), qt.Equals, "x")
	c.Assert(GetEnvInt("TRNG_TEST_BAUD", 1), qt.Equals, 9600)
	c.Assert(GetEnvInt("TRNG_TEST_BAD", 1), qt.Equals, 1)
}
