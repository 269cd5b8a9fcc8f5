// Package serial acquires the console port: a serial device or the local
// terminal on a host, or a UART under TinyGo.
package serial

import (
	"errors"
	"io"
)

// DefaultBaud matches the console rate of the firmware
const DefaultBaud = 115200

// Port is an open console port.  Close releases the port.
type Port = io.ReadWriteCloser

// Config holds configuration for opening a port
type Config struct {
	// Name is the device path on a host, or "0"/"1" for the UART under
	// TinyGo.  Empty selects the default.
	Name string
	// Baud defaults to DefaultBaud
	Baud int
	// LockDir holds the port lock files.  Empty selects os.TempDir().
	LockDir string
}

var (
	ErrNoPort = errors.New("serial port name is required")
	ErrBusy   = errors.New("serial port is in use")
)
