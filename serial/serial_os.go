//go:build !tinygo

package serial

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	bug "go.bug.st/serial"
)

// osPort is a serial device held under an exclusive lock file.  Closing the
// port wakes a Read blocked on it.
type osPort struct {
	bug.Port
	lock *flock.Flock
}

// Open opens the serial device cfg.Name at cfg.Baud, 8N1.  Open fails with
// ErrBusy if another process holds the port.
func Open(cfg Config) (Port, error) {
	if cfg.Name == "" {
		return nil, ErrNoPort
	}
	if cfg.Baud == 0 {
		cfg.Baud = DefaultBaud
	}

	lock := flock.New(lockPath(cfg))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to lock port %s: %w", cfg.Name, err)
	}
	if !locked {
		return nil, fmt.Errorf("%s: %w", cfg.Name, ErrBusy)
	}

	mode := &bug.Mode{
		BaudRate: cfg.Baud,
		DataBits: 8,
		Parity:   bug.NoParity,
		StopBits: bug.OneStopBit,
	}
	p, err := bug.Open(cfg.Name, mode)
	if err != nil {
		lock.Unlock()
		return nil, fmt.Errorf("failed to open port %s: %w", cfg.Name, err)
	}

	return &osPort{Port: p, lock: lock}, nil
}

func (p *osPort) Close() error {
	err := p.Port.Close()
	if uerr := p.lock.Unlock(); err == nil {
		err = uerr
	}
	return err
}

// lockPath maps a device path to a lock file, so /dev/ttyUSB0 locks
// <LockDir>/trng-ttyUSB0.lock
func lockPath(cfg Config) string {
	dir := cfg.LockDir
	if dir == "" {
		dir = os.TempDir()
	}
	base := filepath.Base(cfg.Name)
	base = strings.NewReplacer(":", "_", "\\", "_").Replace(base)
	return filepath.Join(dir, "trng-"+base+".lock")
}

// List returns the names of the serial ports on the host
func List() ([]string, error) {
	ports, err := bug.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to list ports: %w", err)
	}
	return ports, nil
}
