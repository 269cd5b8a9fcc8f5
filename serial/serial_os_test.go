//go:build !tinygo

package serial

import (
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/gofrs/flock"
)

func TestOpenNoName(t *testing.T) {
	c := qt.New(t)
	_, err := Open(Config{})
	c.Assert(err, qt.ErrorIs, ErrNoPort)
}

func TestLockPath(t *testing.T) {
	c := qt.New(t)
	for _, tt := range []struct {
		name string
		want string
	}{
		{"/dev/ttyUSB0", "trng-ttyUSB0.lock"},
		{"/dev/tty.usbmodem1101", "trng-tty.usbmodem1101.lock"},
		{"COM3", "trng-COM3.lock"},
	} {
		got := lockPath(Config{Name: tt.name, LockDir: "/locks"})
		c.Check(got, qt.Equals, filepath.Join("/locks", tt.want))
	}
}

func TestOpenBusy(t *testing.T) {
	c := qt.New(t)
	cfg := Config{Name: "/dev/ttyTRNGTEST", LockDir: c.TempDir()}

	held := flock.New(lockPath(cfg))
	locked, err := held.TryLock()
	c.Assert(err, qt.IsNil)
	c.Assert(locked, qt.IsTrue)
	defer held.Unlock()

	_, err = Open(cfg)
	c.Assert(err, qt.ErrorIs, ErrBusy)
}

func TestOpenMissingDeviceReleasesLock(t *testing.T) {
	c := qt.New(t)
	cfg := Config{Name: filepath.Join(c.TempDir(), "no-such-tty"), LockDir: c.TempDir()}

	_, err := Open(cfg)
	c.Assert(err, qt.Not(qt.IsNil))
	c.Assert(err, qt.Not(qt.ErrorIs), ErrBusy)

	// the failed open must not leave the port locked
	lock := flock.New(lockPath(cfg))
	locked, err := lock.TryLock()
	c.Assert(err, qt.IsNil)
	c.Assert(locked, qt.IsTrue)
	lock.Unlock()
}
