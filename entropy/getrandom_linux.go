//go:build linux && !tinygo

package entropy

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/sys/unix"
)

// Getrandom samples the kernel entropy pool with getrandom(2), blocking until
// the pool is initialized
type Getrandom struct{}

func (Getrandom) Uint32() (uint32, error) {
	var buf [4]byte
	n, err := unix.Getrandom(buf[:], 0)
	if err != nil {
		return 0, fmt.Errorf("%w: getrandom: %v", ErrFailed, err)
	}
	if n != len(buf) {
		return 0, fmt.Errorf("%w: getrandom: short read %d", ErrFailed, n)
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}
