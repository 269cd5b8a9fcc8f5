//go:build !linux && !tinygo

package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
)

// Getrandom samples the operating system's random number generator
type Getrandom struct{}

func (Getrandom) Uint32() (uint32, error) {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFailed, err)
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}
