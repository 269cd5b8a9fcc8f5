//go:build tinygo

package entropy

import (
	"fmt"
	"machine"
)

// Machine samples the chip's TRNG peripheral
type Machine struct{}

func (Machine) Uint32() (uint32, error) {
	n, err := machine.GetRNG()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFailed, err)
	}
	return n, nil
}

// Open returns the named source.  Only "machine" is available on a
// microcontroller.
func Open(name string) (Source, error) {
	switch name {
	case NameMachine, "":
		return Machine{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
}
