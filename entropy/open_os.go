//go:build !tinygo

package entropy

import (
	"fmt"
	"os"
)

// DefaultHWRNG is the Linux hardware random number generator device
const DefaultHWRNG = "/dev/hwrng"

// Open returns the named source: "hwrng" reads DefaultHWRNG, "getrandom"
// asks the kernel.  The caller closes the source if it is an io.Closer.
func Open(name string) (Source, error) {
	switch name {
	case NameHWRNG:
		return OpenHWRNG(DefaultHWRNG)
	case NameGetrandom, "":
		return Getrandom{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
}

// OpenHWRNG opens a hardware RNG character device
func OpenHWRNG(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return NewReader(f), nil
}
