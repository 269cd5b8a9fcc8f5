// Package entropy reads 32-bit samples from a hardware random number source
package entropy

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Source is a true random number generator.  Uint32 blocks until one sample
// is read.  A nil error is the success indicator; a failed sample is never
// retried.
type Source interface {
	Uint32() (uint32, error)
}

var (
	ErrFailed        = errors.New("entropy source failed")
	ErrUnknownSource = errors.New("unknown entropy source")
)

// Source names for Open
const (
	NameMachine   = "machine"
	NameHWRNG     = "hwrng"
	NameGetrandom = "getrandom"
)

// Reader is a Source reading 4-byte little-endian samples from an entropy
// device such as /dev/hwrng
type Reader struct {
	r io.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (r *Reader) Uint32() (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r.r, buf[:]); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFailed, err)
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// Close closes the underlying reader, if it is an io.Closer
func (r *Reader) Close() error {
	if c, ok := r.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Fixed is a Source replaying Values, in order, wrapping around.  If Err is
// set, every sample fails.
type Fixed struct {
	Values []uint32
	Err    error
	next   int
}

func (f *Fixed) Uint32() (uint32, error) {
	if f.Err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFailed, f.Err)
	}
	if len(f.Values) == 0 {
		return 0, nil
	}
	v := f.Values[f.next%len(f.Values)]
	f.next++
	return v, nil
}
