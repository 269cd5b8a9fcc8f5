//go:build !tinygo

package trng

import (
	sync "github.com/sasha-s/go-deadlock"
)

// Mutex is the lock used by things; on a host it reports lock-order
// deadlocks
type Mutex struct {
	sync.Mutex
}

type rwMutex struct {
	sync.RWMutex
}
