//go:build tinygo

package trng

import (
	"sync"
)

// Mutex is the lock used by things
type Mutex struct {
	sync.Mutex
}

type rwMutex struct {
	sync.RWMutex
}
