package serial

import (
	"io"
	"sync"
)

// Mock implements Port for testing
type Mock struct {
	mu        sync.Mutex
	ReadData  []byte
	ReadErr   error
	WriteData []byte
	WriteErr  error
	Closed    bool

	// ReadFunc allows custom read behavior for complex tests
	ReadFunc func(p []byte) (int, error)
}

func (m *Mock) Read(p []byte) (int, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(p)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.ReadData) == 0 {
		if m.ReadErr != nil {
			return 0, m.ReadErr
		}
		return 0, io.EOF
	}
	n := copy(p, m.ReadData)
	m.ReadData = m.ReadData[n:]
	return n, nil
}

func (m *Mock) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return 0, m.WriteErr
	}
	m.WriteData = append(m.WriteData, p...)
	return len(p), nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}

// Written returns a copy of everything written so far
func (m *Mock) Written() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.WriteData)
}
