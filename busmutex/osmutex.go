package busmutex

import "sync"

// OSMutex is the backend for targets with an operating-system-grade
// mutex. Lock blocks until exclusive access is obtained, with no timeout
// and no fairness guarantee beyond what sync.Mutex provides.
//
// A recursive Lock from inside the callback deadlocks, as with any
// sync.Mutex.
type OSMutex[T any] struct {
	mu sync.Mutex
	v  T
}

// NewOS wraps v in an OSMutex.
func NewOS[T any](v T) *OSMutex[T] {
	return &OSMutex[T]{v: v}
}

func (m *OSMutex[T]) Lock(body func(bus T)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	body(m.v)
	return nil
}

func (m *OSMutex[T]) Shareable() bool { return true }
