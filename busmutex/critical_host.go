//go:build !tinygo

package busmutex

import "sync"

// CriticalMutex serializes access with an interrupt-disable critical
// section on MCU builds. On host builds there are no interrupts to
// disable, so it degrades to a plain blocking mutex with the same
// external contract (exclusive, transferable, infallible). This mirrors
// the mcu/host file split used throughout the tree.
type CriticalMutex[T any] struct {
	mu sync.Mutex
	v  T
}

// NewCritical wraps v in a CriticalMutex.
func NewCritical[T any](v T) *CriticalMutex[T] {
	return &CriticalMutex[T]{v: v}
}

func (m *CriticalMutex[T]) Lock(body func(bus T)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	body(m.v)
	return nil
}

func (m *CriticalMutex[T]) Shareable() bool { return true }
