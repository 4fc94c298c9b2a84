//go:build tinygo

package busmutex

import "runtime/interrupt"

// CriticalMutex serializes access by disabling interrupts for the
// duration of the callback, guaranteeing exclusivity against every other
// context on the same core. Keep callbacks short; nothing else runs while
// one is active.
//
// A recursive Lock from inside the callback deadlocks in spirit: the
// inner Disable is harmless but the design does not support it and it is
// a programming error.
type CriticalMutex[T any] struct {
	v T
}

// NewCritical wraps v in a CriticalMutex.
func NewCritical[T any](v T) *CriticalMutex[T] {
	return &CriticalMutex[T]{v: v}
}

func (m *CriticalMutex[T]) Lock(body func(bus T)) error {
	state := interrupt.Disable()
	defer interrupt.Restore(state)
	body(m.v)
	return nil
}

func (m *CriticalMutex[T]) Shareable() bool { return true }
