package busmutex

import (
	"sync/atomic"

	"sharedbus-go/errcode"
)

// CheckedMutex detects locking misuse instead of blocking. It keeps an
// atomic "currently locked" flag; if Lock is called while a lock is
// already outstanding (re-entrant call or a second goroutine), it returns
// errcode.Locked immediately rather than waiting.
//
// It is meant for environments that already guarantee real mutual
// exclusion (a single cooperative scheduler, externally serialized tasks)
// but want the discipline checked. Treat errcode.Locked as a bug in the
// caller, not something to retry.
type CheckedMutex[T any] struct {
	locked atomic.Bool
	v      T
}

// NewChecked wraps v in a CheckedMutex.
func NewChecked[T any](v T) *CheckedMutex[T] {
	return &CheckedMutex[T]{v: v}
}

func (m *CheckedMutex[T]) Lock(body func(bus T)) error {
	if !m.locked.CompareAndSwap(false, true) {
		return errcode.Locked
	}
	defer m.locked.Store(false)
	body(m.v)
	return nil
}

func (m *CheckedMutex[T]) Shareable() bool { return true }
