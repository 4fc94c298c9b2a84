package busmutex

// NullMutex is a no-op backend for sharing within a single execution
// context. Lock yields the value directly with no synchronization, so it
// is only sound when the manager and every proxy stay on one goroutine.
// Proxies built on a NullMutex are goroutine-pinned for that reason.
//
// A recursive Lock from inside the callback runs the inner body
// immediately; with no concurrency there is nothing to protect against,
// matching the single-task semantics.
type NullMutex[T any] struct {
	v T
}

// NewNull wraps v in a NullMutex.
func NewNull[T any](v T) *NullMutex[T] {
	return &NullMutex[T]{v: v}
}

func (m *NullMutex[T]) Lock(body func(bus T)) error {
	body(m.v)
	return nil
}

func (m *NullMutex[T]) Shareable() bool { return false }
