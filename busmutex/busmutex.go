// Package busmutex abstracts over mutual-exclusion primitives so that a
// shared bus peripheral can be protected by whatever mechanism the target
// actually has: nothing at all on a single-task loop, an interrupt-disable
// critical section on an MCU, a misuse-detecting atomic flag, or an OS
// mutex on hosted builds.
//
// Each backend owns exactly one value of the protected type and grants
// access to it only for the duration of a Lock callback. The protected
// type should carry reference semantics (an interface or a pointer); the
// mutex hands the same value to every callback and never copies state
// back.
package busmutex

// Mutex owns one value of type T and grants exclusive, synchronous access
// to it.
//
// Lock runs body with the protected value and releases the lock when body
// returns, unconditionally (a panic inside body still releases). Only the
// checked backend can fail to lock; every other backend returns nil.
// Re-entrant locking is not supported on any backend; see the individual
// types for what a recursive attempt does.
//
// Shareable reports whether handles built on this mutex may be used from
// more than one goroutine. It is a static property of the backend and
// must never change for a live instance.
type Mutex[T any] interface {
	Lock(body func(bus T)) error
	Shareable() bool
}
