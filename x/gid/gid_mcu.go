//go:build tinygo

package gid

// ID is constant on TinyGo builds: runtime.Stack does not produce the
// goroutine header there, and the cooperative scheduler gives owner-tag
// checks little to catch. Returning 0 everywhere makes every pin check
// pass and lets the compiler drop the comparison. Confinement is verified
// by the host test suite instead.
func ID() uint64 { return 0 }
