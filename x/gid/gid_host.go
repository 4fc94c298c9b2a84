//go:build !tinygo

package gid

import "runtime"

// ID returns the calling goroutine's numeric id, parsed from the first
// line of its stack header ("goroutine N [...]"). The runtime offers no
// public accessor; this is the standard trick and costs one small Stack
// call. Used only on host builds for owner-tag checks on pinned proxies,
// not on any hot path that matters there.
func ID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	// Skip "goroutine " and accumulate digits up to the following space.
	const prefix = len("goroutine ")
	var id uint64
	for i := prefix; i < n; i++ {
		c := buf[i]
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
