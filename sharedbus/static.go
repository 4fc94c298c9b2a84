package sharedbus

import (
	"sync/atomic"

	"sharedbus-go/errcode"
)

// Static is a one-time-claim slot for a manager with process-wide
// lifetime. Declare it as a package-level variable, claim it exactly once
// during setup, and the returned manager outlives any function — so its
// proxies may be handed to other goroutines (backend permitting):
//
//	var i2cBus sharedbus.Static[drivers.I2C]
//
//	func setup() {
//		mgr, err := i2cBus.ClaimOS(machineI2C)
//		...
//	}
//
// The zero value is ready to use. A second claim fails with
// errcode.AlreadyClaimed and leaves the first manager in place; treat
// that as a programming error, not a runtime condition.
type Static[B any] struct {
	mgr atomic.Pointer[Manager[B]]
}

// Claim installs mgr into the slot. Exactly one Claim ever succeeds; the
// manager passed to a losing Claim is discarded.
func (s *Static[B]) Claim(mgr *Manager[B]) (*Manager[B], error) {
	if mgr == nil {
		return nil, &errcode.E{C: errcode.Error, Op: "static.claim", Msg: "nil manager"}
	}
	if !s.mgr.CompareAndSwap(nil, mgr) {
		return nil, errcode.AlreadyClaimed
	}
	return mgr, nil
}

// ClaimOS claims the slot with a fresh OS-mutex manager for bus.
func (s *Static[B]) ClaimOS(bus B) (*Manager[B], error) {
	return s.Claim(NewOS(bus))
}

// ClaimCritical claims the slot with a fresh critical-section manager.
func (s *Static[B]) ClaimCritical(bus B) (*Manager[B], error) {
	return s.Claim(NewCritical(bus))
}

// ClaimChecked claims the slot with a fresh checked-mutex manager.
func (s *Static[B]) ClaimChecked(bus B) (*Manager[B], error) {
	return s.Claim(NewChecked(bus))
}

// Get returns the claimed manager, if any.
func (s *Static[B]) Get() (*Manager[B], bool) {
	m := s.mgr.Load()
	return m, m != nil
}
