package sharedbus

import (
	"sharedbus-go/busmutex"
	"sharedbus-go/x/gid"
)

// Manager owns one mutex-wrapped bus peripheral and mints proxies for it.
// The peripheral is reachable only through the mutex; the manager itself
// never touches it. Acquire calls are side-effect free, never lock, and
// may be made any number of times — every proxy refers to the same
// underlying peripheral.
//
// The manager must outlive every proxy minted from it.
type Manager[B any] struct {
	mu busmutex.Mutex[B]
}

// NewWith builds a manager on an explicit mutex backend. Use this for a
// backend the per-backend constructors below do not cover.
func NewWith[B any](mu busmutex.Mutex[B]) *Manager[B] {
	return &Manager[B]{mu: mu}
}

// NewSimple wraps bus for sharing within a single goroutine (NullMutex).
// Proxies from this manager are goroutine-pinned.
func NewSimple[B any](bus B) *Manager[B] {
	return NewWith[B](busmutex.NewNull(bus))
}

// NewCritical wraps bus in an interrupt-disable critical section on MCU
// builds (blocking mutex on host builds).
func NewCritical[B any](bus B) *Manager[B] {
	return NewWith[B](busmutex.NewCritical(bus))
}

// NewChecked wraps bus in a misuse-detecting mutex; see
// busmutex.CheckedMutex for the fail-fast contract.
func NewChecked[B any](bus B) *Manager[B] {
	return NewWith[B](busmutex.NewChecked(bus))
}

// NewOS wraps bus in a blocking OS mutex.
func NewOS[B any](bus B) *Manager[B] {
	return NewWith[B](busmutex.NewOS(bus))
}

// pin returns the owner tag for a new proxy: zero (transferable) on a
// shareable backend, the current goroutine otherwise.
func (m *Manager[B]) pin() uint64 {
	if m.mu.Shareable() {
		return 0
	}
	return gid.ID()
}

// AcquireI2C mints an I2C proxy for m's bus.
//
// These are free functions rather than methods because each bus kind
// needs its own constraint on B, which Go methods cannot add.
func AcquireI2C[B I2C](m *Manager[B]) I2CProxy[B] {
	return I2CProxy[B]{mu: m.mu, owner: m.pin()}
}

// AcquireSPI mints an SPI proxy for m's bus.
//
// SPI proxies are goroutine-pinned on every backend: drivers assert
// chip-select around multi-call transactions, and this library locks per
// call, so confining the proxy to one goroutine is the only way to keep
// a transaction free of intervening traffic.
func AcquireSPI[B SPI](m *Manager[B]) SPIProxy[B] {
	return SPIProxy[B]{mu: m.mu, owner: gid.ID()}
}

// AcquireADC mints an ADC proxy bound to one channel. The channel is
// fixed for the proxy's lifetime and is not validated here.
func AcquireADC[B ADC](m *Manager[B], ch ADCChannel) ADCProxy[B] {
	return ADCProxy[B]{mu: m.mu, owner: m.pin(), ch: ch}
}

// AcquireSerial mints a serial proxy for m's port.
func AcquireSerial[B Serial](m *Manager[B]) SerialProxy[B] {
	return SerialProxy[B]{mu: m.mu, owner: m.pin()}
}
