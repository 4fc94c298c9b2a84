package sharedbus

import (
	"sharedbus-go/busmutex"
	"sharedbus-go/errcode"
	"sharedbus-go/x/gid"
)

// Proxies are plain values: copying one yields another handle onto the
// same manager and peripheral, never a new peripheral. They hold no bus
// state of their own, so there is nothing to tear down.
//
// Every operation is atomic with respect to other proxies on the same
// manager, but only for the single call. Callers needing several
// operations to run back to back must go through one locked operation
// themselves; the library provides no multi-call transactions.

// Compile-time contract checks.
var (
	_ I2C    = I2CProxy[I2C]{}
	_ SPI    = SPIProxy[SPI]{}
	_ Serial = SerialProxy[Serial]{}
)

// checkOwner rejects use of a pinned proxy off its owning goroutine.
// owner == 0 means the proxy is transferable.
func checkOwner(owner uint64) error {
	if owner != 0 && gid.ID() != owner {
		return errcode.WrongContext
	}
	return nil
}

// -----------------------------------------------------------------------------
// I2C
// -----------------------------------------------------------------------------

// I2CProxy forwards I2C transactions to the shared bus under lock. It
// satisfies tinygo.org/x/drivers.I2C.
type I2CProxy[B I2C] struct {
	mu    busmutex.Mutex[B]
	owner uint64
}

// Tx performs one I2C transaction: write w (if any), then read into r (if
// any) under a repeated start. The bus's own error comes back unchanged.
func (p I2CProxy[B]) Tx(addr uint16, w, r []byte) error {
	if err := checkOwner(p.owner); err != nil {
		return err
	}
	var err error
	if lerr := p.mu.Lock(func(bus B) { err = bus.Tx(addr, w, r) }); lerr != nil {
		return lerr
	}
	return err
}

// Write transmits w to the device at addr.
func (p I2CProxy[B]) Write(addr uint16, w []byte) error { return p.Tx(addr, w, nil) }

// Read fills r from the device at addr.
func (p I2CProxy[B]) Read(addr uint16, r []byte) error { return p.Tx(addr, nil, r) }

// WriteRead writes w then reads into r within one transaction.
func (p I2CProxy[B]) WriteRead(addr uint16, w, r []byte) error { return p.Tx(addr, w, r) }

// -----------------------------------------------------------------------------
// SPI
// -----------------------------------------------------------------------------

// SPIProxy forwards SPI transfers to the shared bus under lock. It is
// always pinned to the goroutine that acquired it; see AcquireSPI.
type SPIProxy[B SPI] struct {
	mu    busmutex.Mutex[B]
	owner uint64
}

// Tx clocks w out while filling r, like machine.SPI.Tx.
func (p SPIProxy[B]) Tx(w, r []byte) error {
	if err := checkOwner(p.owner); err != nil {
		return err
	}
	var err error
	if lerr := p.mu.Lock(func(bus B) { err = bus.Tx(w, r) }); lerr != nil {
		return lerr
	}
	return err
}

// Transfer exchanges a single byte.
func (p SPIProxy[B]) Transfer(b byte) (byte, error) {
	if err := checkOwner(p.owner); err != nil {
		return 0, err
	}
	var out byte
	var err error
	if lerr := p.mu.Lock(func(bus B) { out, err = bus.Transfer(b) }); lerr != nil {
		return 0, lerr
	}
	return out, err
}

// -----------------------------------------------------------------------------
// ADC
// -----------------------------------------------------------------------------

// ADCProxy samples one fixed channel of a shared ADC block under lock.
type ADCProxy[B ADC] struct {
	mu    busmutex.Mutex[B]
	owner uint64
	ch    ADCChannel
}

// Channel reports which channel this proxy samples.
func (p ADCProxy[B]) Channel() ADCChannel { return p.ch }

// Get takes one sample from the proxy's channel.
func (p ADCProxy[B]) Get() (uint16, error) {
	if err := checkOwner(p.owner); err != nil {
		return 0, err
	}
	var v uint16
	var err error
	if lerr := p.mu.Lock(func(bus B) { v, err = bus.ReadRaw(p.ch) }); lerr != nil {
		return 0, lerr
	}
	return v, err
}

// -----------------------------------------------------------------------------
// Serial
// -----------------------------------------------------------------------------

// SerialProxy forwards writes to a shared serial port, one whole call per
// lock, so concurrent writers interleave at call granularity rather than
// byte granularity.
type SerialProxy[B Serial] struct {
	mu    busmutex.Mutex[B]
	owner uint64
}

func (p SerialProxy[B]) Write(b []byte) (int, error) {
	if err := checkOwner(p.owner); err != nil {
		return 0, err
	}
	var n int
	var err error
	if lerr := p.mu.Lock(func(bus B) { n, err = bus.Write(b) }); lerr != nil {
		return 0, lerr
	}
	return n, err
}

func (p SerialProxy[B]) WriteByte(c byte) error {
	if err := checkOwner(p.owner); err != nil {
		return err
	}
	var err error
	if lerr := p.mu.Lock(func(bus B) { err = bus.WriteByte(c) }); lerr != nil {
		return lerr
	}
	return err
}
