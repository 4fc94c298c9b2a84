// Package sharedbus lets several device drivers share one bus peripheral
// (I2C, SPI, ADC, UART) that each of them expects to own exclusively.
//
// A Manager owns the real peripheral behind a busmutex.Mutex and mints
// lightweight proxies; every proxy operation locks, performs exactly the
// requested transaction on the protected peripheral, and unlocks. To a
// driver, a proxy is indistinguishable from the bus itself — I2C proxies
// satisfy tinygo.org/x/drivers.I2C, so existing drivers take them
// unmodified:
//
//	mgr := sharedbus.NewSimple[drivers.I2C](machineI2C)
//	sensor := aht20.New(sharedbus.AcquireI2C(mgr))
//	raw := sharedbus.AcquireI2C(mgr)
//
// The backend decides what "locked" means (see busmutex) and whether
// proxies may cross goroutines. Proxies that must stay on one goroutine
// carry an owner tag and fail fast with errcode.WrongContext when used
// elsewhere.
package sharedbus

import "tinygo.org/x/drivers"

// I2C is the transactional I2C contract, taken directly from
// tinygo.org/x/drivers so that device drivers written against it accept a
// proxy in place of the real bus.
type I2C = drivers.I2C

// SPI is the subset we need (compatible with machine.SPI).
type SPI interface {
	Tx(w, r []byte) error
	Transfer(b byte) (byte, error)
}

// ADCChannel identifies one hardware ADC input. The library never
// validates it; channel numbering belongs to the peripheral.
type ADCChannel uint8

// ADC is a channelled one-shot sampler. ReadRaw blocks until a sample for
// the requested channel is available.
type ADC interface {
	ReadRaw(ch ADCChannel) (uint16, error)
}

// Serial is the TX subset of a UART port. A shared serial port guarantees
// whole-call atomicity: one Write is never interleaved with another.
type Serial interface {
	Write(p []byte) (int, error)
	WriteByte(b byte) error
}
