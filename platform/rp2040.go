//go:build rp2040 || rp2350

// Package platform binds the shared-bus contracts to RP2 silicon: it
// configures the machine peripherals and hands back values ready to wrap
// in a sharedbus.Manager. Host builds compile none of this.
package platform

import (
	"errors"
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers"

	"sharedbus-go/sharedbus"
)

var errInvalidChannel = errors.New("platform: invalid adc channel")

// I2C0 configures i2c0 on the default Pico pins at the given frequency
// (400 kHz if zero) and returns it as a drivers.I2C.
func I2C0(hz uint32) (drivers.I2C, error) {
	if hz == 0 {
		hz = 400 * machine.KHz
	}
	b := machine.I2C0
	if err := b.Configure(machine.I2CConfig{
		Frequency: hz,
		SDA:       machine.I2C0_SDA_PIN,
		SCL:       machine.I2C0_SCL_PIN,
	}); err != nil {
		return nil, err
	}
	return b, nil
}

// SPI0 configures spi0 on the default Pico pins and returns it as a
// sharedbus.SPI.
func SPI0(hz uint32) (sharedbus.SPI, error) {
	if hz == 0 {
		hz = 4 * machine.MHz
	}
	b := machine.SPI0
	if err := b.Configure(machine.SPIConfig{
		Frequency: hz,
		SCK:       machine.SPI0_SCK_PIN,
		SDO:       machine.SPI0_SDO_PIN,
		SDI:       machine.SPI0_SDI_PIN,
	}); err != nil {
		return nil, err
	}
	return b, nil
}

// ---- ADC ----

// rp2ADC exposes the RP2 ADC block through the channelled contract.
// Channels 0..3 map to GP26..GP29 per the datasheet.
type rp2ADC struct {
	pins [4]machine.ADC
}

var _ sharedbus.ADC = (*rp2ADC)(nil)

// ADCBlock initializes the ADC and returns a sampler covering channels
// 0..3. Call once.
func ADCBlock() sharedbus.ADC {
	machine.InitADC()
	a := &rp2ADC{pins: [4]machine.ADC{
		{Pin: machine.GP26},
		{Pin: machine.GP27},
		{Pin: machine.GP28},
		{Pin: machine.GP29},
	}}
	for i := range a.pins {
		a.pins[i].Configure(machine.ADCConfig{})
	}
	return a
}

func (a *rp2ADC) ReadRaw(ch sharedbus.ADCChannel) (uint16, error) {
	if int(ch) >= len(a.pins) {
		return 0, errInvalidChannel
	}
	return a.pins[ch].Get(), nil
}

// ---- UART ----

// rp2Serial adapts a uartx port to the sharedbus.Serial contract.
type rp2Serial struct {
	u *uartx.UART
}

var _ sharedbus.Serial = (*rp2Serial)(nil)

func (p *rp2Serial) Write(b []byte) (int, error) { return p.u.Write(b) }
func (p *rp2Serial) WriteByte(b byte) error {
	_, err := p.u.Write([]byte{b})
	return err
}

// UART0 configures uart0 on the default Pico pins and returns it as a
// sharedbus.Serial. Defaults inside uartx apply when baud is zero.
func UART0(baud uint32) sharedbus.Serial {
	hw := uartx.UART0
	_ = hw.Configure(uartx.UARTConfig{
		BaudRate: baud,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})
	return &rp2Serial{u: hw}
}
