//go:build rp2040 || rp2350

// cmd/pico-shared-demo/main.go
//
// One I2C bus, two users: an AHT20 driver from tinygo.org/x/drivers on
// one proxy and a raw address scanner on another, running in separate
// goroutines. The UART is shared the same way so their output lines do
// not interleave. Flash to a Pico with an AHT20 on the default i2c0 pins.
package main

import (
	"time"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/aht20"

	"sharedbus-go/platform"
	"sharedbus-go/sharedbus"
)

var (
	i2cSlot    sharedbus.Static[drivers.I2C]
	serialSlot sharedbus.Static[sharedbus.Serial]
)

func main() {
	bus, err := platform.I2C0(0)
	if err != nil {
		for {
			println("i2c0 configure failed")
			time.Sleep(time.Second)
		}
	}

	i2cMgr, _ := i2cSlot.ClaimCritical(bus)
	serMgr, _ := serialSlot.ClaimCritical(platform.UART0(115200))

	log := sharedbus.AcquireSerial(serMgr)

	sensor := aht20.New(sharedbus.AcquireI2C(i2cMgr))
	sensor.Configure()

	go scan(i2cMgr, serMgr)

	for {
		if err := sensor.Read(); err != nil {
			log.Write([]byte("aht20: read failed\n"))
		} else {
			log.Write([]byte("aht20: sample ok\n"))
			println("deci_c =", sensor.DeciCelsius(), "deci_rh =", sensor.DeciRelHumidity())
		}
		time.Sleep(2 * time.Second)
	}
}

// scan probes the 7-bit address space through its own proxies while the
// sensor loop runs on the main goroutine.
func scan(i2cMgr *sharedbus.Manager[drivers.I2C], serMgr *sharedbus.Manager[sharedbus.Serial]) {
	p := sharedbus.AcquireI2C(i2cMgr)
	out := sharedbus.AcquireSerial(serMgr)
	probe := make([]byte, 1)

	for {
		found := 0
		for addr := uint16(0x08); addr < 0x78; addr++ {
			if p.Read(addr, probe) == nil {
				found++
			}
		}
		out.Write([]byte("scan: pass complete\n"))
		println("scan: devices found =", found)
		time.Sleep(5 * time.Second)
	}
}
