// cmd/bustest/main.go
//
// Interactive self-test shell for the shared-bus layer. It wires mock
// I2C/SPI/ADC peripherals into managers and lets you drive them from the
// prompt while a background poller hammers the same buses — a cheap way
// to eyeball the serialization behaviour on a host build.
//
//	> w 39 c0 ff ee
//	> r 39 3
//	> adc 1
//	> stats
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/shlex"

	"sharedbus-go/errcode"
	"sharedbus-go/sharedbus"
	"sharedbus-go/x/mathx"
)

// ---- mock peripherals -------------------------------------------------------

// mockI2C keeps a tiny register file per device address.
type mockI2C struct {
	regs map[uint16][]byte
	ops  atomic.Int64
}

func newMockI2C() *mockI2C { return &mockI2C{regs: map[uint16][]byte{}} }

func (m *mockI2C) Tx(addr uint16, w, r []byte) error {
	m.ops.Add(1)
	if len(w) > 0 {
		m.regs[addr] = append([]byte(nil), w...)
	}
	stored := m.regs[addr]
	for i := range r {
		if i < len(stored) {
			r[i] = stored[i]
		} else {
			r[i] = 0xFF
		}
	}
	return nil
}

// mockSPI echoes every byte incremented by one.
type mockSPI struct {
	ops atomic.Int64
}

func (m *mockSPI) Tx(w, r []byte) error {
	m.ops.Add(1)
	for i := range r {
		if i < len(w) {
			r[i] = w[i] + 1
		}
	}
	return nil
}

func (m *mockSPI) Transfer(b byte) (byte, error) {
	m.ops.Add(1)
	return b + 1, nil
}

// mockADC serves a per-channel baseline with a little noise.
type mockADC struct {
	base map[sharedbus.ADCChannel]int
	ops  atomic.Int64
}

func newMockADC() *mockADC {
	return &mockADC{base: map[sharedbus.ADCChannel]int{
		0: 0x0800, 1: 0x0400, 2: 0x0C00, 3: 0x0200,
	}}
}

func (m *mockADC) ReadRaw(ch sharedbus.ADCChannel) (uint16, error) {
	m.ops.Add(1)
	base, ok := m.base[ch]
	if !ok {
		return 0, &errcode.E{C: errcode.Error, Op: "adc.read", Msg: "no such channel"}
	}
	v := base + rand.Intn(33) - 16
	return uint16(mathx.Clamp(v, 0, 0xFFFF)), nil
}

// ---- shell ------------------------------------------------------------------

func main() {
	i2cDev := newMockI2C()
	spiDev := &mockSPI{}
	adcDev := newMockADC()

	i2cMgr := sharedbus.NewOS[sharedbus.I2C](i2cDev)
	adcMgr := sharedbus.NewOS[sharedbus.ADC](adcDev)
	// SPI stays on the prompt goroutine; its proxies are pinned anyway.
	spiMgr := sharedbus.NewSimple[sharedbus.SPI](spiDev)

	i2c := sharedbus.AcquireI2C(i2cMgr)
	spi := sharedbus.AcquireSPI(spiMgr)

	// Background poller: contends with the prompt on i2c and adc.
	var polls atomic.Int64
	go func() {
		p := sharedbus.AcquireI2C(i2cMgr)
		a := sharedbus.AcquireADC(adcMgr, 0)
		buf := make([]byte, 1)
		for {
			_ = p.Read(0x39, buf)
			_, _ = a.Get()
			polls.Add(1)
			time.Sleep(50 * time.Millisecond)
		}
	}()

	fmt.Println("bustest: mock shared-bus shell ('help' for commands)")
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !sc.Scan() {
			return
		}
		args, err := shlex.Split(sc.Text())
		if err != nil {
			fmt.Println("parse error:", err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "help":
			fmt.Println("w <addr> <hex>...   write bytes to device")
			fmt.Println("r <addr> <n>        read n bytes from device")
			fmt.Println("wr <addr> <hex> <n> write then read")
			fmt.Println("adc <ch>            sample a channel")
			fmt.Println("spi <hex>...        full-duplex transfer")
			fmt.Println("stats               op counters")
			fmt.Println("quit")

		case "w":
			addr, data, err := addrAndBytes(args[1:])
			if err != nil {
				fmt.Println(err)
				continue
			}
			report(i2c.Write(addr, data))

		case "r":
			if len(args) != 3 {
				fmt.Println("usage: r <addr> <n>")
				continue
			}
			addr, err := parseAddr(args[1])
			if err != nil {
				fmt.Println(err)
				continue
			}
			n, err := strconv.Atoi(args[2])
			if err != nil || n <= 0 || n > 64 {
				fmt.Println("bad count")
				continue
			}
			buf := make([]byte, n)
			if err := i2c.Read(addr, buf); err != nil {
				report(err)
				continue
			}
			fmt.Printf("%s\n", hexDump(buf))

		case "wr":
			if len(args) != 4 {
				fmt.Println("usage: wr <addr> <hex> <n>")
				continue
			}
			addr, err := parseAddr(args[1])
			if err != nil {
				fmt.Println(err)
				continue
			}
			w, err := hex.DecodeString(args[2])
			if err != nil {
				fmt.Println("bad hex")
				continue
			}
			n, err := strconv.Atoi(args[3])
			if err != nil || n <= 0 || n > 64 {
				fmt.Println("bad count")
				continue
			}
			buf := make([]byte, n)
			if err := i2c.WriteRead(addr, w, buf); err != nil {
				report(err)
				continue
			}
			fmt.Printf("%s\n", hexDump(buf))

		case "adc":
			if len(args) != 2 {
				fmt.Println("usage: adc <ch>")
				continue
			}
			ch, err := strconv.Atoi(args[1])
			if err != nil || ch < 0 || ch > 255 {
				fmt.Println("bad channel")
				continue
			}
			p := sharedbus.AcquireADC(adcMgr, sharedbus.ADCChannel(ch))
			v, err := p.Get()
			if err != nil {
				report(err)
				continue
			}
			fmt.Printf("ch%d = %#04x\n", ch, v)

		case "spi":
			w := make([]byte, 0, len(args)-1)
			ok := true
			for _, a := range args[1:] {
				b, err := strconv.ParseUint(a, 16, 8)
				if err != nil {
					fmt.Println("bad hex byte:", a)
					ok = false
					break
				}
				w = append(w, byte(b))
			}
			if !ok || len(w) == 0 {
				continue
			}
			r := make([]byte, len(w))
			if err := spi.Tx(w, r); err != nil {
				report(err)
				continue
			}
			fmt.Printf("%s\n", hexDump(r))

		case "stats":
			fmt.Printf("i2c ops=%d  spi ops=%d  adc ops=%d  background polls=%d\n",
				i2cDev.ops.Load(), spiDev.ops.Load(), adcDev.ops.Load(), polls.Load())

		case "quit", "exit":
			return

		default:
			fmt.Println("unknown command; try 'help'")
		}
	}
}

func parseAddr(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 16, 7)
	if err != nil {
		return 0, fmt.Errorf("bad address %q (7-bit hex)", s)
	}
	return uint16(v), nil
}

func addrAndBytes(args []string) (uint16, []byte, error) {
	if len(args) < 2 {
		return 0, nil, fmt.Errorf("usage: w <addr> <hex>...")
	}
	addr, err := parseAddr(args[0])
	if err != nil {
		return 0, nil, err
	}
	data := make([]byte, 0, len(args)-1)
	for _, a := range args[1:] {
		b, err := strconv.ParseUint(a, 16, 8)
		if err != nil {
			return 0, nil, fmt.Errorf("bad hex byte %q", a)
		}
		data = append(data, byte(b))
	}
	return addr, data, nil
}

func report(err error) {
	if err == nil {
		fmt.Println("ok")
		return
	}
	fmt.Printf("error (%s): %v\n", errcode.Of(err), err)
}

func hexDump(b []byte) string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = fmt.Sprintf("%02x", c)
	}
	return strings.Join(parts, " ")
}
