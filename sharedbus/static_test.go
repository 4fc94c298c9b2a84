package sharedbus

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"sharedbus-go/errcode"
)

func TestStatic_SecondClaimFails(t *testing.T) {
	var slot Static[I2C]

	dev := &fakeI2C{}
	mgr, err := slot.ClaimOS(dev)
	if err != nil {
		t.Fatalf("first claim: %v", err)
	}
	if mgr == nil {
		t.Fatal("first claim returned nil manager")
	}

	if _, err := slot.ClaimOS(&fakeI2C{}); !errors.Is(err, errcode.AlreadyClaimed) {
		t.Fatalf("second claim err = %v, want %v", err, errcode.AlreadyClaimed)
	}

	// The first manager stays valid and reachable.
	got, ok := slot.Get()
	if !ok || got != mgr {
		t.Fatalf("Get = %v, %v; want original manager", got, ok)
	}
	p := AcquireI2C(mgr)
	if err := p.Write(0x39, []byte{0xC0, 0xFF, 0xEE}); err != nil {
		t.Fatalf("write via claimed manager: %v", err)
	}
}

func TestStatic_ZeroValueEmpty(t *testing.T) {
	var slot Static[ADC]
	if _, ok := slot.Get(); ok {
		t.Fatal("zero-value slot reports a manager")
	}
}

func TestStatic_ClaimNilRejected(t *testing.T) {
	var slot Static[I2C]
	if _, err := slot.Claim(nil); err == nil {
		t.Fatal("claim(nil) succeeded")
	}
	// Slot must still be claimable afterwards.
	if _, err := slot.ClaimChecked(&fakeI2C{}); err != nil {
		t.Fatalf("claim after rejected nil: %v", err)
	}
}

func TestStatic_ExactlyOneWinnerUnderRace(t *testing.T) {
	var slot Static[I2C]

	const claimers = 8
	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := slot.ClaimCritical(&fakeI2C{}); err == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	if wins.Load() != 1 {
		t.Fatalf("%d claims succeeded, want exactly 1", wins.Load())
	}
}
