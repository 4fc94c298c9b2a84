package busmutex

import (
	"errors"
	"sync"
	"testing"

	"sharedbus-go/errcode"
)

// counter is a reference-semantics payload for exercising the backends.
type counter struct {
	n       int
	inBody  bool
	overlap bool
}

func (c *counter) bump() {
	if c.inBody {
		c.overlap = true
	}
	c.inBody = true
	c.n++
	c.inBody = false
}

// Compile-time checks: every backend satisfies the contract.
var (
	_ Mutex[*counter] = (*NullMutex[*counter])(nil)
	_ Mutex[*counter] = (*CheckedMutex[*counter])(nil)
	_ Mutex[*counter] = (*OSMutex[*counter])(nil)
	_ Mutex[*counter] = (*CriticalMutex[*counter])(nil)
)

func TestNullMutex_YieldsValueDirectly(t *testing.T) {
	m := NewNull(&counter{})
	if m.Shareable() {
		t.Fatal("null mutex must not be shareable")
	}
	for i := 0; i < 3; i++ {
		if err := m.Lock(func(c *counter) { c.bump() }); err != nil {
			t.Fatalf("lock %d: %v", i, err)
		}
	}
	m.Lock(func(c *counter) {
		if c.n != 3 {
			t.Fatalf("n = %d, want 3", c.n)
		}
	})
}

func TestOSMutex_MutualExclusion(t *testing.T) {
	m := NewOS(&counter{})
	if !m.Shareable() {
		t.Fatal("os mutex must be shareable")
	}

	const workers = 8
	const iters = 500
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iters; i++ {
				if err := m.Lock(func(c *counter) { c.bump() }); err != nil {
					t.Errorf("lock: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	m.Lock(func(c *counter) {
		if c.overlap {
			t.Fatal("observed overlapping lock bodies")
		}
		if c.n != workers*iters {
			t.Fatalf("n = %d, want %d", c.n, workers*iters)
		}
	})
}

func TestCriticalMutex_HostFallback(t *testing.T) {
	m := NewCritical(&counter{})
	if !m.Shareable() {
		t.Fatal("critical mutex must be shareable")
	}
	if err := m.Lock(func(c *counter) { c.bump() }); err != nil {
		t.Fatalf("lock: %v", err)
	}
}

func TestCheckedMutex_RejectsReentrantLock(t *testing.T) {
	m := NewChecked(&counter{})

	var inner error
	err := m.Lock(func(c *counter) {
		c.bump()
		inner = m.Lock(func(c *counter) { c.bump() })
	})
	if err != nil {
		t.Fatalf("outer lock: %v", err)
	}
	if !errors.Is(inner, errcode.Locked) {
		t.Fatalf("inner lock error = %v, want %v", inner, errcode.Locked)
	}

	m.Lock(func(c *counter) {
		if c.n != 1 {
			t.Fatalf("n = %d after rejected inner lock, want 1", c.n)
		}
	})
}

func TestCheckedMutex_RecoversAfterMisuse(t *testing.T) {
	m := NewChecked(&counter{})
	m.Lock(func(c *counter) {
		_ = m.Lock(func(c *counter) {})
	})
	// The flag must be clear again.
	if err := m.Lock(func(c *counter) { c.bump() }); err != nil {
		t.Fatalf("lock after misuse: %v", err)
	}
}

func TestCheckedMutex_ReleasesOnPanic(t *testing.T) {
	m := NewChecked(&counter{})
	func() {
		defer func() { _ = recover() }()
		m.Lock(func(c *counter) { panic("boom") })
	}()
	if err := m.Lock(func(c *counter) { c.bump() }); err != nil {
		t.Fatalf("lock after panic: %v", err)
	}
}
