package sharedbus

import (
	"bytes"
	"sync"
	"testing"
)

// Compile-time check.
var _ Serial = (*fakeSerial)(nil)

// fakeSerial appends everything written; writes are only safe when the
// proxy layer serializes them, which is what the tests assert.
type fakeSerial struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (f *fakeSerial) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.buf.Write(p)
}

func (f *fakeSerial) WriteByte(b byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.buf.WriteByte(b)
}

func (f *fakeSerial) String() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.buf.String()
}

func TestSerialProxy_WholeWritesNotInterleaved(t *testing.T) {
	port := &fakeSerial{}
	mgr := NewOS[Serial](port)

	const iters = 100
	lineA := []byte("aaaa\n")
	lineB := []byte("bbbb\n")

	var wg sync.WaitGroup
	writer := func(line []byte) {
		defer wg.Done()
		p := AcquireSerial(mgr)
		for i := 0; i < iters; i++ {
			if _, err := p.Write(line); err != nil {
				t.Errorf("write: %v", err)
				return
			}
		}
	}
	wg.Add(2)
	go writer(lineA)
	go writer(lineB)
	wg.Wait()

	// Every line must come out whole.
	for _, ln := range bytes.Split([]byte(port.String()), []byte("\n")) {
		if len(ln) == 0 {
			continue
		}
		if !bytes.Equal(ln, []byte("aaaa")) && !bytes.Equal(ln, []byte("bbbb")) {
			t.Fatalf("interleaved line %q", ln)
		}
	}
}

func TestSerialProxy_WriteByte(t *testing.T) {
	port := &fakeSerial{}
	mgr := NewSimple[Serial](port)
	p := AcquireSerial(mgr)

	for _, b := range []byte("ok") {
		if err := p.WriteByte(b); err != nil {
			t.Fatalf("write byte: %v", err)
		}
	}
	if port.String() != "ok" {
		t.Fatalf("port holds %q", port.String())
	}
}
