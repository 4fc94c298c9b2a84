package gid

import "testing"

func TestIDStableWithinGoroutine(t *testing.T) {
	a := ID()
	b := ID()
	if a == 0 {
		t.Fatal("id is zero on host")
	}
	if a != b {
		t.Fatalf("id changed within one goroutine: %d then %d", a, b)
	}
}

func TestIDDiffersAcrossGoroutines(t *testing.T) {
	mine := ID()
	ch := make(chan uint64, 1)
	go func() { ch <- ID() }()
	other := <-ch
	if other == 0 {
		t.Fatal("id is zero on host")
	}
	if other == mine {
		t.Fatalf("two goroutines share id %d", mine)
	}
}
