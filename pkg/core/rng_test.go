package core

import "testing"

func TestNewRNGDeterministic(t *testing.T) {
	a := NewRNG(42).Source()
	b := NewRNG(42).Source()
	for i := 0; i < 16; i++ {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("draw %d: %d != %d for the same seed", i, x, y)
		}
	}
}
