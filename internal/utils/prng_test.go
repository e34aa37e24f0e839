// internal/utils/prng_test.go
package utils

import "testing"

func TestSeededSequencesMatch(t *testing.T) {
	a := NewPRNGService(123)
	b := NewPRNGService(123)
	for i := 0; i < 100; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

func TestIntnStaysInRange(t *testing.T) {
	s := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		if n := s.Intn(2); n < 0 || n > 1 {
			t.Fatalf("Intn(2) = %d", n)
		}
	}
}

func TestZeroSeedUsesClock(t *testing.T) {
	if NewPRNGService(0) == nil {
		t.Fatal("nil service")
	}
}
