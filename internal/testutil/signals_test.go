package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	x := DeterministicSine(12000, 48000, 1, 4)
	want := []float64{0, 1, 0, -1}
	RequireSliceNearlyEqual(t, x, want, 1e-12)
}

func TestSineRampIsIncreasingAndPositive(t *testing.T) {
	x := SineRamp(8192)
	if x[0] <= 0 {
		t.Fatalf("x[0] = %v, want > 0", x[0])
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			t.Fatalf("not increasing at %d: %v <= %v", i, x[i], x[i-1])
		}
	}
	if math.Abs(x[len(x)-1]-1) > 1e-12 {
		t.Fatalf("last = %v, want 1", x[len(x)-1])
	}
}

func TestIndex(t *testing.T) {
	x := Index(5)
	for i, v := range x {
		if v != float64(i) {
			t.Fatalf("x[%d] = %v, want %d", i, v, i)
		}
	}
}

func TestDeterministicNoiseRepeatable(t *testing.T) {
	a := DeterministicNoise(7, 0.5, 64)
	b := DeterministicNoise(7, 0.5, 64)
	RequireSliceNearlyEqual(t, a, b, 0)
	for i, v := range a {
		if math.Abs(v) > 0.5 {
			t.Fatalf("sample %d out of range: %v", i, v)
		}
	}
}
