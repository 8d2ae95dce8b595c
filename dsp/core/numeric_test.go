package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		lo       float64
		hi       float64
		expected float64
	}{
		{name: "inside", value: 0.5, lo: 0, hi: 1, expected: 0.5},
		{name: "below", value: -1, lo: 0, hi: 1, expected: 0},
		{name: "above", value: 2, lo: 0, hi: 1, expected: 1},
		{name: "swapped", value: 2, lo: 1, hi: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.lo, tt.hi)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1.5) {
		t.Fatal("1.5 should be finite")
	}
	if IsFinite(math.NaN()) || IsFinite(math.Inf(1)) || IsFinite(math.Inf(-1)) {
		t.Fatal("NaN and Inf should not be finite")
	}
}

func TestCeilMul(t *testing.T) {
	tests := []struct {
		n      int
		factor float64
		want   int
	}{
		{n: 8192, factor: 1.2, want: 9831},
		{n: 8192, factor: 0.5, want: 4096},
		{n: 2048, factor: 1.2, want: 2458},
		{n: 7, factor: 1, want: 7},
	}

	for _, tt := range tests {
		if got := CeilMul(tt.n, tt.factor); got != tt.want {
			t.Fatalf("CeilMul(%d, %v) = %d, want %d", tt.n, tt.factor, got, tt.want)
		}
	}
}
