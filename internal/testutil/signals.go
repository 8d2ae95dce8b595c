package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a sine wave starting at phase zero.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// SineRamp generates a quarter-sine rise from 0 towards 1. The result is
// strictly increasing and never crosses zero.
func SineRamp(length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = math.Sin(0.5 * math.Pi * float64(i+1) / float64(length))
	}
	return out
}

// Index returns a signal whose value equals its sample index. Useful to
// trace where each output sample was taken from.
func Index(length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}
