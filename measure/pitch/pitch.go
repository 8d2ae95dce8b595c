package pitch

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-timescale/dsp/core"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/dsp/window"
)

var (
	ErrEmptyInput        = errors.New("pitch: empty input")
	ErrInvalidSampleRate = errors.New("pitch: sample rate must be positive and finite")
	ErrSilent            = errors.New("pitch: no spectral peak above DC")
)

// Estimate is a dominant-frequency estimate.
type Estimate struct {
	FrequencyHz float64
	// Bin is the fractional FFT bin of the peak.
	Bin       float64
	Magnitude float64
	FFTSize   int
}

// Dominant returns the strongest non-DC frequency component of x.
func Dominant(x []float64, sampleRate float64) (Estimate, error) {
	if len(x) == 0 {
		return Estimate{}, ErrEmptyInput
	}
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return Estimate{}, fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	fftSize := nextPowerOf2(max(len(x), 4))
	windowed := window.Hann(append([]float64(nil), x...))

	in := make([]complex128, fftSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Estimate{}, fmt.Errorf("pitch: failed to create FFT plan: %w", err)
	}
	spectrum := make([]complex128, fftSize)
	if err := plan.Forward(spectrum, in); err != nil {
		return Estimate{}, fmt.Errorf("pitch: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(spectrum[k])
		im[k] = imag(spectrum[k])
	}
	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	peak := 1
	for k := 2; k < bins-1; k++ {
		if mag[k] > mag[peak] {
			peak = k
		}
	}
	if mag[peak] == 0 {
		return Estimate{}, ErrSilent
	}

	bin := float64(peak) + parabolicOffset(mag[peak-1], mag[peak], mag[peak+1])
	return Estimate{
		FrequencyHz: bin * sampleRate / float64(fftSize),
		Bin:         bin,
		Magnitude:   mag[peak],
		FFTSize:     fftSize,
	}, nil
}

// Drift returns the dominant-frequency change from in to out in cents.
func Drift(in, out []float64, sampleRate float64) (float64, error) {
	a, err := Dominant(in, sampleRate)
	if err != nil {
		return 0, err
	}
	b, err := Dominant(out, sampleRate)
	if err != nil {
		return 0, err
	}
	return Cents(a.FrequencyHz, b.FrequencyHz), nil
}

// Cents returns the interval from f0 to f1 in cents.
func Cents(f0, f1 float64) float64 {
	return 1200 * math.Log2(f1/f0)
}

// parabolicOffset fits a parabola through three log magnitudes and returns
// the vertex offset from the middle bin, in [-0.5, 0.5].
func parabolicOffset(a, b, c float64) float64 {
	const floor = 1e-300
	la := math.Log(math.Max(a, floor))
	lb := math.Log(math.Max(b, floor))
	lc := math.Log(math.Max(c, floor))

	den := la - 2*lb + lc
	if den >= 0 {
		return 0
	}
	return core.Clamp(0.5*(la-lc)/den, -0.5, 0.5)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
