package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-timescale/dsp/core"
)

func TestSineLength(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	s, err := g.Sine(1000, 1, 64)
	if err != nil {
		t.Fatalf("Sine() error = %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
}

func TestSineRejectsInvalidArgs(t *testing.T) {
	g := NewGenerator()

	if _, err := g.Sine(440, 1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
	if _, err := g.Sine(30000, 1, 16); err == nil {
		t.Fatal("expected error above Nyquist")
	}
}

func TestSineRampMonotonic(t *testing.T) {
	g := NewGenerator()
	x, err := g.SineRamp(0.9, 8192)
	if err != nil {
		t.Fatalf("SineRamp() error = %v", err)
	}
	if x[0] <= 0 {
		t.Fatalf("x[0] = %v, want > 0", x[0])
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			t.Fatalf("not increasing at %d", i)
		}
	}
	if math.Abs(x[len(x)-1]-0.9) > 1e-12 {
		t.Fatalf("last = %v, want 0.9", x[len(x)-1])
	}
}

func TestChirpBounded(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(8000))
	x, err := g.Chirp(100, 1000, 0.5, 4000)
	if err != nil {
		t.Fatalf("Chirp() error = %v", err)
	}
	for i, v := range x {
		if math.Abs(v) > 0.5+1e-12 {
			t.Fatalf("x[%d] = %v exceeds amplitude", i, v)
		}
	}
	if _, err := g.Chirp(100, 5000, 1, 10); err == nil {
		t.Fatal("expected error above Nyquist")
	}
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	opts := []core.ProcessorOption{core.WithSampleRate(8000)}
	g1 := NewGeneratorWithOptions(opts, WithSeed(42))
	g2 := NewGeneratorWithOptions(opts, WithSeed(42))
	g3 := NewGeneratorWithOptions(opts, WithSeed(43))

	n1, err := g1.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	n2, err := g2.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
	}

	n3, err := g3.WhiteNoise(1, 16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	same := true
	for i := range n1 {
		same = same && n1[i] == n3[i]
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestGeneratorSampleRate(t *testing.T) {
	if got := NewGenerator().SampleRate(); got != 48000 {
		t.Fatalf("default SampleRate() = %v, want 48000", got)
	}
	if got := NewGeneratorWithOptions([]core.ProcessorOption{core.WithSampleRate(22050)}).SampleRate(); got != 22050 {
		t.Fatalf("SampleRate() = %v, want 22050", got)
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{0, 0}, 1)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if out[0] != 0 || out[1] != 0 {
		t.Fatalf("silence should stay silent: %v", out)
	}
	if _, err := Normalize(nil, 1); err == nil {
		t.Fatal("expected error for empty input")
	}
	if _, err := Normalize([]float64{1}, -1); err == nil {
		t.Fatal("expected error for negative peak")
	}
}
