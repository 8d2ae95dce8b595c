package timescale

import (
	"context"

	"github.com/cwbudde/algo-timescale/dsp/core"
)

const (
	// DefaultWindowLength is the bin length used by NewDefault.
	DefaultWindowLength = 4096
	// DefaultRampProportion is the crossfade length relative to the window.
	DefaultRampProportion = 0.25
	// MaxScaleFactor is the exclusive upper bound for the scale factor. It is
	// an empirically safe range for the window/ramp geometry.
	MaxScaleFactor = 1.5
)

// Stretcher is a single time-scale processing session.
//
// The input is copied at construction. Each Synthesize call rebuilds the bin
// matrix and the output from scratch, so repeated calls are deterministic.
// A Stretcher must not be mutated concurrently.
type Stretcher struct {
	samples        []float64
	rampProportion float64
	scaleFactor    float64
	cfg            core.ProcessorConfig
	layout         Layout
}

// Configure validates the parameters and returns a new session.
//
// windowLength must be even, at least 2 and no longer than the input.
// rampProportion must lie in [0,1] and scaleFactor in (0, MaxScaleFactor).
// Options: core.WithWorkers enables segment-parallel synthesis.
func Configure(samples []float64, windowLength int, rampProportion, scaleFactor float64,
	opts ...core.ProcessorOption,
) (*Stretcher, error) {
	if err := validateInput(samples); err != nil {
		return nil, err
	}
	if err := validateWindowLength(windowLength, len(samples)); err != nil {
		return nil, err
	}
	if err := validateRampProportion(rampProportion); err != nil {
		return nil, err
	}
	if err := validateScaleFactor(scaleFactor); err != nil {
		return nil, err
	}

	s := &Stretcher{
		samples:        append([]float64(nil), samples...),
		rampProportion: rampProportion,
		scaleFactor:    scaleFactor,
		cfg:            core.ApplyProcessorOptions(opts...),
	}
	s.layout = newLayout(len(s.samples), windowLength, rampProportion, scaleFactor)
	return s, nil
}

// NewDefault configures a session with DefaultWindowLength and
// DefaultRampProportion.
func NewDefault(samples []float64, scaleFactor float64, opts ...core.ProcessorOption) (*Stretcher, error) {
	return Configure(samples, DefaultWindowLength, DefaultRampProportion, scaleFactor, opts...)
}

// Stretch is a one-shot helper that configures a session and synthesizes it.
func Stretch(samples []float64, windowLength int, rampProportion, scaleFactor float64,
	opts ...core.ProcessorOption,
) ([]float64, error) {
	s, err := Configure(samples, windowLength, rampProportion, scaleFactor, opts...)
	if err != nil {
		return nil, err
	}
	return s.Synthesize(), nil
}

// ScaleFactor returns the output/input duration ratio.
func (s *Stretcher) ScaleFactor() float64 { return s.scaleFactor }

// WindowLength returns the bin length in samples.
func (s *Stretcher) WindowLength() int { return s.layout.WindowLength }

// RampProportion returns the crossfade length relative to the window.
func (s *Stretcher) RampProportion() float64 { return s.rampProportion }

// Len returns the number of samples Synthesize will produce.
func (s *Stretcher) Len() int { return s.layout.OutputLength }

// Layout returns the derived bin and segment geometry.
func (s *Stretcher) Layout() Layout { return s.layout }

// SetScaleFactor updates the scale factor and the derived output length.
// On error the session is left unchanged.
func (s *Stretcher) SetScaleFactor(scaleFactor float64) error {
	if err := validateScaleFactor(scaleFactor); err != nil {
		return err
	}
	s.scaleFactor = scaleFactor
	s.layout = newLayout(len(s.samples), s.layout.WindowLength, s.rampProportion, scaleFactor)
	return nil
}

// Synthesize builds the bins and returns a new output buffer of Len samples.
func (s *Stretcher) Synthesize() []float64 {
	out, err := s.SynthesizeContext(context.Background())
	if err != nil {
		// context.Background is never cancelled.
		panic(err)
	}
	return out
}

// SynthesizeContext is Synthesize with cancellation. Segments are checked
// against ctx before they are rendered; on cancellation it returns
// ctx.Err() and no output.
func (s *Stretcher) SynthesizeContext(ctx context.Context) ([]float64, error) {
	bins := buildBins(s.samples, s.layout.HalfWindow, s.layout.NumBins)
	return newSynthesizer(bins, s.layout).run(ctx, s.cfg.Workers)
}

// Reconstruct rebuilds the input from the current half of every bin. It
// returns a copy equal to the configured input and is independent of the
// scale factor.
func (s *Stretcher) Reconstruct() []float64 {
	half := s.layout.HalfWindow
	bins := buildBins(s.samples, half, s.layout.NumBins)

	out := make([]float64, len(s.samples))
	for i := range out {
		out[i] = bins.at(i/half, i%half)
	}
	return out
}
