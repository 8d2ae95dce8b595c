package timescale

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-timescale/dsp/core"
)

var (
	ErrNoInput        = errors.New("timescale: input samples must not be empty")
	ErrWindowLength   = errors.New("timescale: invalid window length")
	ErrRampProportion = errors.New("timescale: ramp proportion must be in [0,1]")
	ErrScaleFactor    = errors.New("timescale: invalid scale factor")
)

func validateInput(samples []float64) error {
	if len(samples) == 0 {
		return ErrNoInput
	}
	return nil
}

func validateWindowLength(windowLength, inputLen int) error {
	if windowLength < 2 || windowLength%2 != 0 {
		return fmt.Errorf("%w: must be even and >= 2: %d", ErrWindowLength, windowLength)
	}
	if windowLength > inputLen {
		return fmt.Errorf("%w: %d exceeds input length %d", ErrWindowLength, windowLength, inputLen)
	}
	return nil
}

func validateRampProportion(r float64) error {
	if math.IsNaN(r) || r < 0 || r > 1 {
		return fmt.Errorf("%w: %f", ErrRampProportion, r)
	}
	return nil
}

func validateScaleFactor(f float64) error {
	if !core.IsFinite(f) || f <= 0 {
		return fmt.Errorf("%w: must be positive and finite: %f", ErrScaleFactor, f)
	}
	if f >= MaxScaleFactor {
		return fmt.Errorf("%w: must be below %.1f: %f", ErrScaleFactor, MaxScaleFactor, f)
	}
	return nil
}
