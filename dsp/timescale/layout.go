package timescale

import (
	"math"

	"github.com/cwbudde/algo-timescale/dsp/core"
)

// Layout describes the bin and segment geometry derived from a configuration.
//
// Input positions advance by HalfWindow per bin, output positions by
// ScaledHalfWindow per segment. Segment k of the output replays bin k.
type Layout struct {
	InputLength      int
	WindowLength     int
	HalfWindow       int
	RampLength       int
	NumBins          int
	OutputLength     int
	ScaledHalfWindow int
}

func newLayout(inputLen, windowLength int, rampProportion, scaleFactor float64) Layout {
	half := windowLength / 2
	return Layout{
		InputLength:      inputLen,
		WindowLength:     windowLength,
		HalfWindow:       half,
		RampLength:       int(math.Floor(float64(windowLength) * rampProportion)),
		NumBins:          (inputLen + half - 1) / half,
		OutputLength:     core.CeilMul(inputLen, scaleFactor),
		ScaledHalfWindow: core.CeilMul(half, scaleFactor),
	}
}

// Segments returns the number of output segments.
func (l Layout) Segments() int {
	if l.ScaledHalfWindow <= 0 {
		return 0
	}
	return (l.OutputLength + l.ScaledHalfWindow - 1) / l.ScaledHalfWindow
}

// Segment returns the output range [start, end) replaying bin seg.
func (l Layout) Segment(seg int) (start, end int) {
	start = seg * l.ScaledHalfWindow
	end = min(start+l.ScaledHalfWindow, l.OutputLength)
	return start, end
}

// Blends reports whether output position p is crossfaded between bin p/H'-1
// and bin p/H'. That holds when p > RampLength, a segment boundary lies in
// (p-RampLength, p], and p is not inside the segment of the last bin.
func (l Layout) Blends(p int) bool {
	if p <= l.RampLength || p >= l.OutputLength {
		return false
	}
	seg := p / l.ScaledHalfWindow
	if seg+1 == l.NumBins {
		return false
	}
	return (p-l.RampLength)/l.ScaledHalfWindow != seg
}

// RampSpan returns the crossfaded output range [from, to) of segment seg.
// The range is empty (from == to) when the segment has no ramp. The ramp
// counter restarts at from, so position p is blended with weight
// (p-from)/RampLength.
func (l Layout) RampSpan(seg int) (from, to int) {
	start, end := l.Segment(seg)
	if seg+1 == l.NumBins {
		return start, start
	}
	from = max(start, l.RampLength+1)
	to = min(start+l.RampLength, end)
	if to <= from {
		return start, start
	}
	return from, to
}
