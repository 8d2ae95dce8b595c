// Package seam measures how smoothly a time-scaled signal passes through its
// crossfade regions.
package seam

import (
	"github.com/cwbudde/algo-timescale/dsp/timescale"
	"gonum.org/v1/gonum/floats"
)

// Boundary holds the sample steps entering and leaving one ramp region.
type Boundary struct {
	Segment   int
	From, To  int
	EntryStep float64 // |out[From] - out[From-1]|
	ExitStep  float64 // |out[To] - out[To-1]|, 0 when To is the end of out
}

// Report summarizes the steps at ramp edges against segment interiors.
type Report struct {
	Boundaries      []Boundary
	MaxBoundaryStep float64
	// MaxInteriorStep is the largest step between two adjacent, non-blended
	// samples of the same segment. Samples replayed from past the end of the
	// input (silent bin tails) are excluded.
	MaxInteriorStep float64
}

// Smooth reports whether no ramp edge steps further than the largest
// interior step.
func (r Report) Smooth() bool {
	return r.MaxBoundaryStep <= r.MaxInteriorStep
}

// Analyze inspects out, which must have been produced with layout.
func Analyze(out []float64, layout timescale.Layout) Report {
	var r Report
	n := min(len(out), layout.OutputLength)
	if n < 2 {
		return r
	}

	var edges, interior []float64
	for seg := range layout.Segments() {
		start, end := layout.Segment(seg)
		end = min(end, n)

		from, to := layout.RampSpan(seg)
		if to > from && from > 0 && from < n {
			b := Boundary{
				Segment:   seg,
				From:      from,
				To:        to,
				EntryStep: step(out, from),
			}
			if to < n {
				b.ExitStep = step(out, to)
			}
			r.Boundaries = append(r.Boundaries, b)
			edges = append(edges, b.EntryStep, b.ExitStep)
		}

		// Input index of the sample replayed at start+off is seg*H+off.
		srcEnd := start + layout.InputLength - seg*layout.HalfWindow
		for p := start + 1; p < min(end, srcEnd); p++ {
			if layout.Blends(p) || layout.Blends(p-1) {
				continue
			}
			interior = append(interior, step(out, p))
		}
	}

	if len(edges) > 0 {
		r.MaxBoundaryStep = floats.Max(edges)
	}
	if len(interior) > 0 {
		r.MaxInteriorStep = floats.Max(interior)
	}
	return r
}

func step(x []float64, p int) float64 {
	d := x[p] - x[p-1]
	if d < 0 {
		return -d
	}
	return d
}
