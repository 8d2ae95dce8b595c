package timescale

import (
	"context"

	"github.com/cwbudde/algo-timescale/dsp/core"
	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/sync/errgroup"
)

// synthesizer walks the output in ScaledHalfWindow-sized segments. Segment
// interiors are verbatim copies of their bin; ramps blend the overlap half of
// the previous bin into the current one.
type synthesizer struct {
	bins   *binMatrix
	layout Layout

	// fadeIn[j] = j/RampLength, fadeOut[j] = 1 - fadeIn[j].
	fadeIn  []float64
	fadeOut []float64
}

func newSynthesizer(bins *binMatrix, layout Layout) *synthesizer {
	n := min(layout.RampLength, layout.ScaledHalfWindow)
	s := &synthesizer{
		bins:    bins,
		layout:  layout,
		fadeIn:  make([]float64, n),
		fadeOut: make([]float64, n),
	}
	for j := range n {
		w := float64(j) / float64(layout.RampLength)
		s.fadeIn[j] = w
		s.fadeOut[j] = 1 - w
	}
	return s
}

// run renders every segment. With workers > 1, contiguous segment ranges
// are rendered concurrently; each range writes a disjoint part of out. run
// stops early and returns ctx.Err() once ctx is cancelled.
func (s *synthesizer) run(ctx context.Context, workers int) ([]float64, error) {
	out := make([]float64, s.layout.OutputLength)
	segs := s.layout.Segments()

	if workers <= 1 || segs < 2 {
		if err := s.renderRange(ctx, out, 0, segs); err != nil {
			return nil, err
		}
		return out, nil
	}

	workers = min(workers, segs)
	chunk := (segs + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for lo := 0; lo < segs; lo += chunk {
		hi := min(lo+chunk, segs)
		g.Go(func() error {
			return s.renderRange(gctx, out, lo, hi)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *synthesizer) renderRange(ctx context.Context, out []float64, lo, hi int) error {
	var scratch []float64
	for seg := lo; seg < hi; seg++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		start, end := s.layout.Segment(seg)
		scratch = s.render(out[start:end], seg, scratch)
	}
	return nil
}

// render writes segment seg into dst, which covers the segment's output
// range. scratch is reused for the overlap samples and returned, possibly
// grown.
func (s *synthesizer) render(dst []float64, seg int, scratch []float64) []float64 {
	l := s.layout
	s.bins.readInto(dst, seg, 0)

	from, to := l.RampSpan(seg)
	n := to - from
	if n <= 0 {
		return scratch
	}

	start, _ := l.Segment(seg)
	offset := from - start

	old := core.EnsureLen(scratch, n)
	s.bins.readInto(old, seg-1, offset+l.ScaledHalfWindow)

	ramp := dst[offset : offset+n]
	vecmath.MulBlockInPlace(ramp, s.fadeIn[:n])
	vecmath.MulBlockInPlace(old, s.fadeOut[:n])
	vecmath.AddBlockInPlace(ramp, old)
	return old
}
