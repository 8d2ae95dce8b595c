package timescale

import (
	"github.com/cwbudde/algo-timescale/dsp/core"
	"gonum.org/v1/gonum/mat"
)

// binMatrix stores one overlapping analysis window per row.
//
// Row k holds input samples [k*H, k*H+H) in columns [0, H) and the samples
// of bin k+1's first half, [(k+1)*H, (k+1)*H+H), in columns [H, 2H). Cells
// past the end of the input stay zero.
type binMatrix struct {
	dense *mat.Dense
	rows  int
	width int
}

// buildBins distributes samples over numBins rows of 2*half columns. Every
// sample lands in the current half of bin i/half and, for i >= half, in the
// overlap half of the preceding bin. Since both halves are contiguous in the
// input, each row is a single copy.
func buildBins(samples []float64, half, numBins int) *binMatrix {
	width := 2 * half
	m := &binMatrix{
		dense: mat.NewDense(numBins, width, nil),
		rows:  numBins,
		width: width,
	}

	for k := range numBins {
		start := k * half
		end := min(start+width, len(samples))
		copy(m.dense.RawRowView(k), samples[start:end])
	}

	return m
}

// at returns the cell value, or 0 outside the matrix.
func (m *binMatrix) at(row, col int) float64 {
	if row < 0 || row >= m.rows || col < 0 || col >= m.width {
		return 0
	}
	return m.dense.At(row, col)
}

// readInto fills dst with row cells starting at col. Cells outside the
// matrix read as silence.
func (m *binMatrix) readInto(dst []float64, row, col int) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.width {
		core.Zero(dst)
		return
	}
	core.CopyPadded(dst, m.dense.RawRowView(row)[col:])
}
