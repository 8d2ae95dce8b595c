package core

// EnsureLen returns a slice of length n, reusing the capacity of buf when it
// is large enough. Reused contents are not cleared.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	clear(buf)
}

// CopyPadded copies src into dst and zero-fills whatever src does not cover.
// It returns the number of copied samples.
func CopyPadded(dst, src []float64) int {
	n := copy(dst, src)
	clear(dst[n:])
	return n
}
