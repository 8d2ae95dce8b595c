// Package timescale provides constant-pitch time-scale modification using
// time-domain overlap-add.
//
// The input is split into 50%-overlapping bins of windowLength samples. Each
// bin is replayed with an output stride of ceil(windowLength/2 * scale)
// samples instead of windowLength/2, which stretches (scale > 1) or
// compresses (scale < 1) the duration while the bin content, and therefore
// the local pitch, is left untouched. At every bin boundary except the last
// one the outgoing and incoming bins are linearly crossfaded over a ramp of
// floor(windowLength * rampProportion) samples.
//
// No spectral processing is involved. A Stretcher owns copies of its input
// and all derived buffers, so independent Stretchers never share state.
package timescale
