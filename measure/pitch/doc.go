// Package pitch estimates the dominant frequency of a signal and compares
// it before and after processing.
//
// The estimate uses a Hann-windowed, zero-padded FFT and parabolic
// interpolation of the log magnitude around the strongest bin:
//
//	est, _ := pitch.Dominant(x, 48000)
//	cents, _ := pitch.Drift(input, stretched, 48000)
//
// It is meant for verifying time-scale processors, where a pitch-preserving
// stretch keeps the drift near zero while plain resampling by a factor r
// moves it by -1200*log2(r) cents.
package pitch
