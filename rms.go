package zmpt101b

import "math"

// rms estimates the RMS value of a sinusoidal signal from its extremes,
// rounded to the nearest integer. (vmax-vmin)/2 approximates the peak
// amplitude of a zero-mean sinusoid riding on a DC offset (the offset
// cancels in the difference), and dividing by √2 converts peak amplitude to
// RMS. The estimate only holds for waveforms that are roughly sinusoidal and
// observed over at least one full cycle.
//
// vmax < vmin yields a negative result. That is a garbage-input signal and
// is returned as-is, not clamped.
func rms(vmin, vmax float64) float64 {
	return math.Round(((vmax - vmin) / 2) / math.Sqrt2)
}
