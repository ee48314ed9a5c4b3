package accuracy

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/bam"
)

// Spectrum returns the one-sided magnitude spectrum of a single Sin
// cycle sampled at n evenly spaced angles, normalized so the
// fundamental (bin 1) is 1. n should divide 16384; powers of two take
// the fast transform path.
func Spectrum(n int) []float64 {
	samples := make([]float64, n)
	for i := range samples {
		angle := uint16(i * bam.Turn / n)
		samples[i] = float64(bam.Sin(angle)) / bam.Amplitude
	}

	coeffs := fft.FFTReal(samples)

	mags := make([]float64, n/2)
	for i := range mags {
		mags[i] = cmplx.Abs(coeffs[i])
	}

	if fund := mags[1]; fund > 0 {
		for i := range mags {
			mags[i] /= fund
		}
	}

	return mags
}

// THD is the total harmonic distortion the table walk adds to a pure
// tone: the root of the summed harmonic power relative to the
// fundamental.
func THD(n int) float64 {
	mags := Spectrum(n)

	var harm float64
	for _, m := range mags[2:] {
		harm += m * m
	}

	return math.Sqrt(harm)
}
