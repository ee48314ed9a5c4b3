package export

import (
	"math"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/san-kum/bam"
)

// Sample is one CSV row comparing the integer engine against the
// rounded float reference at a single angle.
type Sample struct {
	Angle   uint16  `csv:"angle"`
	Degrees float64 `csv:"degrees"`
	Sin     int32   `csv:"sin"`
	Cos     int32   `csv:"cos"`
	RefSin  int32   `csv:"ref_sin"`
	RefCos  int32   `csv:"ref_cos"`
	ErrSin  int32   `csv:"err_sin"`
	ErrCos  int32   `csv:"err_cos"`
}

// Samples evaluates n evenly spaced angles around the circle.
func Samples(n int) []Sample {
	if n <= 0 {
		n = bam.Turn
	}

	samples := make([]Sample, n)
	for i := range samples {
		angle := uint16(i * bam.Turn / n)
		s, c := bam.SinCos(angle)
		rs := int32(math.Round(refSin(angle)))
		rc := int32(math.Round(refCos(angle)))

		samples[i] = Sample{
			Angle:   angle,
			Degrees: 360 * float64(angle) / bam.Turn,
			Sin:     s,
			Cos:     c,
			RefSin:  rs,
			RefCos:  rc,
			ErrSin:  s - rs,
			ErrCos:  c - rc,
		}
	}

	return samples
}

// WriteCSV writes samples to path as headed CSV.
func WriteCSV(path string, samples []Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gocsv.MarshalFile(&samples, f)
}
