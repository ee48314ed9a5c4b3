package accuracy

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/bam"
)

// Stats summarizes the absolute error of one function against the
// rounded float reference, in counts of the 32767 output scale.
type Stats struct {
	MaxAbs      int32
	MaxAbsAngle uint16
	Mean        float64
	RMS         float64
	P99         float64
}

// Report carries the error statistics of one sweep around the circle.
type Report struct {
	Samples int
	Sin     Stats
	Cos     Stats

	// QuadrantMax is the worst sine error per quadrant.
	QuadrantMax [4]int32
}

// Compare evaluates Sin and Cos at samples evenly spaced angles and
// measures both against the float reference. Non-positive samples
// means the full 16384-angle sweep.
func Compare(samples int) Report {
	if samples <= 0 {
		samples = bam.Turn
	}

	rep := Report{Samples: samples}
	sinErrs := make([]float64, 0, samples)
	cosErrs := make([]float64, 0, samples)

	for i := 0; i < samples; i++ {
		angle := uint16(i * bam.Turn / samples)
		theta := 2 * math.Pi * float64(angle) / bam.Turn

		refSin := int32(math.Round(bam.Amplitude * math.Sin(theta)))
		refCos := int32(math.Round(bam.Amplitude * math.Cos(theta)))

		dSin := absDiff(bam.Sin(angle), refSin)
		dCos := absDiff(bam.Cos(angle), refCos)

		if dSin > rep.Sin.MaxAbs {
			rep.Sin.MaxAbs = dSin
			rep.Sin.MaxAbsAngle = angle
		}
		if dCos > rep.Cos.MaxAbs {
			rep.Cos.MaxAbs = dCos
			rep.Cos.MaxAbsAngle = angle
		}

		if q := angle >> 12 & 3; dSin > rep.QuadrantMax[q] {
			rep.QuadrantMax[q] = dSin
		}

		sinErrs = append(sinErrs, float64(dSin))
		cosErrs = append(cosErrs, float64(dCos))
	}

	rep.Sin.summarize(sinErrs)
	rep.Cos.summarize(cosErrs)
	return rep
}

func (s *Stats) summarize(errs []float64) {
	s.Mean = stat.Mean(errs, nil)

	sq := make([]float64, len(errs))
	for i, e := range errs {
		sq[i] = e * e
	}
	s.RMS = math.Sqrt(stat.Mean(sq, nil))

	sort.Float64s(errs)
	s.P99 = stat.Quantile(0.99, stat.Empirical, errs, nil)
}

func absDiff(a, b int32) int32 {
	if a > b {
		return a - b
	}
	return b - a
}
