package accuracy_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/bam"
	"github.com/san-kum/bam/internal/accuracy"
)

var _ = Describe("Compare", func() {
	var rep accuracy.Report

	BeforeEach(func() {
		rep = accuracy.Compare(bam.Turn)
	})

	It("keeps the worst sine error inside the interpolation bound", func() {
		Expect(rep.Sin.MaxAbs).To(BeNumerically(">", 0))
		Expect(rep.Sin.MaxAbs).To(BeNumerically("<", 64))
	})

	It("keeps cosine as tight as sine", func() {
		Expect(rep.Cos.MaxAbs).To(BeNumerically("<", 64))
		Expect(rep.Cos.MaxAbs).To(BeNumerically("~", rep.Sin.MaxAbs, 1))
	})

	It("orders the summary statistics", func() {
		Expect(rep.Sin.Mean).To(BeNumerically(">", 0))
		Expect(rep.Sin.Mean).To(BeNumerically("<=", rep.Sin.RMS))
		Expect(rep.Sin.RMS).To(BeNumerically("<=", float64(rep.Sin.MaxAbs)))
		Expect(rep.Sin.P99).To(BeNumerically(">", 0))
		Expect(rep.Sin.P99).To(BeNumerically("<=", float64(rep.Sin.MaxAbs)))
	})

	It("sees the same worst case in every quadrant", func() {
		for q := 0; q < 4; q++ {
			Expect(rep.QuadrantMax[q]).To(BeNumerically(">", 0))
			Expect(rep.QuadrantMax[q]).To(BeNumerically("<", 64))
		}
		Expect(rep.QuadrantMax[2]).To(BeNumerically("~", rep.QuadrantMax[0], 1))
		Expect(rep.QuadrantMax[3]).To(BeNumerically("~", rep.QuadrantMax[1], 1))
		Expect(rep.QuadrantMax[1]).To(BeNumerically("~", rep.QuadrantMax[0], 3))
	})

	It("never worsens under a sparser sweep", func() {
		sparse := accuracy.Compare(1024)
		Expect(sparse.Samples).To(Equal(1024))
		Expect(sparse.Sin.MaxAbs).To(BeNumerically("<=", rep.Sin.MaxAbs))
	})
})

var _ = Describe("Spectrum", func() {
	It("keeps the fundamental dominant", func() {
		mags := accuracy.Spectrum(4096)

		peak := 0
		for i, m := range mags {
			if m > mags[peak] {
				peak = i
			}
		}

		Expect(peak).To(Equal(1))
		Expect(mags[1]).To(BeNumerically("==", 1))
	})

	It("keeps harmonic distortion far below a percent", func() {
		thd := accuracy.THD(4096)

		Expect(thd).To(BeNumerically(">", 0))
		Expect(thd).To(BeNumerically("<", 0.01))
	})
})
