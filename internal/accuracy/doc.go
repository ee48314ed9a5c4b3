// Package accuracy measures the integer engine against the float
// reference.
//
// Two views of the same question, "how wrong is the table walk":
//
//   - [Compare]: pointwise absolute error of Sin and Cos over an even
//     sweep of the circle, summarized as max, mean, RMS, and P99
//     statistics with a per-quadrant breakdown
//   - [Spectrum] and [THD]: the harmonic content the approximation
//     adds to a pure tone, from an FFT of one synthesized cycle
//
// # Example
//
//	rep := accuracy.Compare(bam.Turn)
//	fmt.Printf("max |err| %d at angle %d\n", rep.Sin.MaxAbs, rep.Sin.MaxAbsAngle)
//	fmt.Printf("thd %.4f%%\n", 100*accuracy.THD(4096))
//
// The reference is 32767·sin(2πa/16384) rounded to nearest, so every
// reported error is in integer counts of the output scale.
package accuracy
