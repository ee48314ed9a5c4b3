// Package bam computes integer sine and cosine on a binary-angle circle.
//
// Angles are unsigned 16-bit values measured in 1/16384ths of a full
// turn, so a quadrant is 4096 units and bit masks replace division by
// 90 or 360. Results are integers scaled to [-32767, 32767], produced
// without any floating-point arithmetic: two lookups into a 17-entry
// quarter-wave table, one linear blend, a sign flip.
//
//   - [Sin]: sine of a binary angle
//   - [Cos]: cosine via the quarter-turn shift identity
//   - [SinCos]: both at once
//   - [Table]: the quarter-wave sample table
//
// # Angle Encoding
//
// The low 14 bits of an angle select the point on the circle; bits 14
// and 15 are ignored, so angle arithmetic may wrap freely:
//
//	bits 12-13  quadrant
//	bits  8-11  table index within the quadrant
//	bits  0-7   interpolation fraction between adjacent entries
//
// # Example
//
//	s, c := bam.SinCos(a)
//	px := cx + int(c)*r/bam.Amplitude
//	py := cy - int(s)*r/bam.Amplitude
//
// # Accuracy And Concurrency
//
// Linear interpolation across 1/64-turn segments keeps the absolute
// error within a few dozen counts of the 32767 scale, and angles at
// exact table samples (multiples of 256 units) are returned with no
// error at all. The table is constant data initialized at load time;
// unlimited goroutines may call every function concurrently.
package bam
