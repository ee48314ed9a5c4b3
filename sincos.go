package bam

// Angle measures. One unit is 1/16384th of a full circle, so quadrant
// and index extraction reduce to bit masking.
const (
	Turn        = 16384
	HalfTurn    = Turn / 2
	QuarterTurn = Turn / 4

	// Amplitude is the peak magnitude of Sin and Cos.
	Amplitude = 32767
)

// Bit layout of an angle: interpolation fraction in the low byte, table
// index in the next four bits, quadrant in the two above.
const (
	interpWidth  = 8
	interpOffset = 0
	indexWidth   = 4
	indexOffset  = interpOffset + interpWidth

	interpSteps = 1 << interpWidth

	quadrantLowMask  = 0x1000 // set where the magnitude falls back toward zero
	quadrantHighMask = 0x2000 // set on the negative half of the circle
)

// bits extracts a width-wide field of v starting offset bits up.
func bits(v uint16, width, offset uint16) uint16 {
	return (v >> offset) & (1<<width - 1)
}

// Sin returns the sine of a binary angle, scaled to [-32767, 32767].
// Only the low 14 bits of angle are read, so any uint16 maps onto the
// circle and arithmetic past a full turn wraps naturally.
func Sin(angle uint16) int32 {
	interp := int32(bits(angle, interpWidth, interpOffset))
	index := bits(angle, indexWidth, indexOffset)

	rising := angle&quadrantLowMask == 0
	negative := angle&quadrantHighMask != 0

	// Falling quadrants read the table mirrored; one quadrant of
	// samples reconstructs the whole circle.
	if !rising {
		index = tableSegments - 1 - index
	}

	x1 := int32(sineTable[index])
	x2 := int32(sineTable[index+1])

	// Blend toward the next entry in a signed domain, so the
	// difference cannot underflow. Division truncates toward zero.
	approx := (x2 - x1) * interp / interpSteps

	var s int32
	if rising {
		s = x1 + approx
	} else {
		s = x2 - approx
	}
	if negative {
		s = -s
	}
	return s
}

// Cos returns the cosine of a binary angle, scaled to [-32767, 32767].
// It shifts by a quarter turn and reuses [Sin]; the shift may wrap the
// uint16, which folds back onto the circle since only the low 14 bits
// are read.
func Cos(angle uint16) int32 {
	return Sin(angle + QuarterTurn)
}

// SinCos returns both coordinates of the angle on the ±32767 circle.
func SinCos(angle uint16) (sin, cos int32) {
	return Sin(angle), Sin(angle + QuarterTurn)
}
