package bam

// Layout of the quarter-wave table.
const (
	tableSegments = 16                // interpolation segments per quadrant
	tableLen      = tableSegments + 1 // segment starts plus the peak sentinel
)

// Quarter-wave sine samples at multiples of 256 angle units, scaled to
// a 32767 peak. The 17th entry duplicates the peak so that index+1 is
// addressable even in the last segment.
var sineTable = [tableLen]uint16{
	0x0000, 0x0c8c, 0x18f9, 0x2528,
	0x30fb, 0x3c56, 0x471c, 0x5133,
	0x5a82, 0x62f1, 0x6a6d, 0x70e2,
	0x7641, 0x7a7c, 0x7d89, 0x7f61,
	0x7fff,
}

// Table returns a copy of the quarter-wave sample table.
func Table() [tableLen]uint16 {
	return sineTable
}
