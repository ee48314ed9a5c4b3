package bam

import (
	"math"
	"testing"
)

func TestSinQuadrantBoundaries(t *testing.T) {
	cases := []struct {
		angle uint16
		want  int32
	}{
		{0, 0},
		{4096, 32767},
		{8192, 0},
		{12288, -32767},
	}

	for _, c := range cases {
		if got := Sin(c.angle); got != c.want {
			t.Errorf("Sin(%d): expected %d, got %d", c.angle, c.want, got)
		}
	}
}

func TestCosQuadrantBoundaries(t *testing.T) {
	cases := []struct {
		angle uint16
		want  int32
	}{
		{0, 32767},
		{4096, 0},
		{8192, -32767},
		{12288, 0},
	}

	for _, c := range cases {
		if got := Cos(c.angle); got != c.want {
			t.Errorf("Cos(%d): expected %d, got %d", c.angle, c.want, got)
		}
	}
}

func TestSinKnownValues(t *testing.T) {
	cases := []struct {
		angle uint16
		want  int32
	}{
		{1, 12},         // first interpolation step
		{2048, 23170},   // 45 degrees, exact table sample 0x5a82
		{4095, 32766},   // last step before the peak
		{6144, 23170},   // 135 degrees mirrors 45
		{8191, 13},      // last step before the zero crossing
		{10240, -23170}, // 225 degrees
		{16383, -13},    // last step before wrap
	}

	for _, c := range cases {
		if got := Sin(c.angle); got != c.want {
			t.Errorf("Sin(%d): expected %d, got %d", c.angle, c.want, got)
		}
	}

	if got := Cos(2048); got != 23170 {
		t.Errorf("Cos(2048): expected 23170, got %d", got)
	}
}

func TestSinMatchesTableSamples(t *testing.T) {
	table := Table()

	for k := 0; k < tableLen; k++ {
		angle := uint16(k * 256)
		if got := Sin(angle); got != int32(table[k]) {
			t.Errorf("Sin(%d): expected table entry %d (%d), got %d", angle, k, table[k], got)
		}
	}
}

func TestSinLastSegment(t *testing.T) {
	prev := Sin(3840)
	if prev != int32(sineTable[15]) {
		t.Errorf("expected segment start %d, got %d", sineTable[15], prev)
	}

	for a := uint16(3841); a < 4096; a++ {
		s := Sin(a)
		if s < prev {
			t.Errorf("Sin(%d) = %d decreased from %d", a, s, prev)
		}
		if s > 32766 {
			t.Errorf("Sin(%d) = %d reached the peak before angle 4096", a, s)
		}
		prev = s
	}
}

func TestSinHighBitsIgnored(t *testing.T) {
	for i := 0; i < 65536; i++ {
		a := uint16(i)
		if Sin(a) != Sin(a&0x3fff) {
			t.Errorf("Sin(%d) differs from Sin(%d)", a, a&0x3fff)
		}
	}
}

func TestSinCosBounds(t *testing.T) {
	for i := 0; i < 65536; i++ {
		a := uint16(i)
		if s := Sin(a); s < -Amplitude || s > Amplitude {
			t.Errorf("Sin(%d) = %d out of range", a, s)
		}
		if c := Cos(a); c < -Amplitude || c > Amplitude {
			t.Errorf("Cos(%d) = %d out of range", a, c)
		}
	}
}

func TestSinSignPerQuadrant(t *testing.T) {
	for a := 0; a < Turn; a++ {
		s := Sin(uint16(a))
		if a < HalfTurn && s < 0 {
			t.Errorf("Sin(%d) = %d negative on the front half", a, s)
		}
		if a > HalfTurn && s > 0 {
			t.Errorf("Sin(%d) = %d positive on the back half", a, s)
		}
	}
}

func TestSinMonotonicPerQuadrant(t *testing.T) {
	for a := 0; a < QuarterTurn; a++ {
		if Sin(uint16(a+1)) < Sin(uint16(a)) {
			t.Errorf("Sin decreased at %d on the rising quadrant", a)
		}
	}

	for a := QuarterTurn; a < HalfTurn; a++ {
		if Sin(uint16(a+1)) > Sin(uint16(a)) {
			t.Errorf("Sin increased at %d on the falling quadrant", a)
		}
	}
}

func TestSinOddSymmetry(t *testing.T) {
	// Truncation lands the two halves within two counts of exact
	// odd symmetry.
	for a := 0; a < Turn; a++ {
		sum := Sin(uint16(a)) + Sin(uint16(Turn-a))
		if sum < -2 || sum > 2 {
			t.Errorf("Sin(%d) + Sin(%d) = %d breaks odd symmetry", a, Turn-a, sum)
		}
	}
}

func TestCosShiftFormulations(t *testing.T) {
	for a := 0; a < Turn; a++ {
		got := Cos(uint16(a))

		modular := Sin(uint16((a + QuarterTurn) % Turn))
		if got != modular {
			t.Errorf("Cos(%d) = %d, modular shift gives %d", a, got, modular)
		}

		// Branch form: wrap by explicit subtraction near the top of
		// the range instead of relying on integer wraparound.
		var shifted uint16
		if a > Turn-QuarterTurn {
			shifted = uint16(a - (Turn - QuarterTurn))
		} else {
			shifted = uint16(a + QuarterTurn)
		}
		if branch := Sin(shifted); got != branch {
			t.Errorf("Cos(%d) = %d, branch shift gives %d", a, got, branch)
		}
	}
}

func TestSinCosAgrees(t *testing.T) {
	for a := 0; a < Turn; a++ {
		s, c := SinCos(uint16(a))
		if s != Sin(uint16(a)) || c != Cos(uint16(a)) {
			t.Errorf("SinCos(%d) = (%d, %d), want (%d, %d)", a, s, c, Sin(uint16(a)), Cos(uint16(a)))
		}
	}
}

func TestSinTracksReference(t *testing.T) {
	for a := 0; a < Turn; a++ {
		ref := int32(math.Round(Amplitude * math.Sin(2*math.Pi*float64(a)/Turn)))
		diff := Sin(uint16(a)) - ref
		if diff < -64 || diff > 64 {
			t.Errorf("Sin(%d) off by %d from the float reference", a, diff)
		}
	}
}

func TestBits(t *testing.T) {
	cases := []struct {
		v             uint16
		width, offset uint16
		want          uint16
	}{
		{0xabcd, 4, 8, 0xb},
		{0xabcd, 8, 0, 0xcd},
		{0xffff, 4, 12, 0xf},
		{0x1234, 14, 0, 0x1234},
		{0x0100, 4, 8, 0x1},
	}

	for _, c := range cases {
		if got := bits(c.v, c.width, c.offset); got != c.want {
			t.Errorf("bits(%#04x, %d, %d): expected %#x, got %#x", c.v, c.width, c.offset, c.want, got)
		}
	}
}
