package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/bam"
)

// WaveSVG renders one full cycle of Sin and Cos as polylines with a
// zero axis, sampled at the given count around the circle.
func WaveSVG(width, height, samples int) string {
	if samples < 2 {
		samples = 2
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	// Zero axis
	midY := float64(height) / 2
	sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#333333" stroke-width="1"/>
`, midY, width, midY))

	writeTrace(&sb, "#00ff00", width, height, samples, bam.Sin)
	writeTrace(&sb, "#00ccff", width, height, samples, bam.Cos)

	sb.WriteString("</svg>")
	return sb.String()
}

func writeTrace(sb *strings.Builder, stroke string, width, height, samples int, fn func(uint16) int32) {
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke))

	// Leave a small margin so the peaks stay inside the viewport
	amp := float64(height) * 0.45
	midY := float64(height) / 2

	for i := 0; i <= samples; i++ {
		angle := uint16(i % samples * bam.Turn / samples)
		x := float64(i) / float64(samples) * float64(width)
		y := midY - float64(fn(angle))/bam.Amplitude*amp

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString("\"/>\n")
}

// PhasorSVG renders the circle traced by SinCos: a reference ring plus
// one dot per step, showing how evenly the integer engine walks the
// unit circle.
func PhasorSVG(size, steps int) string {
	if steps < 4 {
		steps = 4
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, size, size, size, size))

	c := float64(size) / 2
	r := float64(size) * 0.45

	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="#333333" stroke-width="1"/>
<g fill="#00ff00">
`, c, c, r))

	for i := 0; i < steps; i++ {
		angle := uint16(i * bam.Turn / steps)
		s, cos := bam.SinCos(angle)
		x := c + float64(cos)/bam.Amplitude*r
		y := c - float64(s)/bam.Amplitude*r
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="1.5"/>
`, x, y))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
