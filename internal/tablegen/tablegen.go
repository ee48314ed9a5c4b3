// Package tablegen regenerates, packs, and checks the quarter-wave
// sine table shipped in the root package.
package tablegen

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/san-kum/bam"
	"github.com/san-kum/bam/internal/accuracy"
)

// Entries is the table length: sixteen segment starts plus the peak.
const Entries = 17

// ArtifactSize is the packed length, two big-endian bytes per entry.
const ArtifactSize = 2 * Entries

// Artifact contract violations.
var (
	// ErrArtifactSize indicates packed data of the wrong length.
	ErrArtifactSize = errors.New("tablegen: artifact is not 34 bytes")

	// ErrNotMonotonic indicates a table whose entries decrease.
	ErrNotMonotonic = errors.New("tablegen: table entries decrease")

	// ErrEndpoints indicates a table not spanning 0 to the peak.
	ErrEndpoints = errors.New("tablegen: table endpoints are not 0 and 32767")
)

// Generate recomputes the table from the float sine at every 256-unit
// sample point, scaled to a 32767 peak and rounded to nearest. The
// result reproduces the runtime table bit for bit.
func Generate() [Entries]uint16 {
	var table [Entries]uint16

	for k := range table {
		theta := 2 * math.Pi * float64(k*256) / bam.Turn
		table[k] = uint16(math.Round(bam.Amplitude * math.Sin(theta)))
	}

	return table
}

// Pack serializes a table as big-endian 16-bit values.
func Pack(table [Entries]uint16) []byte {
	buf := make([]byte, ArtifactSize)

	for i, v := range table {
		binary.BigEndian.PutUint16(buf[2*i:], v)
	}

	return buf
}

// Unpack parses a packed artifact.
func Unpack(data []byte) ([Entries]uint16, error) {
	var table [Entries]uint16

	if len(data) != ArtifactSize {
		return table, fmt.Errorf("%w: got %d bytes", ErrArtifactSize, len(data))
	}

	for i := range table {
		table[i] = binary.BigEndian.Uint16(data[2*i:])
	}

	return table, nil
}

// Verify enforces the artifact contract: monotonically non-decreasing
// entries running from 0 to the 32767 peak.
func Verify(table [Entries]uint16) error {
	if table[0] != 0 || table[Entries-1] != bam.Amplitude {
		return fmt.Errorf("%w: first %d, last %d", ErrEndpoints, table[0], table[Entries-1])
	}

	for i := 1; i < Entries; i++ {
		if table[i] < table[i-1] {
			return fmt.Errorf("%w: entry %d (%d) below entry %d (%d)", ErrNotMonotonic, i, table[i], i-1, table[i-1])
		}
	}

	return nil
}

// Metadata is the sidecar written next to a generated artifact.
type Metadata struct {
	GeneratedAt time.Time `json:"generated_at"`
	Entries     int       `json:"entries"`
	PeakValue   uint16    `json:"peak_value"`
	MaxAbsError int32     `json:"max_abs_error"`
	ErrorAngle  uint16    `json:"error_angle"`
	RMSError    float64   `json:"rms_error"`
}

// WriteDir writes the packed artifact plus a metadata sidecar into
// dir, creating the directory if needed. The metadata records the
// accuracy of the runtime engine the artifact accompanies.
func WriteDir(dir string, table [Entries]uint16) error {
	if err := Verify(table); err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(dir, "sine16.bin"), Pack(table), 0644); err != nil {
		return err
	}

	rep := accuracy.Compare(bam.Turn)
	meta := Metadata{
		GeneratedAt: time.Now(),
		Entries:     Entries,
		PeakValue:   table[Entries-1],
		MaxAbsError: rep.Sin.MaxAbs,
		ErrorAngle:  rep.Sin.MaxAbsAngle,
		RMSError:    rep.Sin.RMS,
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// ReadArtifact loads and parses a packed artifact file.
func ReadArtifact(path string) ([Entries]uint16, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return [Entries]uint16{}, err
	}

	return Unpack(data)
}

// GoLiteral renders a table as Go source for pasting into the runtime
// package.
func GoLiteral(table [Entries]uint16) string {
	s := "var sineTable = [tableLen]uint16{\n"

	for i, v := range table {
		if i%4 == 0 {
			s += "\t"
		}
		s += fmt.Sprintf("%#06x,", v)
		if i%4 == 3 || i == Entries-1 {
			s += "\n"
		} else {
			s += " "
		}
	}

	return s + "}\n"
}
