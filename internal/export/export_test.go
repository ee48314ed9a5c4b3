package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWaveSVG(t *testing.T) {
	svg := WaveSVG(960, 480, 256)

	if !strings.Contains(svg, `width="960" height="480"`) {
		t.Error("missing requested dimensions")
	}
	if strings.Count(svg, "<path") != 2 {
		t.Errorf("expected 2 traces, got %d", strings.Count(svg, "<path"))
	}
	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing xml header")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("unterminated svg")
	}
}

func TestPhasorSVG(t *testing.T) {
	svg := PhasorSVG(480, 128)

	// one reference ring plus one dot per step
	if got := strings.Count(svg, "<circle"); got != 129 {
		t.Errorf("expected 129 circles, got %d", got)
	}
}

func TestSamples(t *testing.T) {
	samples := Samples(256)

	if len(samples) != 256 {
		t.Fatalf("expected 256 samples, got %d", len(samples))
	}

	first := samples[0]
	if first.Angle != 0 || first.Sin != 0 || first.Cos != 32767 {
		t.Errorf("unexpected first sample: %+v", first)
	}
	if first.ErrSin != 0 || first.ErrCos != 0 {
		t.Errorf("expected zero error at angle 0, got %+v", first)
	}

	quarter := samples[64]
	if quarter.Angle != 4096 || quarter.Sin != 32767 {
		t.Errorf("unexpected quarter-turn sample: %+v", quarter)
	}
	if quarter.Degrees != 90 {
		t.Errorf("expected 90 degrees, got %f", quarter.Degrees)
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wave.csv")

	if err := WriteCSV(path, Samples(16)); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 17 {
		t.Fatalf("expected header plus 16 rows, got %d lines", len(lines))
	}
	if lines[0] != "angle,degrees,sin,cos,ref_sin,ref_cos,err_sin,err_cos" {
		t.Errorf("unexpected header: %s", lines[0])
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"sin", "cos", "ref-sin", "ref-cos", "err-sin", "err-cos"} {
		tr, err := r.Get(name)
		if err != nil {
			t.Fatalf("trace %s: %v", name, err)
		}
		if tr == nil {
			t.Fatalf("trace %s is nil", name)
		}
	}

	if _, err := r.Get("tan"); err == nil {
		t.Error("expected error for unknown trace")
	}

	tr, _ := r.Get("sin")
	if got := tr(4096); got != 32767 {
		t.Errorf("sin trace at quarter turn: expected 32767, got %f", got)
	}

	errTr, _ := r.Get("err-sin")
	if got := errTr(2048); got != 0 {
		t.Errorf("expected zero error at exact table sample, got %f", got)
	}
}
