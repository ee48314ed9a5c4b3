// Package audio plays the quarter-wave table as sound: a direct
// digital synthesis tone whose oscillator is the integer sine engine.
package audio

import (
	"sync"
	"time"

	"github.com/gordonklaus/portaudio"

	"github.com/san-kum/bam"
)

const (
	SampleRate = 44100
	BufferSize = 1024

	// attack/release length in samples, long enough to kill clicks
	rampSamples = 2048
)

// Tone is a DDS oscillator: a 32-bit phase accumulator whose top 14
// bits address the circle, so frequency resolution is SampleRate/2^32
// and the waveform is exactly what bam.Sin produces.
type Tone struct {
	stream *portaudio.Stream

	phase     uint32
	phaseStep uint32
	volume    float32
	env       float32

	mu       sync.Mutex
	released bool
}

func NewTone(freq, volume float64) *Tone {
	return &Tone{
		phaseStep: uint32(freq / SampleRate * (1 << 32)),
		volume:    float32(volume),
	}
}

func (t *Tone) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, t.process)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}

	t.stream = stream
	return nil
}

// Stop releases the envelope, lets the tail drain, and tears the
// stream down.
func (t *Tone) Stop() {
	if t.stream == nil {
		return
	}

	t.mu.Lock()
	t.released = true
	t.mu.Unlock()

	time.Sleep((rampSamples + 2*BufferSize) * time.Second / SampleRate)

	t.stream.Stop()
	t.stream.Close()
	portaudio.Terminate()
	t.stream = nil
}

func (t *Tone) process(out [][]float32) {
	t.mu.Lock()
	released := t.released
	t.mu.Unlock()

	target := float32(1)
	if released {
		target = 0
	}

	for i := range out[0] {
		if t.env < target {
			t.env += 1.0 / rampSamples
			if t.env > target {
				t.env = target
			}
		} else if t.env > target {
			t.env -= 1.0 / rampSamples
			if t.env < target {
				t.env = target
			}
		}

		angle := uint16(t.phase >> 18)
		s := float32(bam.Sin(angle)) / bam.Amplitude * t.env * t.volume

		out[0][i] = s
		out[1][i] = s

		t.phase += t.phaseStep
	}
}
