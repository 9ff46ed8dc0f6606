// Package tone provides the buzzer bindings of the console: a terminal bell,
// a WAV recorder and a fan-out. The pulse itself is a square wave.
package tone

import (
	"encoding/binary"
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// SampleRate is the rate of every generated pulse, in Hz.
const SampleRate = 44100

// amplitude is half of 16-bit full scale.
const amplitude = 1 << 14

// Pulse returns one beep as signed 16-bit mono samples.
func Pulse(cfg config.ToneConfig) []int {
	n := int(cfg.Duration() * SampleRate / time.Second)
	out := make([]int, n)
	for i := range out {
		// Half periods elapsed; even halves are high.
		if (i*2*cfg.FrequencyHz/SampleRate)%2 == 0 {
			out[i] = amplitude
		} else {
			out[i] = -amplitude
		}
	}
	return out
}

// StereoPCM16 interleaves mono samples into little-endian 16-bit stereo.
func StereoPCM16(samples []int) []byte {
	out := make([]byte, len(samples)*4)
	for i, s := range samples {
		v := uint16(int16(s))
		binary.LittleEndian.PutUint16(out[i*4:], v)
		binary.LittleEndian.PutUint16(out[i*4+2:], v)
	}
	return out
}

// Multi plays every tone in order.
type Multi []core.Tone

// Beep implements core.Tone.
func (m Multi) Beep() {
	for _, t := range m {
		t.Beep()
	}
}
