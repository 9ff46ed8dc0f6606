package tone

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/vovakirdan/pocket-arcade/internal/config"
)

// Recorder appends every beep to a mono 16-bit WAV stream, followed by a
// gap of silence of the same length so consecutive beeps stay distinct.
type Recorder struct {
	enc    *wav.Encoder
	pulse  *audio.IntBuffer
	gap    *audio.IntBuffer
	closer io.Closer
	beeps  int
	err    error
}

// NewRecorder starts a WAV stream on w. Close must be called to finish the
// header.
func NewRecorder(w io.WriteSeeker, cfg config.ToneConfig) *Recorder {
	format := &audio.Format{NumChannels: 1, SampleRate: SampleRate}
	samples := Pulse(cfg)

	return &Recorder{
		enc:   wav.NewEncoder(w, SampleRate, 16, 1, 1),
		pulse: &audio.IntBuffer{Format: format, Data: samples, SourceBitDepth: 16},
		gap:   &audio.IntBuffer{Format: format, Data: make([]int, len(samples)), SourceBitDepth: 16},
	}
}

// CreateRecorder creates the file at path and records into it.
func CreateRecorder(path string, cfg config.ToneConfig) (*Recorder, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("tone: create recording: %w", err)
	}
	r := NewRecorder(f, cfg)
	r.closer = f
	return r, nil
}

// Beep implements core.Tone. After the first write error the recorder stops
// writing and Close reports the error.
func (r *Recorder) Beep() {
	if r.err != nil {
		return
	}
	if err := r.enc.Write(r.pulse); err != nil {
		r.err = fmt.Errorf("tone: write pulse: %w", err)
		return
	}
	if err := r.enc.Write(r.gap); err != nil {
		r.err = fmt.Errorf("tone: write gap: %w", err)
		return
	}
	r.beeps++
}

// Beeps returns how many beeps were recorded.
func (r *Recorder) Beeps() int {
	return r.beeps
}

// Close finishes the WAV header and closes the file, if the recorder owns one.
func (r *Recorder) Close() error {
	errs := []error{r.err}
	if r.beeps == 0 && r.err == nil {
		// An empty recording still needs its headers.
		empty := &audio.IntBuffer{Format: r.gap.Format, SourceBitDepth: 16}
		if err := r.enc.Write(empty); err != nil {
			errs = append(errs, fmt.Errorf("tone: write header: %w", err))
		}
	}
	if err := r.enc.Close(); err != nil {
		errs = append(errs, fmt.Errorf("tone: finish recording: %w", err))
	}
	if r.closer != nil {
		if err := r.closer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("tone: close recording: %w", err))
		}
	}
	return errors.Join(errs...)
}
