package core

// Tone emits a fixed-duration audible pulse. Beep is fire-and-forget.
type Tone interface {
	Beep()
}

// NopTone is a silent Tone.
type NopTone struct{}

// Beep does nothing.
func (NopTone) Beep() {}
