package tone

import "io"

// Bell rings the terminal bell. Write errors are dropped; a beep has no
// result.
type Bell struct {
	w io.Writer
}

// NewBell creates a bell writing to w, usually the terminal or an SSH
// session's stderr.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Beep implements core.Tone.
func (b *Bell) Beep() {
	_, _ = io.WriteString(b.w, "\a")
}
