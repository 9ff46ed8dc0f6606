package core

import "errors"

// Logical canvas size. The console only targets a 128x64 monochrome panel.
const (
	ScreenWidth  = 128
	ScreenHeight = 64
)

// ErrDisplayInit is returned by platform bindings whose display sink could
// not be brought up. Callers treat it as fatal: no game may run headless.
var ErrDisplayInit = errors.New("display init failed")

// Display is the render sink. Pixels are either on or off; drawing calls
// affect a back buffer that becomes visible on Present.
type Display interface {
	// Clear switches every pixel off.
	Clear()

	// FillRect switches on every pixel of the w x h box at (x, y).
	// Parts outside the canvas are clipped.
	FillRect(x, y, w, h int)

	// DrawText renders text with its top-left corner at (x, y).
	DrawText(x, y int, text string)

	// Present makes the drawn frame visible.
	Present()
}
