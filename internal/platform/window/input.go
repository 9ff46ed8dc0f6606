package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/pocket-arcade/internal/core"
)

var keyBindings = map[core.Action][]ebiten.Key{
	core.ActionUp:      {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:    {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionConfirm: {ebiten.KeyEnter, ebiten.KeySpace},
	core.ActionQuit:    {ebiten.KeyEscape, ebiten.KeyQ},
}

var padBindings = map[core.Action]ebiten.StandardGamepadButton{
	core.ActionUp:      ebiten.StandardGamepadButtonLeftTop,
	core.ActionDown:    ebiten.StandardGamepadButtonLeftBottom,
	core.ActionLeft:    ebiten.StandardGamepadButtonLeftLeft,
	core.ActionRight:   ebiten.StandardGamepadButtonLeftRight,
	core.ActionConfirm: ebiten.StandardGamepadButtonRightBottom,
}

// stick is one gamepad reading.
type stick struct {
	ok      bool
	x, y    float64 // -1..1, down is positive
	buttons map[core.Action]bool
}

// poll reads the keyboard and the first standard gamepad.
func (g *Game) poll() core.InputFrame {
	keys := make(map[core.Action]bool)
	for a, ks := range keyBindings {
		for _, k := range ks {
			if ebiten.IsKeyPressed(k) {
				keys[a] = true
			}
		}
	}

	var pad stick
	g.pads = ebiten.AppendGamepadIDs(g.pads[:0])
	for _, id := range g.pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		pad = stick{
			ok:      true,
			x:       ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			y:       ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
			buttons: make(map[core.Action]bool),
		}
		for a, b := range padBindings {
			pad.buttons[a] = ebiten.IsStandardGamepadButtonPressed(id, b)
		}
		break
	}

	return mergeInput(keys, pad, g.thresholds)
}

// stickRaw maps a stick axis in -1..1 onto the 12-bit ADC scale.
func stickRaw(v float64) int {
	v = min(max(v, -1), 1)
	return int((v + 1) / 2 * core.AnalogMax)
}

// mergeInput combines the keyboard with the thresholded stick and the pad
// buttons. Opposite directions from different sources cancel.
func mergeInput(keys map[core.Action]bool, pad stick, t core.AnalogThresholds) core.InputFrame {
	frame := core.AnalogFrame(core.AnalogMax/2, core.AnalogMax/2, false, t)
	if pad.ok {
		frame = core.AnalogFrame(stickRaw(pad.x), stickRaw(pad.y), pad.buttons[core.ActionConfirm], t)
		for a, held := range pad.buttons {
			if held {
				frame.Set(a)
			}
		}
	}
	for a, held := range keys {
		if held {
			frame.Set(a)
		}
	}
	return frame
}
