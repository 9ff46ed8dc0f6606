package core

// Action represents a semantic control, abstracted from physical keys,
// buttons or joystick deflection.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W, stick up
	ActionDown           // Down arrow, S, stick down
	ActionLeft           // Left arrow, A, stick left
	ActionRight          // Right arrow, D, stick right
	ActionConfirm        // Enter, Space, joystick button
	ActionQuit           // Q, Ctrl+C - leave the console (platform only)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Axis is a three-way categorised stick or d-pad axis.
type Axis int

const (
	AxisNegative Axis = -1 // left / up
	AxisNeutral  Axis = 0
	AxisPositive Axis = 1 // right / down
)

// InputFrame is one poll of the input source: which controls are held.
type InputFrame struct {
	// Actions maps action types to whether they are active this poll.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// X returns the horizontal axis. Left and right held together cancel out.
func (f InputFrame) X() Axis {
	return axis(f.Has(ActionLeft), f.Has(ActionRight))
}

// Y returns the vertical axis. Up and down held together cancel out.
func (f InputFrame) Y() Axis {
	return axis(f.Has(ActionUp), f.Has(ActionDown))
}

// Confirm reports whether the action button is held.
func (f InputFrame) Confirm() bool {
	return f.Has(ActionConfirm)
}

func axis(neg, pos bool) Axis {
	switch {
	case neg && !pos:
		return AxisNegative
	case pos && !neg:
		return AxisPositive
	default:
		return AxisNeutral
	}
}

// AnalogThresholds splits a raw ADC reading into three bands.
// Readings below Low are negative, above High positive, anything between neutral.
type AnalogThresholds struct {
	Low  int
	High int
}

// AnalogMax is the full-scale reading of the 12-bit joystick ADC.
const AnalogMax = 4095

// Axis categorises one raw reading.
func (t AnalogThresholds) Axis(raw int) Axis {
	switch {
	case raw < t.Low:
		return AxisNegative
	case raw > t.High:
		return AxisPositive
	default:
		return AxisNeutral
	}
}

// AnalogFrame builds an input frame from raw joystick readings.
func AnalogFrame(rawX, rawY int, button bool, t AnalogThresholds) InputFrame {
	frame := NewInputFrame()
	switch t.Axis(rawX) {
	case AxisNegative:
		frame.Set(ActionLeft)
	case AxisPositive:
		frame.Set(ActionRight)
	}
	switch t.Axis(rawY) {
	case AxisNegative:
		frame.Set(ActionUp)
	case AxisPositive:
		frame.Set(ActionDown)
	}
	if button {
		frame.Set(ActionConfirm)
	}
	return frame
}
