package stage

import "github.com/phanxgames/turtle"

// Action identifies a host command triggered by a button, a key or a script.
type Action uint8

const (
	ActionNone  Action = iota // nothing
	ActionRun                 // reset, then run to completion
	ActionStep                // execute one command
	ActionReset               // reset actor and interpreter
)

// String returns the lowercase action name used by scripts.
func (a Action) String() string {
	switch a {
	case ActionRun:
		return "run"
	case ActionStep:
		return "step"
	case ActionReset:
		return "reset"
	default:
		return "none"
	}
}

// Button is a clickable rectangle in the top bar.
type Button struct {
	Label  string
	Bounds turtle.Rect
	Action Action
}

// topBarButtons lays out the Run / Step / Reset buttons left to right.
func topBarButtons() []Button {
	labels := []struct {
		label  string
		action Action
	}{
		{"Run", ActionRun},
		{"Step", ActionStep},
		{"Reset", ActionReset},
	}
	buttons := make([]Button, len(labels))
	x := float64(margin)
	y := float64(topBarHeight-buttonHeight) / 2
	for i, l := range labels {
		buttons[i] = Button{
			Label:  l.label,
			Action: l.action,
			Bounds: turtle.Rect{X: x, Y: y, Width: buttonWidth, Height: buttonHeight},
		}
		x += buttonWidth + buttonGap
	}
	return buttons
}

// hitButton returns the action of the button under (x, y), or ActionNone.
func hitButton(buttons []Button, x, y float64) Action {
	for _, b := range buttons {
		if b.Bounds.Contains(x, y) {
			return b.Action
		}
	}
	return ActionNone
}
