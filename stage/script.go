package stage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrEmptyScript is returned by LoadScript for a script with no steps.
var ErrEmptyScript = errors.New("no steps")

// scriptStep is a single action in an automation script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences host actions, button clicks and screenshots across
// frames so a stage session can be replayed without a user. Attach to a
// Stage via SetScript.
//
//	{"steps": [
//	  {"action": "step"},
//	  {"action": "wait", "frames": 30},
//	  {"action": "click", "x": 60, "y": 16},
//	  {"action": "screenshot", "label": "after-run"}
//	]}
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON automation script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", ErrEmptyScript)
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "run", "step", "reset", "wait", "click", "screenshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// LoadScriptFile reads and parses the script at path.
func LoadScriptFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return LoadScript(data)
}

// Done reports whether every step has been executed.
func (r *Script) Done() bool {
	return r.done
}

// Len returns the number of steps.
func (r *Script) Len() int {
	return len(r.steps)
}

// step advances the script by one frame. Called from Stage.Update.
func (r *Script) step(s *Stage) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "run":
		s.Queue(ActionRun)
	case "step":
		s.Queue(ActionStep)
	case "reset":
		s.Queue(ActionReset)
	case "click":
		s.Queue(hitButton(s.buttons, st.X, st.Y))
	case "screenshot":
		s.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
