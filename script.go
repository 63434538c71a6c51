package gridkit

import (
	"encoding/json"
	"fmt"
)

// inputStep is a single action in an input script.
type inputStep struct {
	Action string `json:"action"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []inputStep `json:"steps"`
}

// InputRunner feeds scripted pointer input to a TilePicker across frames,
// for windowless runs and automated tests.
//
//	{"steps": [
//		{"action": "move", "x": 40, "y": 20},
//		{"action": "click", "x": 40, "y": 20},
//		{"action": "wait", "frames": 3}
//	]}
type InputRunner struct {
	steps     []inputStep
	cursor    int
	waitCount int
	done      bool
}

// LoadInputScript parses a JSON input script.
func LoadInputScript(jsonData []byte) (*InputRunner, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "move", "press", "release", "click", "wait":
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &InputRunner{steps: script.Steps}, nil
}

// Done reports whether every step has been executed and consumed.
func (r *InputRunner) Done() bool {
	return r.done
}

// Step advances the script by one frame, queuing input on p. Call it before
// p.Update each frame.
func (r *InputRunner) Step(p *TilePicker) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if p.Pending() > 0 {
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
	case "move":
		p.InjectMove(st.X, st.Y)
	case "press":
		p.InjectPress(st.X, st.Y)
	case "release":
		p.InjectRelease(st.X, st.Y)
	case "click":
		p.InjectClick(st.X, st.Y)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && p.Pending() == 0 {
		r.done = true
	}
}
