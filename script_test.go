package gridkit

import "testing"

func TestLoadInputScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "move", "x": 10, "y": 20},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "release", "x": 1, "y": 2}
		]
	}`)

	runner, err := LoadInputScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "move" || runner.steps[0].X != 10 || runner.steps[0].Y != 20 {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadInputScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"empty steps", `{"steps": []}`},
		{"missing steps", `{}`},
		{"unknown action", `{"steps": [{"action": "drag"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadInputScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

// runScript steps runner and picker together until the script finishes.
func runScript(t *testing.T, runner *InputRunner, p *TilePicker) int {
	t.Helper()
	frames := 0
	for !runner.Done() {
		if frames > 100 {
			t.Fatal("script did not finish")
		}
		runner.Step(p)
		if p.Pending() > 0 {
			p.Update()
		}
		frames++
	}
	return frames
}

func TestInputRunnerDrivesPicker(t *testing.T) {
	g := newTestGrid(t, Rect{X: 0, Y: 0, Width: 4, Height: 4}, 10, 10)
	q := NewEventQueue()
	p := NewTilePicker(g, q, allPickerEvents)

	runner, err := LoadInputScript([]byte(`{"steps": [
		{"action": "move", "x": 5, "y": 5},
		{"action": "move", "x": 15, "y": 5},
		{"action": "click", "x": 15, "y": 5}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	runScript(t, runner, p)

	assertEvents(t, g, pollAll(q), []wantEvent{
		{evEnter, 0},
		{evLeave, 0},
		{evEnter, 1},
		{evPress, 1},
		{evRelease, 1},
	})
}

func TestInputRunnerWaitsForPending(t *testing.T) {
	g := newTestGrid(t, Rect{X: 0, Y: 0, Width: 2, Height: 2}, 10, 10)
	p := NewTilePicker(g, NewEventQueue(), allPickerEvents)

	runner, err := LoadInputScript([]byte(`{"steps": [
		{"action": "click", "x": 5, "y": 5},
		{"action": "move", "x": 15, "y": 15}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.Step(p)
	if p.Pending() != 2 {
		t.Fatalf("expected 2 pending samples, got %d", p.Pending())
	}

	// Does not advance while the click is still queued.
	runner.Step(p)
	if runner.cursor != 1 {
		t.Errorf("cursor should still be 1, got %d", runner.cursor)
	}

	p.Update()
	p.Update()

	runner.Step(p)
	if p.Pending() != 1 {
		t.Errorf("expected the move to be queued, got %d pending", p.Pending())
	}
	if runner.Done() {
		t.Error("runner should not be done while the move is pending")
	}
	p.Update()
	runner.Step(p)
	if !runner.Done() {
		t.Error("runner should be done")
	}
	if p.Hovered() != 3 {
		t.Errorf("Hovered = %d, want 3", p.Hovered())
	}
}

func TestInputRunnerWait(t *testing.T) {
	g := newTestGrid(t, Rect{X: 0, Y: 0, Width: 2, Height: 2}, 10, 10)
	p := NewTilePicker(g, NewEventQueue(), allPickerEvents)

	runner, err := LoadInputScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "move", "x": 5, "y": 5}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	// Frames 1-3: the wait step and its countdown.
	for i := range 3 {
		runner.Step(p)
		if p.Pending() != 0 {
			t.Fatalf("frame %d: move injected during wait", i+1)
		}
	}

	// Frame 4: the move.
	runner.Step(p)
	if p.Pending() != 1 {
		t.Fatalf("expected move after wait, got %d pending", p.Pending())
	}
	p.Update()
	runner.Step(p)
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestInputRunnerDone(t *testing.T) {
	g := newTestGrid(t, Rect{X: 0, Y: 0, Width: 1, Height: 1}, 10, 10)
	p := NewTilePicker(g, NewEventQueue(), allPickerEvents)

	runner, err := LoadInputScript([]byte(`{"steps": [{"action": "wait", "frames": 1}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if runner.Done() {
		t.Error("runner should not be done before any steps")
	}
	runner.Step(p)
	if !runner.Done() {
		t.Error("runner should be done after a single one-frame wait")
	}
}
