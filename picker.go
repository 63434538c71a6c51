package gridkit

import "github.com/hajimehoshi/ebiten/v2"

// PickerEvents selects which event codes a TilePicker pushes. Codes are the
// caller's own; each one is only pushed when its Emit flag is set.
type PickerEvents struct {
	Enter   EventType // pointer moved onto a tile
	Leave   EventType // pointer moved off a tile
	Press   EventType // left button pressed over a tile
	Release EventType // left button released over a tile

	EmitEnter   bool
	EmitLeave   bool
	EmitPress   bool
	EmitRelease bool
}

// TilePicker tracks the pointer over a grid and pushes tile events onto an
// EventQueue. Every event carries the rect of the tile it concerns.
//
// Call Update once per frame from the host's ebiten.Game.Update.
type TilePicker struct {
	grid   *Grid
	queue  *EventQueue
	events PickerEvents

	hovered int
	down    bool

	injectQueue   []syntheticPointerEvent
	injectPressed bool // button state after the last queued injection
}

// NewTilePicker creates a picker over g that pushes onto q.
func NewTilePicker(g *Grid, q *EventQueue, events PickerEvents) *TilePicker {
	return &TilePicker{
		grid:    g,
		queue:   q,
		events:  events,
		hovered: NoTile,
	}
}

// Hovered returns the key of the tile under the pointer, or NoTile.
func (p *TilePicker) Hovered() int {
	return p.hovered
}

// Update samples the pointer and pushes any resulting events. A queued
// synthetic event replaces real mouse input for the frame.
func (p *TilePicker) Update() {
	if p.processInjectedInput() {
		return
	}
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	p.processPointer(mx, my, pressed)
}

// keyAt resolves (x, y) with the lookup matching the grid mode.
func (p *TilePicker) keyAt(x, y int) int {
	if p.grid.Mode() == ModeIsometric {
		return p.grid.IsoTileKeyAt(x, y)
	}
	return p.grid.TileKeyAt(x, y)
}

// processPointer runs the hover and button state machine for one sample.
func (p *TilePicker) processPointer(x, y int, pressed bool) {
	key := p.keyAt(x, y)

	if key != p.hovered {
		if p.hovered != NoTile && p.events.EmitLeave {
			p.push(p.events.Leave, p.hovered)
		}
		p.hovered = key
		if key != NoTile && p.events.EmitEnter {
			p.push(p.events.Enter, key)
		}
	}

	switch {
	case pressed && !p.down:
		p.down = true
		if key != NoTile && p.events.EmitPress {
			p.push(p.events.Press, key)
		}
	case !pressed && p.down:
		p.down = false
		if key != NoTile && p.events.EmitRelease {
			p.push(p.events.Release, key)
		}
	}
}

func (p *TilePicker) push(t EventType, key int) {
	tile, ok := p.grid.Tile(key)
	if !ok {
		return
	}
	p.queue.Push(Event{Type: t, Rect: tile.Rect})
}
