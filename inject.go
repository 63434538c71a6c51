package gridkit

// syntheticPointerEvent is a single injected pointer sample in screen
// pixels.
type syntheticPointerEvent struct {
	x, y    int
	pressed bool
}

// InjectMove queues a pointer move to (x, y). The button keeps the state
// left by the previous injection. The sample is consumed by the next Update.
func (p *TilePicker) InjectMove(x, y int) {
	p.inject(x, y, p.injectPressed)
}

// InjectPress queues a left button press at (x, y).
func (p *TilePicker) InjectPress(x, y int) {
	p.inject(x, y, true)
}

// InjectRelease queues a left button release at (x, y).
func (p *TilePicker) InjectRelease(x, y int) {
	p.inject(x, y, false)
}

// InjectClick queues a press followed by a release at (x, y). Consumes two
// frames.
func (p *TilePicker) InjectClick(x, y int) {
	p.InjectPress(x, y)
	p.InjectRelease(x, y)
}

// Pending returns the number of injected samples not yet consumed.
func (p *TilePicker) Pending() int {
	return len(p.injectQueue)
}

func (p *TilePicker) inject(x, y int, pressed bool) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: pressed})
	p.injectPressed = pressed
}

// processInjectedInput pops one injected sample and feeds it through
// processPointer. Returns true if a sample was consumed.
func (p *TilePicker) processInjectedInput() bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	evt := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]

	p.processPointer(evt.x, evt.y, evt.pressed)
	return true
}
