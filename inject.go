package picker

type syntheticKind uint8

const (
	syntheticPress syntheticKind = iota
	syntheticMove
	syntheticRelease
	syntheticDoubleClick
	syntheticWheel
	syntheticKey
)

// syntheticEvent is a single injected input event. Pointer positions are in
// screen coordinates, exactly like real mouse input.
type syntheticEvent struct {
	kind   syntheticKind
	pos    Vec2
	button MouseButton
	mods   KeyModifiers
	dx, dy float64
	key    Key
}

// InjectPress queues a left button press at the given screen coordinates.
// The event is consumed by a later Update call, one event per frame.
func (c *Canvas) InjectPress(x, y float64, mods KeyModifiers) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{
		kind: syntheticPress, pos: Vec2{x, y}, button: MouseButtonLeft, mods: mods,
	})
}

// InjectMove queues a pointer move to the given screen coordinates.
func (c *Canvas) InjectMove(x, y float64, mods KeyModifiers) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{
		kind: syntheticMove, pos: Vec2{x, y}, mods: mods,
	})
}

// InjectRelease queues a left button release at the given screen coordinates.
func (c *Canvas) InjectRelease(x, y float64, mods KeyModifiers) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{
		kind: syntheticRelease, pos: Vec2{x, y}, button: MouseButtonLeft, mods: mods,
	})
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (c *Canvas) InjectClick(x, y float64, mods KeyModifiers) {
	c.InjectPress(x, y, mods)
	c.InjectRelease(x, y, mods)
}

// InjectDoubleClick queues a left double click at the given screen coordinates.
func (c *Canvas) InjectDoubleClick(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{
		kind: syntheticDoubleClick, pos: Vec2{x, y}, button: MouseButtonLeft,
	})
}

// InjectDrag queues a full left-button drag: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and release
// at (toX, toY). The sequence consumes frames frames; the minimum is 2.
func (c *Canvas) InjectDrag(fromX, fromY, toX, toY float64, frames int, mods KeyModifiers) {
	c.injectDrag(MouseButtonLeft, Vec2{fromX, fromY}, Vec2{toX, toY}, frames, mods)
}

// InjectPanDrag is InjectDrag with the middle button, which pans the view.
func (c *Canvas) InjectPanDrag(fromX, fromY, toX, toY float64, frames int) {
	c.injectDrag(MouseButtonMiddle, Vec2{fromX, fromY}, Vec2{toX, toY}, frames, 0)
}

func (c *Canvas) injectDrag(button MouseButton, from, to Vec2, frames int, mods KeyModifiers) {
	if frames < 2 {
		frames = 2
	}
	c.injectQueue = append(c.injectQueue, syntheticEvent{
		kind: syntheticPress, pos: from, button: button, mods: mods,
	})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		c.injectQueue = append(c.injectQueue, syntheticEvent{
			kind: syntheticMove, pos: from.Add(to.Sub(from).Scale(t)), button: button, mods: mods,
		})
	}
	c.injectQueue = append(c.injectQueue, syntheticEvent{
		kind: syntheticRelease, pos: to, button: button, mods: mods,
	})
}

// InjectWheel queues a wheel scroll of (dx, dy) with the pointer at the given
// screen coordinates.
func (c *Canvas) InjectWheel(x, y, dx, dy float64, mods KeyModifiers) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{
		kind: syntheticWheel, pos: Vec2{x, y}, dx: dx, dy: dy, mods: mods,
	})
}

// InjectKey queues a key press.
func (c *Canvas) InjectKey(key Key, mods KeyModifiers) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{
		kind: syntheticKey, key: key, mods: mods,
	})
}

// PendingInjections returns the number of queued synthetic events.
func (c *Canvas) PendingInjections() int { return len(c.injectQueue) }

// processInjectedInput pops one event from the inject queue and dispatches it.
// Returns true if an event was consumed (real input should be skipped).
func (c *Canvas) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	evt := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	switch evt.kind {
	case syntheticPress:
		c.PointerDown(evt.button, evt.pos, evt.mods)
	case syntheticMove:
		c.PointerMove(evt.pos, evt.mods)
	case syntheticRelease:
		c.PointerUp(evt.button, evt.pos, evt.mods)
	case syntheticDoubleClick:
		c.DoubleClick(evt.button, evt.pos)
	case syntheticWheel:
		c.Wheel(evt.dx, evt.dy, evt.pos, evt.mods)
	case syntheticKey:
		c.KeyPress(evt.key, evt.mods)
	}
	return true
}
