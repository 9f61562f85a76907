package picker

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// doubleClickTicks is the longest gap, in ticks, between two left presses that
// still counts as a double click. doubleClickSlop is the largest distance in
// pixels between them.
const (
	doubleClickTicks = 18
	doubleClickSlop  = 4.0
)

// inputState is the frame-to-frame state of real mouse and keyboard polling.
type inputState struct {
	lastCursor    Vec2
	focused       bool
	primed        bool
	tick          int64
	lastClickTick int64
	lastClickPos  Vec2
}

var keyBindings = []struct {
	keys []ebiten.Key
	key  Key
}{
	{[]ebiten.Key{ebiten.KeyA}, KeyA},
	{[]ebiten.Key{ebiten.KeyF}, KeyF},
	{[]ebiten.Key{ebiten.KeyDelete, ebiten.KeyBackspace}, KeyDelete},
	{[]ebiten.Key{ebiten.KeyHome}, KeyHome},
	{[]ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}, KeyPlus},
	{[]ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}, KeyMinus},
	{[]ebiten.Key{ebiten.KeyDigit0, ebiten.KeyNumpad0}, Key0},
	{[]ebiten.Key{ebiten.KeyEscape}, KeyEscape},
}

var buttonBindings = []struct {
	eb     ebiten.MouseButton
	button MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// PollInput reads real mouse and keyboard state from Ebitengine and feeds it
// into the canvas. It does nothing on frames where Update consumed a
// synthetic event. Losing window focus cancels the gesture in progress.
func (c *Canvas) PollInput() {
	in := &c.input
	in.tick++

	focused := ebiten.IsFocused()
	if in.primed && in.focused && !focused {
		c.debugf("focus lost")
		c.CancelGesture()
	}
	in.focused = focused
	if c.injected || !focused {
		return
	}

	mods := readModifiers()
	mx, my := ebiten.CursorPosition()
	cursor := Vec2{float64(mx), float64(my)}

	if in.primed && cursor != in.lastCursor {
		c.PointerMove(cursor, mods)
	}
	in.lastCursor = cursor
	in.primed = true

	for _, b := range buttonBindings {
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			c.PointerUp(b.button, cursor, mods)
		}
	}
	for _, b := range buttonBindings {
		if !inpututil.IsMouseButtonJustPressed(b.eb) {
			continue
		}
		if b.button == MouseButtonLeft && c.isDoubleClick(cursor) {
			c.DoubleClick(MouseButtonLeft, cursor)
			continue
		}
		c.PointerDown(b.button, cursor, mods)
	}

	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		c.Wheel(dx, dy, cursor, mods)
	}

	for _, kb := range keyBindings {
		for _, k := range kb.keys {
			if inpututil.IsKeyJustPressed(k) {
				c.KeyPress(kb.key, mods)
				break
			}
		}
	}
}

// isDoubleClick records a left press and reports whether it completes a
// double click with the previous one.
func (c *Canvas) isDoubleClick(p Vec2) bool {
	in := &c.input
	double := in.lastClickTick > 0 &&
		in.tick-in.lastClickTick <= doubleClickTicks &&
		p.Sub(in.lastClickPos).Len() <= doubleClickSlop
	if double {
		in.lastClickTick = 0
		return true
	}
	in.lastClickTick = in.tick
	in.lastClickPos = p
	return false
}
