package picker

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// DefaultWheelPanFactor scales plain wheel deltas into pan pixels.
	DefaultWheelPanFactor = 0.5

	defaultDragDeadZone = 4.0 // pixels
)

// CanvasConfig holds the initial canvas settings. Zero fields take defaults.
type CanvasConfig struct {
	// ViewportSize is the screen-space size of the canvas view in pixels.
	ViewportSize Vec2

	MinZoom  float64
	MaxZoom  float64
	ZoomStep float64

	GridSize    int
	SnapToGrid  bool
	GridVisible bool

	EditMode bool

	// WheelPanFactor scales plain wheel deltas into pan pixels. Default 0.5.
	WheelPanFactor float64

	// DragDeadZone is the distance in pixels the pointer must travel before a
	// press turns into an item drag. Default 4.
	DragDeadZone float64
}

// CanvasInfo is a snapshot of canvas state for status displays.
type CanvasInfo struct {
	Items       int
	Selected    int
	Zoom        float64
	Pan         Vec2
	EditMode    bool
	GridSize    int
	GridVisible bool
	SnapToGrid  bool
}

type gestureKind uint8

const (
	gestureNone gestureKind = iota
	gesturePan
	gestureRubberBand
	gestureItemPress // left press on an item, drag not yet started
	gestureItemDrag
)

func (g gestureKind) String() string {
	switch g {
	case gesturePan:
		return "pan"
	case gestureRubberBand:
		return "rubber band"
	case gestureItemPress:
		return "item press"
	case gestureItemDrag:
		return "item drag"
	default:
		return "none"
	}
}

// Canvas is the interactive surface. It owns the item collection, the
// viewport, the grid and the selection, and turns pointer, wheel and key
// events into calls on them.
type Canvas struct {
	items []Item

	viewport  *Viewport
	grid      *Grid
	selection *SelectionManager

	viewportSize   Vec2
	editMode       bool
	wheelPanFactor float64
	dragDeadZone   float64

	// pointer gesture state
	gesture     gestureKind
	pressScreen Vec2
	pressScene  Vec2
	dragOrigins map[Item]Vec2

	handlers handlerRegistry

	injectQueue []syntheticEvent
	injected    bool
	testRunner  *TestRunner
	input       inputState
	labels      *labelCache[*ebiten.Image]

	debug bool
}

// NewCanvas creates a Canvas from cfg.
func NewCanvas(cfg CanvasConfig) *Canvas {
	c := &Canvas{
		viewport:       NewViewport(),
		grid:           NewGrid(),
		viewportSize:   cfg.ViewportSize,
		editMode:       cfg.EditMode,
		wheelPanFactor: cfg.WheelPanFactor,
		dragDeadZone:   cfg.DragDeadZone,
		dragOrigins:    make(map[Item]Vec2),
	}
	if c.wheelPanFactor == 0 {
		c.wheelPanFactor = DefaultWheelPanFactor
	}
	if c.dragDeadZone <= 0 {
		c.dragDeadZone = defaultDragDeadZone
	}

	zm := c.viewport.ZoomManager()
	minZoom, maxZoom := cfg.MinZoom, cfg.MaxZoom
	if minZoom <= 0 {
		minZoom = DefaultMinZoom
	}
	if maxZoom <= 0 {
		maxZoom = DefaultMaxZoom
	}
	zm.SetLimits(minZoom, maxZoom)
	if cfg.ZoomStep > 0 {
		zm.SetStep(cfg.ZoomStep)
	}

	if cfg.GridSize > 0 {
		c.grid.SetCellSize(cfg.GridSize)
	}
	c.grid.SetSnapEnabled(cfg.SnapToGrid)
	c.grid.SetVisible(cfg.GridVisible)

	c.selection = NewSelectionManager(ItemsFunc(c.Items))
	c.selection.OnChange(func(sel []Item) {
		c.debugf("selection: %d item(s)", len(sel))
		c.handlers.fireSelectionChanged(sel)
	})
	c.viewport.OnChange(func(zoomChanged, panChanged bool) {
		if zoomChanged {
			z := c.viewport.Zoom()
			c.debugf("zoom: %.3f", z)
			c.handlers.fireZoomChanged(z)
		}
		if panChanged {
			p := c.viewport.Pan()
			c.debugf("pan: (%.1f, %.1f)", p.X, p.Y)
			c.handlers.firePanChanged(p)
		}
	})
	return c
}

// Viewport returns the canvas viewport.
func (c *Canvas) Viewport() *Viewport { return c.viewport }

// Grid returns the canvas grid.
func (c *Canvas) Grid() *Grid { return c.grid }

// Selection returns the canvas selection.
func (c *Canvas) Selection() *SelectionManager { return c.selection }

// ViewportRect returns the screen-space viewport rectangle anchored at (0, 0).
func (c *Canvas) ViewportRect() Rect {
	return Rect{Width: c.viewportSize.X, Height: c.viewportSize.Y}
}

// SetViewportSize updates the screen-space size of the canvas view.
func (c *Canvas) SetViewportSize(size Vec2) {
	c.viewportSize = size
}

// --- Item collection ---

// Items returns the items in ascending z-order. Items with equal z keep their
// insertion order. The returned slice is a copy.
func (c *Canvas) Items() []Item {
	out := slices.Clone(c.items)
	slices.SortStableFunc(out, func(a, b Item) int {
		return cmp.Compare(itemZ(a), itemZ(b))
	})
	return out
}

// AddItem adds item to the collection. When at is non-nil a Positionable item
// is moved there; its position is snapped when grid snapping is on. Adding an
// item that is already present does nothing.
func (c *Canvas) AddItem(item Item, at *Vec2) {
	if item == nil || containsItem(c.items, item) {
		return
	}
	if p, ok := item.(Positionable); ok {
		pos := p.Position()
		if at != nil {
			pos = *at
		}
		p.SetPosition(c.grid.SnapToGrid(pos))
	}
	if c.debug {
		debugCheckItem(item)
	}
	c.items = append(c.items, item)
	c.debugCheckItemCount()
	c.handlers.fireItemAdded(item)
}

// RemoveItem removes item from the collection and from the selection.
func (c *Canvas) RemoveItem(item Item) {
	i := slices.Index(c.items, item)
	if i < 0 {
		return
	}
	c.items = slices.Delete(c.items, i, i+1)
	delete(c.dragOrigins, item)
	c.selection.Remove(item)
	c.handlers.fireItemRemoved(item)
}

// CreateItem creates a Widget of the named kind, adds it at the scene point at
// (or the scene point under the viewport center when at is nil) and makes it
// the only selected item.
func (c *Canvas) CreateItem(kindName string, at *Vec2) (*Widget, error) {
	kind, err := ParseWidgetKind(kindName)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	w := NewWidget(kind)
	pos := c.viewport.ScreenToScene(c.ViewportRect().Center())
	if at != nil {
		pos = *at
	}
	c.AddItem(w, &pos)
	c.selection.Select(w, false)
	c.debugf("created %s at (%.1f, %.1f)", kind, w.X, w.Y)
	return w, nil
}

// DeleteSelected removes every selected item from the collection. Returns the
// number of items removed.
func (c *Canvas) DeleteSelected() int {
	sel := c.selection.Selected()
	if len(sel) == 0 {
		return 0
	}
	c.selection.Clear()
	for _, it := range sel {
		c.RemoveItem(it)
	}
	return len(sel)
}

// ItemAt returns the topmost item whose hit area contains the scene point, or
// nil. Items need Positionable plus either HitTester or Sized to be hit.
func (c *Canvas) ItemAt(scene Vec2) Item {
	items := c.Items()
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		p, ok := it.(Positionable)
		if !ok {
			continue
		}
		local := scene.Sub(p.Position())
		if itemContainsLocal(it, local.X, local.Y) {
			return it
		}
	}
	return nil
}

// --- Pointer input ---

// PointerDown handles a button press at screen point p.
func (c *Canvas) PointerDown(button MouseButton, p Vec2, mods KeyModifiers) {
	if c.gesture != gestureNone {
		return
	}
	scene := c.viewport.ScreenToScene(p)
	c.pressScreen = p
	c.pressScene = scene

	switch button {
	case MouseButtonMiddle:
		c.viewport.PanManager().StartPan(p)
		c.setGesture(gesturePan)

	case MouseButtonLeft:
		ctrl := mods.Has(ModCtrl)
		if hit := c.ItemAt(scene); hit != nil {
			if ctrl {
				c.selection.Toggle(hit)
			} else if !c.selection.IsSelected(hit) {
				c.selection.Select(hit, false)
			}
			if c.editMode && c.selection.IsSelected(hit) {
				c.setGesture(gestureItemPress)
			}
			return
		}
		if !ctrl {
			c.selection.Clear()
		}
		if c.editMode {
			c.selection.StartRubberBand(scene)
			c.setGesture(gestureRubberBand)
		}
		c.handlers.fireCanvasClicked(scene)
	}
}

// PointerMove handles pointer motion to screen point p.
func (c *Canvas) PointerMove(p Vec2, mods KeyModifiers) {
	switch c.gesture {
	case gesturePan:
		c.viewport.PanManager().UpdatePan(p)
	case gestureRubberBand:
		c.selection.UpdateRubberBand(c.viewport.ScreenToScene(p))
	case gestureItemPress:
		if p.Sub(c.pressScreen).Len() <= c.dragDeadZone {
			return
		}
		c.beginItemDrag()
		c.dragItems(p)
	case gestureItemDrag:
		c.dragItems(p)
	}
}

// PointerUp handles a button release at screen point p. A rubber band is
// applied with the Ctrl state of mods.
func (c *Canvas) PointerUp(button MouseButton, p Vec2, mods KeyModifiers) {
	switch c.gesture {
	case gesturePan:
		if button != MouseButtonMiddle {
			return
		}
		c.viewport.PanManager().UpdatePan(p)
		c.viewport.PanManager().EndPan()
	case gestureRubberBand:
		if button != MouseButtonLeft {
			return
		}
		if p.Sub(c.pressScreen).Len() <= c.dragDeadZone {
			// a click, not a drag
			c.selection.CancelRubberBand()
		} else {
			c.selection.FinishRubberBand(c.viewport.ScreenToScene(p), mods.Has(ModCtrl))
		}
	case gestureItemPress, gestureItemDrag:
		if button != MouseButtonLeft {
			return
		}
		if c.gesture == gestureItemDrag {
			c.dragItems(p)
		}
		clear(c.dragOrigins)
	default:
		return
	}
	c.setGesture(gestureNone)
}

// DoubleClick handles a double click at screen point p. On empty canvas it
// emits canvas-double-clicked with the scene point.
func (c *Canvas) DoubleClick(button MouseButton, p Vec2) {
	if button != MouseButtonLeft {
		return
	}
	scene := c.viewport.ScreenToScene(p)
	if c.ItemAt(scene) != nil {
		return
	}
	c.handlers.fireCanvasDoubleClicked(scene)
}

// Wheel handles a scroll of (dx, dy) with the pointer at screen point p. With
// Ctrl held the wheel zooms around p; otherwise it pans.
func (c *Canvas) Wheel(dx, dy float64, p Vec2, mods KeyModifiers) {
	if mods.Has(ModCtrl) {
		c.viewport.ZoomAtPoint(dy, p)
		return
	}
	if dx == 0 && dy == 0 {
		return
	}
	pm := c.viewport.PanManager()
	pm.SetOffset(pm.Offset().Add(Vec2{dx, dy}.Scale(c.wheelPanFactor)))
}

// KeyPress handles a key press and reports whether the canvas used it.
func (c *Canvas) KeyPress(key Key, mods KeyModifiers) bool {
	ctrl := mods.Has(ModCtrl)
	switch {
	case key == KeyA && ctrl:
		c.selection.SelectAll()
	case key == KeyDelete:
		c.DeleteSelected()
	case key == KeyF && !ctrl:
		c.ZoomFit()
	case key == KeyHome:
		c.ResetView()
	case key == KeyPlus && ctrl:
		c.ZoomIn()
	case key == KeyMinus && ctrl:
		c.ZoomOut()
	case key == Key0 && ctrl:
		c.ResetZoom()
	case key == KeyEscape && c.gesture != gestureNone:
		c.CancelGesture()
	default:
		return false
	}
	return true
}

// CancelGesture abandons the gesture in progress, as on focus loss. A pan
// keeps the motion applied so far, a rubber band is dropped without touching
// the selection, and dragged items stay where they are.
func (c *Canvas) CancelGesture() {
	switch c.gesture {
	case gesturePan:
		c.viewport.PanManager().EndPan()
	case gestureRubberBand:
		c.selection.CancelRubberBand()
	case gestureItemPress, gestureItemDrag:
		clear(c.dragOrigins)
	default:
		return
	}
	c.setGesture(gestureNone)
}

// Dragging reports whether items are being dragged.
func (c *Canvas) Dragging() bool { return c.gesture == gestureItemDrag }

func (c *Canvas) setGesture(g gestureKind) {
	if c.gesture != g {
		c.debugf("gesture: %s -> %s", c.gesture, g)
	}
	c.gesture = g
}

// beginItemDrag records the start position of every selected Positionable.
func (c *Canvas) beginItemDrag() {
	clear(c.dragOrigins)
	for _, it := range c.selection.Selected() {
		if p, ok := it.(Positionable); ok {
			c.dragOrigins[it] = p.Position()
		}
	}
	c.setGesture(gestureItemDrag)
}

// dragItems moves dragged items by the scene distance from the press point.
// Positions derive from the start positions, so snapping does not accumulate.
func (c *Canvas) dragItems(p Vec2) {
	delta := c.viewport.ScreenToScene(p).Sub(c.pressScene)
	for it, origin := range c.dragOrigins {
		it.(Positionable).SetPosition(c.grid.SnapToGrid(origin.Add(delta)))
	}
}

// --- Navigation ---

// ZoomIn raises the zoom by one step around the viewport center.
func (c *Canvas) ZoomIn() {
	c.viewport.ZoomAround(c.viewport.Zoom()+c.viewport.ZoomManager().Step(), c.ViewportRect().Center())
}

// ZoomOut lowers the zoom by one step around the viewport center.
func (c *Canvas) ZoomOut() {
	c.viewport.ZoomAround(c.viewport.Zoom()-c.viewport.ZoomManager().Step(), c.ViewportRect().Center())
}

// SetZoom sets the zoom around the viewport center.
func (c *Canvas) SetZoom(zoom float64) {
	c.viewport.ZoomAround(zoom, c.ViewportRect().Center())
}

// ResetZoom returns to zoom 1.0 around the viewport center.
func (c *Canvas) ResetZoom() { c.SetZoom(1.0) }

// ZoomFit fits every item into the viewport.
func (c *Canvas) ZoomFit() {
	c.viewport.FitItemsInView(c.items, c.ViewportRect(), DefaultFitItemsMargin)
}

// ZoomSelection fits the selected items into the viewport. Without a selection
// it does nothing.
func (c *Canvas) ZoomSelection() {
	if !c.selection.HasSelection() {
		return
	}
	c.viewport.FitItemsInView(c.selection.Selected(), c.ViewportRect(), DefaultFitItemsMargin)
}

// PanToCenter pans so the scene point sits at the viewport center.
func (c *Canvas) PanToCenter(scene Vec2) {
	c.viewport.CenterOn(scene, c.ViewportRect().Center())
}

// ResetView returns to zoom 1.0 and pan (0, 0).
func (c *Canvas) ResetView() { c.viewport.ResetView() }

// --- State ---

// EditMode reports whether items can be dragged and rubber-band selected.
func (c *Canvas) EditMode() bool { return c.editMode }

// SetEditMode turns edit mode on or off. Leaving edit mode cancels an item
// drag or rubber band in progress.
func (c *Canvas) SetEditMode(on bool) {
	if c.editMode == on {
		return
	}
	if !on && c.gesture != gesturePan {
		c.CancelGesture()
	}
	c.editMode = on
	c.handlers.fireEditModeChanged(on)
}

// SetGridVisible shows or hides the grid.
func (c *Canvas) SetGridVisible(visible bool) { c.grid.SetVisible(visible) }

// SetSnapToGrid turns grid snapping on or off.
func (c *Canvas) SetSnapToGrid(snap bool) { c.grid.SetSnapEnabled(snap) }

// SetGridSize sets the grid cell size.
func (c *Canvas) SetGridSize(size int) { c.grid.SetCellSize(size) }

// SnapSelectionToGrid moves every selected item onto the grid, or every item
// when nothing is selected.
func (c *Canvas) SnapSelectionToGrid() {
	items := c.selection.Selected()
	if len(items) == 0 {
		items = c.items
	}
	c.grid.SnapItems(items)
}

// Info returns a snapshot of the canvas state.
func (c *Canvas) Info() CanvasInfo {
	return CanvasInfo{
		Items:       len(c.items),
		Selected:    c.selection.Len(),
		Zoom:        c.viewport.Zoom(),
		Pan:         c.viewport.Pan(),
		EditMode:    c.editMode,
		GridSize:    c.grid.CellSize(),
		GridVisible: c.grid.Visible(),
		SnapToGrid:  c.grid.SnapEnabled(),
	}
}

// Update advances the canvas by one frame: the test runner steps, one queued
// synthetic event is consumed, and any view transition advances by dt seconds.
func (c *Canvas) Update(dt float32) {
	if c.testRunner != nil {
		c.testRunner.step(c)
	}
	c.injected = c.processInjectedInput()
	c.viewport.Update(dt)
}
