package picker

// EventSink is the interface for optional ECS integration.
// When set on a Canvas, every notification is also forwarded as a CanvasEvent.
type EventSink interface {
	EmitEvent(event CanvasEvent)
}

// CanvasEvent carries notification data for the ECS bridge. Only the fields
// relevant to Type are set.
type CanvasEvent struct {
	Type      EventType
	Selection []Item  // EventSelectionChanged
	Zoom      float64 // EventZoomChanged
	Pan       Vec2    // EventPanChanged
	Item      Item    // EventItemAdded, EventItemRemoved
	Point     Vec2    // EventCanvasClicked, EventCanvasDoubleClicked (scene space)
	EditMode  bool    // EventEditModeChanged
}

// --- Handler registry ---

type handler[F any] struct {
	id uint32
	fn F
}

type handlerList[F any] []handler[F]

// remove drops the entry with id, keeping the slice compact.
func (l handlerList[F]) remove(id uint32) handlerList[F] {
	for i := range l {
		if l[i].id == id {
			copy(l[i:], l[i+1:])
			l[len(l)-1] = handler[F]{}
			return l[:len(l)-1]
		}
	}
	return l
}

type handlerRegistry struct {
	selectionChanged    handlerList[func([]Item)]
	zoomChanged         handlerList[func(float64)]
	panChanged          handlerList[func(Vec2)]
	itemAdded           handlerList[func(Item)]
	itemRemoved         handlerList[func(Item)]
	canvasClicked       handlerList[func(Vec2)]
	canvasDoubleClicked handlerList[func(Vec2)]
	editModeChanged     handlerList[func(bool)]
	nextID              uint32
	sink                EventSink
}

// CallbackHandle allows removing a registered canvas callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventSelectionChanged:
		h.reg.selectionChanged = h.reg.selectionChanged.remove(h.id)
	case EventZoomChanged:
		h.reg.zoomChanged = h.reg.zoomChanged.remove(h.id)
	case EventPanChanged:
		h.reg.panChanged = h.reg.panChanged.remove(h.id)
	case EventItemAdded:
		h.reg.itemAdded = h.reg.itemAdded.remove(h.id)
	case EventItemRemoved:
		h.reg.itemRemoved = h.reg.itemRemoved.remove(h.id)
	case EventCanvasClicked:
		h.reg.canvasClicked = h.reg.canvasClicked.remove(h.id)
	case EventCanvasDoubleClicked:
		h.reg.canvasDoubleClicked = h.reg.canvasDoubleClicked.remove(h.id)
	case EventEditModeChanged:
		h.reg.editModeChanged = h.reg.editModeChanged.remove(h.id)
	}
}

func (r *handlerRegistry) handle(event EventType) CallbackHandle {
	return CallbackHandle{id: r.nextID, reg: r, event: event}
}

// --- Registration ---
//
// Listeners must not rely on delivery order relative to other listeners of
// the same event.

// OnSelectionChanged registers a callback receiving a snapshot of the
// selection after every selection mutation.
func (c *Canvas) OnSelectionChanged(fn func(selection []Item)) CallbackHandle {
	c.handlers.nextID++
	c.handlers.selectionChanged = append(c.handlers.selectionChanged, handler[func([]Item)]{c.handlers.nextID, fn})
	return c.handlers.handle(EventSelectionChanged)
}

// OnZoomChanged registers a callback for committed zoom changes.
func (c *Canvas) OnZoomChanged(fn func(zoom float64)) CallbackHandle {
	c.handlers.nextID++
	c.handlers.zoomChanged = append(c.handlers.zoomChanged, handler[func(float64)]{c.handlers.nextID, fn})
	return c.handlers.handle(EventZoomChanged)
}

// OnPanChanged registers a callback for committed pan changes.
func (c *Canvas) OnPanChanged(fn func(pan Vec2)) CallbackHandle {
	c.handlers.nextID++
	c.handlers.panChanged = append(c.handlers.panChanged, handler[func(Vec2)]{c.handlers.nextID, fn})
	return c.handlers.handle(EventPanChanged)
}

// OnItemAdded registers a callback fired after an item joins the collection.
func (c *Canvas) OnItemAdded(fn func(item Item)) CallbackHandle {
	c.handlers.nextID++
	c.handlers.itemAdded = append(c.handlers.itemAdded, handler[func(Item)]{c.handlers.nextID, fn})
	return c.handlers.handle(EventItemAdded)
}

// OnItemRemoved registers a callback fired after an item leaves the collection.
func (c *Canvas) OnItemRemoved(fn func(item Item)) CallbackHandle {
	c.handlers.nextID++
	c.handlers.itemRemoved = append(c.handlers.itemRemoved, handler[func(Item)]{c.handlers.nextID, fn})
	return c.handlers.handle(EventItemRemoved)
}

// OnCanvasClicked registers a callback for left presses on empty canvas. The
// point is in scene space.
func (c *Canvas) OnCanvasClicked(fn func(scene Vec2)) CallbackHandle {
	c.handlers.nextID++
	c.handlers.canvasClicked = append(c.handlers.canvasClicked, handler[func(Vec2)]{c.handlers.nextID, fn})
	return c.handlers.handle(EventCanvasClicked)
}

// OnCanvasDoubleClicked registers a callback for double clicks on empty canvas.
func (c *Canvas) OnCanvasDoubleClicked(fn func(scene Vec2)) CallbackHandle {
	c.handlers.nextID++
	c.handlers.canvasDoubleClicked = append(c.handlers.canvasDoubleClicked, handler[func(Vec2)]{c.handlers.nextID, fn})
	return c.handlers.handle(EventCanvasDoubleClicked)
}

// OnEditModeChanged registers a callback for edit mode toggles.
func (c *Canvas) OnEditModeChanged(fn func(editMode bool)) CallbackHandle {
	c.handlers.nextID++
	c.handlers.editModeChanged = append(c.handlers.editModeChanged, handler[func(bool)]{c.handlers.nextID, fn})
	return c.handlers.handle(EventEditModeChanged)
}

// SetEventSink sets the optional ECS bridge.
func (c *Canvas) SetEventSink(sink EventSink) {
	c.handlers.sink = sink
}

// --- Dispatch ---

func (r *handlerRegistry) emit(ev CanvasEvent) {
	if r.sink != nil {
		r.sink.EmitEvent(ev)
	}
}

func (r *handlerRegistry) fireSelectionChanged(sel []Item) {
	for _, h := range r.selectionChanged {
		h.fn(sel)
	}
	r.emit(CanvasEvent{Type: EventSelectionChanged, Selection: sel})
}

func (r *handlerRegistry) fireZoomChanged(z float64) {
	for _, h := range r.zoomChanged {
		h.fn(z)
	}
	r.emit(CanvasEvent{Type: EventZoomChanged, Zoom: z})
}

func (r *handlerRegistry) firePanChanged(p Vec2) {
	for _, h := range r.panChanged {
		h.fn(p)
	}
	r.emit(CanvasEvent{Type: EventPanChanged, Pan: p})
}

func (r *handlerRegistry) fireItemAdded(it Item) {
	for _, h := range r.itemAdded {
		h.fn(it)
	}
	r.emit(CanvasEvent{Type: EventItemAdded, Item: it})
}

func (r *handlerRegistry) fireItemRemoved(it Item) {
	for _, h := range r.itemRemoved {
		h.fn(it)
	}
	r.emit(CanvasEvent{Type: EventItemRemoved, Item: it})
}

func (r *handlerRegistry) fireCanvasClicked(p Vec2) {
	for _, h := range r.canvasClicked {
		h.fn(p)
	}
	r.emit(CanvasEvent{Type: EventCanvasClicked, Point: p})
}

func (r *handlerRegistry) fireCanvasDoubleClicked(p Vec2) {
	for _, h := range r.canvasDoubleClicked {
		h.fn(p)
	}
	r.emit(CanvasEvent{Type: EventCanvasDoubleClicked, Point: p})
}

func (r *handlerRegistry) fireEditModeChanged(on bool) {
	for _, h := range r.editModeChanged {
		h.fn(on)
	}
	r.emit(CanvasEvent{Type: EventEditModeChanged, EditMode: on})
}
