package picker

// RubberBand is the drag-rectangle gesture: Idle -> Selecting -> Idle.
// Points are in scene space.
type RubberBand struct {
	active bool
	start  Vec2
	rect   Rect

	onFinish func(rect Rect)
}

// NewRubberBand creates an idle RubberBand.
func NewRubberBand() *RubberBand {
	return &RubberBand{}
}

// OnFinish sets the callback receiving the final rectangle of each completed
// gesture.
func (b *RubberBand) OnFinish(fn func(rect Rect)) { b.onFinish = fn }

// Active reports whether a gesture is in progress.
func (b *RubberBand) Active() bool { return b.active }

// Rect returns the current normalized rectangle. Zero when idle.
func (b *RubberBand) Rect() Rect { return b.rect }

// Start begins a gesture at p with a zero-size rectangle. Starting while
// already active restarts the gesture.
func (b *RubberBand) Start(p Vec2) {
	b.active = true
	b.start = p
	b.rect = Rect{X: p.X, Y: p.Y}
}

// Update stretches the rectangle from the start point to p. The rectangle is
// normalized, so the drag direction does not matter. No-op when idle.
func (b *RubberBand) Update(p Vec2) {
	if !b.active {
		return
	}
	b.rect = RectFromPoints(b.start, p)
}

// Finish completes the gesture at p, emits the final rectangle and returns to
// idle. ok is false if no gesture was active.
func (b *RubberBand) Finish(p Vec2) (rect Rect, ok bool) {
	if !b.active {
		return Rect{}, false
	}
	rect = RectFromPoints(b.start, p)
	b.reset()
	if b.onFinish != nil {
		b.onFinish(rect)
	}
	return rect, true
}

// Cancel discards the gesture without emitting anything.
func (b *RubberBand) Cancel() {
	b.reset()
}

func (b *RubberBand) reset() {
	b.active = false
	b.start = Vec2{}
	b.rect = Rect{}
}

// ItemsInRect returns the items whose scene bounds overlap rect, in the order
// given. Partial overlap (including a shared edge) is enough. Items without
// both Positionable and Sized are skipped.
func ItemsInRect(items []Item, rect Rect) []Item {
	var hits []Item
	for _, it := range items {
		r, ok := SceneBounds(it)
		if ok && rect.Intersects(r) {
			hits = append(hits, it)
		}
	}
	return hits
}
