package picker

// Item is anything the canvas can hold. The canvas never looks inside an
// item; it probes for the capability interfaces below and skips items that
// lack the one an operation needs. Items are compared by identity, so they
// must be comparable values (normally pointers).
type Item any

// Positionable is implemented by items with a scene-space position.
type Positionable interface {
	Position() Vec2
	SetPosition(p Vec2)
}

// Sized is implemented by items with a local-space bounding rectangle.
type Sized interface {
	LocalBounds() Rect
}

// Selectable is implemented by items that track their own selected flag.
// SelectionManager keeps the flag in sync with the selection set.
type Selectable interface {
	IsSelected() bool
	SetSelected(selected bool)
}

// HitTester is implemented by items whose clickable area is not their full
// bounding rectangle. The shape is expressed in local space.
type HitTester interface {
	HitShape() HitShape
}

// ZOrdered is implemented by items that carry a stacking order. Items without
// it sit at z = 0.
type ZOrdered interface {
	Z() int
}

// Captioned is implemented by items with a text label drawn by the host loop.
type Captioned interface {
	Caption() string
}

// ItemSource enumerates every item of the host collection.
type ItemSource interface {
	Items() []Item
}

// ItemsFunc adapts a plain function to ItemSource.
type ItemsFunc func() []Item

// Items calls f.
func (f ItemsFunc) Items() []Item { return f() }

// SceneBounds returns the scene-space bounding rectangle of item, and false if
// the item is missing either Positionable or Sized.
func SceneBounds(item Item) (Rect, bool) {
	p, ok := item.(Positionable)
	if !ok {
		return Rect{}, false
	}
	s, ok := item.(Sized)
	if !ok {
		return Rect{}, false
	}
	return s.LocalBounds().Translate(p.Position()), true
}

// unionBounds returns the union of the scene bounds of every item that has
// them. ok is false when no item qualified.
func unionBounds(items []Item) (union Rect, ok bool) {
	for _, it := range items {
		r, has := SceneBounds(it)
		if !has {
			continue
		}
		if !ok {
			union = r
			ok = true
			continue
		}
		union = union.Union(r)
	}
	return union, ok
}

func itemZ(item Item) int {
	if z, ok := item.(ZOrdered); ok {
		return z.Z()
	}
	return 0
}

// containsItem reports whether item is in the slice (linear scan).
func containsItem(items []Item, item Item) bool {
	for _, it := range items {
		if it == item {
			return true
		}
	}
	return false
}
