package picker

import "math"

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromPoints returns the normalized rectangle spanned by two corners,
// regardless of which corner comes first.
func RectFromPoints(a, b Vec2) Rect {
	return Rect{
		X:      math.Min(a.X, b.X),
		Y:      math.Min(a.Y, b.Y),
		Width:  math.Abs(b.X - a.X),
		Height: math.Abs(b.Y - a.Y),
	}
}

// Normalize returns r with non-negative width and height, covering the same area.
func (r Rect) Normalize() Rect {
	return RectFromPoints(Vec2{r.X, r.Y}, Vec2{r.X + r.Width, r.Y + r.Height})
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// IsEmpty reports whether the rectangle has zero (or negative) area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	minX := math.Min(r.X, other.X)
	minY := math.Min(r.Y, other.Y)
	maxX := math.Max(r.Right(), other.Right())
	maxY := math.Max(r.Bottom(), other.Bottom())
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Translate returns r moved by d.
func (r Rect) Translate(d Vec2) Rect {
	return Rect{X: r.X + d.X, Y: r.Y + d.Y, Width: r.Width, Height: r.Height}
}

// Inset grows (negative d) or shrinks (positive d) the rectangle on every side.
func (r Rect) Inset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width - 2*dx, Height: r.Height - 2*dy}
}

// Line is a segment between two points. Grid lines are emitted as Lines in
// screen space.
type Line struct {
	From, To Vec2
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Has reports whether all bits of m2 are set in m.
func (m KeyModifiers) Has(m2 KeyModifiers) bool { return m&m2 == m2 }

// Key identifies a keyboard key the canvas reacts to.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyA
	KeyF
	KeyDelete
	KeyHome
	KeyPlus
	KeyMinus
	Key0
	KeyEscape
)

// EventType identifies a kind of canvas notification.
type EventType uint8

const (
	EventSelectionChanged    EventType = iota // selection set mutated
	EventZoomChanged                          // zoom factor committed
	EventPanChanged                           // pan offset committed
	EventItemAdded                            // item added to the collection
	EventItemRemoved                          // item removed from the collection
	EventCanvasClicked                        // left press on empty canvas
	EventCanvasDoubleClicked                  // double click on empty canvas
	EventEditModeChanged                      // edit mode toggled
)

// String returns a short name, used in debug output.
func (e EventType) String() string {
	switch e {
	case EventSelectionChanged:
		return "selection-changed"
	case EventZoomChanged:
		return "zoom-changed"
	case EventPanChanged:
		return "pan-changed"
	case EventItemAdded:
		return "item-added"
	case EventItemRemoved:
		return "item-removed"
	case EventCanvasClicked:
		return "canvas-clicked"
	case EventCanvasDoubleClicked:
		return "canvas-double-clicked"
	case EventEditModeChanged:
		return "edit-mode-changed"
	default:
		return "unknown"
	}
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
