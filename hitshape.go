package picker

import "math"

// HitShape is used for custom hit testing regions, in local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a simple polygon hit area in local coordinates, convex or
// concave, in either winding order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside the polygon or on its boundary.
// Interior points are found with an even-odd ray cast.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		a, b := p.Points[i], p.Points[j]
		if onSegment(a, b, x, y) {
			return true
		}
		if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// onSegment reports whether (x, y) lies on the segment ab.
func onSegment(a, b Vec2, x, y float64) bool {
	cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
	if cross != 0 {
		return false
	}
	return x >= math.Min(a.X, b.X) && x <= math.Max(a.X, b.X) &&
		y >= math.Min(a.Y, b.Y) && y <= math.Max(a.Y, b.Y)
}

// itemContainsLocal tests whether a local-space point falls inside an item's
// hit region. Uses the item's HitShape if it has one; otherwise its local
// bounds. Items with neither are not hit-testable.
func itemContainsLocal(item Item, lx, ly float64) bool {
	if h, ok := item.(HitTester); ok {
		if shape := h.HitShape(); shape != nil {
			return shape.Contains(lx, ly)
		}
	}
	s, ok := item.(Sized)
	if !ok {
		return false
	}
	b := s.LocalBounds()
	if b.Width == 0 && b.Height == 0 {
		return false
	}
	return b.Contains(lx, ly)
}
