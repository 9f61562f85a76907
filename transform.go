package picker

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Transform is a 2D affine matrix.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Transform [6]float64

// IdentityTransform is the identity affine matrix.
var IdentityTransform = Transform{1, 0, 0, 1, 0, 0}

// NewViewTransform returns translate(pan) * scale(zoom), the matrix that maps
// scene space to screen space.
func NewViewTransform(zoom float64, pan Vec2) Transform {
	return Transform{zoom, 0, 0, zoom, pan.X, pan.Y}
}

// Multiply returns p * c (c is applied first).
func (p Transform) Multiply(c Transform) Transform {
	return Transform{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// Invert computes the inverse matrix. Returns the identity and false if the
// matrix is singular (determinant ≈ 0).
func (m Transform) Invert() (Transform, bool) {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return IdentityTransform, false
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Transform{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}, true
}

// Apply maps a point through the matrix.
func (m Transform) Apply(p Vec2) Vec2 {
	return Vec2{m[0]*p.X + m[2]*p.Y + m[4], m[1]*p.X + m[3]*p.Y + m[5]}
}

// ApplyRect maps the four corners of r and returns their axis-aligned bounds.
func (m Transform) ApplyRect(r Rect) Rect {
	p0 := m.Apply(Vec2{r.X, r.Y})
	p1 := m.Apply(Vec2{r.Right(), r.Y})
	p2 := m.Apply(Vec2{r.Right(), r.Bottom()})
	p3 := m.Apply(Vec2{r.X, r.Bottom()})

	minX := math.Min(math.Min(p0.X, p1.X), math.Min(p2.X, p3.X))
	minY := math.Min(math.Min(p0.Y, p1.Y), math.Min(p2.Y, p3.Y))
	maxX := math.Max(math.Max(p0.X, p1.X), math.Max(p2.X, p3.X))
	maxY := math.Max(math.Max(p0.Y, p1.Y), math.Max(p2.Y, p3.Y))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// GeoM converts the matrix into an ebiten.GeoM so a host can draw its own
// widget images with the current view applied.
func (m Transform) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[2])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 0, m[1])
	g.SetElement(1, 1, m[3])
	g.SetElement(1, 2, m[5])
	return g
}

// CoordinateTransform maps points between an item's local space, scene space
// and screen space for one fixed view matrix. It is a value: build a new one
// whenever the view changes.
type CoordinateTransform struct {
	view       Transform
	inv        Transform
	invertible bool
}

// NewCoordinateTransform captures view and its inverse.
func NewCoordinateTransform(view Transform) CoordinateTransform {
	inv, ok := view.Invert()
	return CoordinateTransform{view: view, inv: inv, invertible: ok}
}

// View returns the scene-to-screen matrix.
func (ct CoordinateTransform) View() Transform { return ct.view }

// SceneToScreen converts a scene-space point to screen pixels.
func (ct CoordinateTransform) SceneToScreen(p Vec2) Vec2 {
	return ct.view.Apply(p)
}

// ScreenToScene converts screen pixels to a scene-space point. If the view is
// not invertible the point is returned unchanged.
func (ct CoordinateTransform) ScreenToScene(p Vec2) Vec2 {
	if !ct.invertible {
		return p
	}
	return ct.inv.Apply(p)
}

// LocalToScene converts a point in item's local space to scene space.
func (ct CoordinateTransform) LocalToScene(item Item, p Vec2) Vec2 {
	return p.Add(itemOrigin(item))
}

// SceneToLocal converts a scene-space point to item's local space.
func (ct CoordinateTransform) SceneToLocal(item Item, p Vec2) Vec2 {
	return p.Sub(itemOrigin(item))
}

// LocalToScreen converts a point in item's local space to screen pixels.
func (ct CoordinateTransform) LocalToScreen(item Item, p Vec2) Vec2 {
	return ct.SceneToScreen(ct.LocalToScene(item, p))
}

// ScreenToLocal converts screen pixels to item's local space.
func (ct CoordinateTransform) ScreenToLocal(item Item, p Vec2) Vec2 {
	return ct.SceneToLocal(item, ct.ScreenToScene(p))
}

// itemOrigin is the scene-space origin of an item's local space. Items that
// cannot be positioned sit at the scene origin.
func itemOrigin(item Item) Vec2 {
	if p, ok := item.(Positionable); ok {
		return p.Position()
	}
	return Vec2{}
}
