package picker

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"
)

// Alignment tools. Every function works on the scene bounds of the given
// items and moves them through SetPosition; items that are not both
// Positionable and Sized are skipped and do not count toward the minimum
// item count an operation needs.

// placed is an item with the scene bounds it had when the operation started.
type placed struct {
	item   Positionable
	bounds Rect
}

func collectPlaced(items []Item) []placed {
	out := make([]placed, 0, len(items))
	for _, it := range items {
		b, ok := SceneBounds(it)
		if !ok {
			continue
		}
		out = append(out, placed{item: it.(Positionable), bounds: b})
	}
	return out
}

func toR2(v Vec2) r2.Vec   { return r2.Vec{X: v.X, Y: v.Y} }
func fromR2(v r2.Vec) Vec2 { return Vec2{X: v.X, Y: v.Y} }

// moveBy translates the item by d.
func (p placed) moveBy(d r2.Vec) {
	p.item.SetPosition(fromR2(r2.Add(toR2(p.item.Position()), d)))
}

// moveTo translates the item so its bounds' top-left lands on corner.
func (p placed) moveTo(corner r2.Vec) {
	p.moveBy(r2.Sub(corner, r2.Vec{X: p.bounds.X, Y: p.bounds.Y}))
}

// alignX moves each item horizontally so that edge(bounds) equals target,
// where target is computed over all items.
func alignX(items []Item, target func([]placed) float64, edge func(Rect) float64) {
	ps := collectPlaced(items)
	if len(ps) < 2 {
		return
	}
	t := target(ps)
	for _, p := range ps {
		p.moveBy(r2.Vec{X: t - edge(p.bounds)})
	}
}

func alignY(items []Item, target func([]placed) float64, edge func(Rect) float64) {
	ps := collectPlaced(items)
	if len(ps) < 2 {
		return
	}
	t := target(ps)
	for _, p := range ps {
		p.moveBy(r2.Vec{Y: t - edge(p.bounds)})
	}
}

func minLeft(ps []placed) float64 {
	v := math.Inf(1)
	for _, p := range ps {
		v = math.Min(v, p.bounds.X)
	}
	return v
}

func maxRight(ps []placed) float64 {
	v := math.Inf(-1)
	for _, p := range ps {
		v = math.Max(v, p.bounds.Right())
	}
	return v
}

func minTop(ps []placed) float64 {
	v := math.Inf(1)
	for _, p := range ps {
		v = math.Min(v, p.bounds.Y)
	}
	return v
}

func maxBottom(ps []placed) float64 {
	v := math.Inf(-1)
	for _, p := range ps {
		v = math.Max(v, p.bounds.Bottom())
	}
	return v
}

func left(r Rect) float64    { return r.X }
func right(r Rect) float64   { return r.Right() }
func centerX(r Rect) float64 { return r.X + r.Width/2 }
func top(r Rect) float64     { return r.Y }
func bottom(r Rect) float64  { return r.Bottom() }
func middleY(r Rect) float64 { return r.Y + r.Height/2 }

// AlignLeft lines up the left edges of at least two items with the leftmost.
func AlignLeft(items []Item) { alignX(items, minLeft, left) }

// AlignRight lines up the right edges of at least two items with the
// rightmost.
func AlignRight(items []Item) { alignX(items, maxRight, right) }

// AlignCenterHorizontal centers at least two items on the vertical line
// through the middle of their combined bounds.
func AlignCenterHorizontal(items []Item) {
	alignX(items, func(ps []placed) float64 { return (minLeft(ps) + maxRight(ps)) / 2 }, centerX)
}

// AlignTop lines up the top edges of at least two items with the topmost.
func AlignTop(items []Item) { alignY(items, minTop, top) }

// AlignBottom lines up the bottom edges of at least two items with the
// bottommost.
func AlignBottom(items []Item) { alignY(items, maxBottom, bottom) }

// AlignMiddleVertical centers at least two items on the horizontal line
// through the middle of their combined bounds.
func AlignMiddleVertical(items []Item) {
	alignY(items, func(ps []placed) float64 { return (minTop(ps) + maxBottom(ps)) / 2 }, middleY)
}

// DistributeHorizontal spreads the left edges of at least three items evenly
// between the leftmost and rightmost, which stay in place.
func DistributeHorizontal(items []Item) {
	ps := collectPlaced(items)
	if len(ps) < 3 {
		return
	}
	slices.SortStableFunc(ps, func(a, b placed) int { return cmp.Compare(a.bounds.X, b.bounds.X) })
	first, last := ps[0].bounds.X, ps[len(ps)-1].bounds.X
	step := (last - first) / float64(len(ps)-1)
	for i, p := range ps[1 : len(ps)-1] {
		p.moveBy(r2.Vec{X: first + step*float64(i+1) - p.bounds.X})
	}
}

// DistributeVertical spreads the top edges of at least three items evenly
// between the topmost and bottommost, which stay in place.
func DistributeVertical(items []Item) {
	ps := collectPlaced(items)
	if len(ps) < 3 {
		return
	}
	slices.SortStableFunc(ps, func(a, b placed) int { return cmp.Compare(a.bounds.Y, b.bounds.Y) })
	first, last := ps[0].bounds.Y, ps[len(ps)-1].bounds.Y
	step := (last - first) / float64(len(ps)-1)
	for i, p := range ps[1 : len(ps)-1] {
		p.moveBy(r2.Vec{Y: first + step*float64(i+1) - p.bounds.Y})
	}
}

// SpaceEvenlyHorizontal lays at least two items out left to right, in their
// current order, with spacing between neighbours. The leftmost stays put.
func SpaceEvenlyHorizontal(items []Item, spacing float64) {
	ps := collectPlaced(items)
	if len(ps) < 2 {
		return
	}
	slices.SortStableFunc(ps, func(a, b placed) int { return cmp.Compare(a.bounds.X, b.bounds.X) })
	x := ps[0].bounds.Right() + spacing
	for _, p := range ps[1:] {
		p.moveBy(r2.Vec{X: x - p.bounds.X})
		x += p.bounds.Width + spacing
	}
}

// SpaceEvenlyVertical lays at least two items out top to bottom, in their
// current order, with spacing between neighbours. The topmost stays put.
func SpaceEvenlyVertical(items []Item, spacing float64) {
	ps := collectPlaced(items)
	if len(ps) < 2 {
		return
	}
	slices.SortStableFunc(ps, func(a, b placed) int { return cmp.Compare(a.bounds.Y, b.bounds.Y) })
	y := ps[0].bounds.Bottom() + spacing
	for _, p := range ps[1:] {
		p.moveBy(r2.Vec{Y: y - p.bounds.Y})
		y += p.bounds.Height + spacing
	}
}

// ArrangeInGrid places at least two items row by row, in the given order, on
// a grid with the given number of columns. Cells are as large as the largest
// item plus spacing; the grid starts at the top-left of the items' combined
// bounds.
func ArrangeInGrid(items []Item, columns int, spacing float64) {
	ps := collectPlaced(items)
	if len(ps) < 2 {
		return
	}
	columns = max(1, columns)
	var cell r2.Vec
	for _, p := range ps {
		cell.X = math.Max(cell.X, p.bounds.Width)
		cell.Y = math.Max(cell.Y, p.bounds.Height)
	}
	cell = r2.Add(cell, r2.Vec{X: spacing, Y: spacing})
	origin := r2.Vec{X: minLeft(ps), Y: minTop(ps)}
	for i, p := range ps {
		col, row := float64(i%columns), float64(i/columns)
		p.moveTo(r2.Add(origin, r2.Vec{X: col * cell.X, Y: row * cell.Y}))
	}
}

// ArrangeInCircle places at least two items evenly around a circle, in the
// given order, starting at angle 0 and proceeding clockwise on screen. Each
// item's top-left lands on the circle. A nil center uses the mean of the
// items' top-left corners.
func ArrangeInCircle(items []Item, radius float64, center *Vec2) {
	ps := collectPlaced(items)
	if len(ps) < 2 {
		return
	}
	var c r2.Vec
	if center != nil {
		c = toR2(*center)
	} else {
		for _, p := range ps {
			c = r2.Add(c, r2.Vec{X: p.bounds.X, Y: p.bounds.Y})
		}
		c = r2.Scale(1/float64(len(ps)), c)
	}
	start := r2.Add(c, r2.Vec{X: radius})
	step := 2 * math.Pi / float64(len(ps))
	for i, p := range ps {
		p.moveTo(r2.Rotate(start, step*float64(i), c))
	}
}
