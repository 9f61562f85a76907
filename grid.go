package picker

import (
	"iter"
	"math"
)

// DefaultGridSize is the default grid cell size in scene units.
const DefaultGridSize = 10

// Grid holds the grid cell size and the snap and visibility toggles.
type Grid struct {
	cellSize int
	snap     bool
	visible  bool
}

// NewGrid creates a hidden, non-snapping grid with the default cell size.
func NewGrid() *Grid {
	return &Grid{cellSize: DefaultGridSize}
}

// CellSize returns the grid cell size.
func (g *Grid) CellSize() int { return g.cellSize }

// SetCellSize sets the cell size; values below 1 become 1.
func (g *Grid) SetCellSize(size int) {
	g.cellSize = max(1, size)
}

// SnapEnabled reports whether SnapToGrid rounds points.
func (g *Grid) SnapEnabled() bool { return g.snap }

// SetSnapEnabled turns snapping on or off.
func (g *Grid) SetSnapEnabled(enabled bool) { g.snap = enabled }

// Visible reports whether Lines produces any lines.
func (g *Grid) Visible() bool { return g.visible }

// SetVisible shows or hides the grid.
func (g *Grid) SetVisible(visible bool) { g.visible = visible }

// SnapToGrid rounds p to the nearest grid intersection when snapping is
// enabled, and returns p unchanged otherwise.
func (g *Grid) SnapToGrid(p Vec2) Vec2 {
	if !g.snap {
		return p
	}
	return g.snapPoint(p)
}

func (g *Grid) snapPoint(p Vec2) Vec2 {
	cell := float64(g.cellSize)
	return Vec2{
		X: math.Round(p.X/cell) * cell,
		Y: math.Round(p.Y/cell) * cell,
	}
}

// SnapItems moves every Positionable item onto the nearest grid intersection,
// whether or not snapping is enabled. Other items are skipped.
func (g *Grid) SnapItems(items []Item) {
	for _, it := range items {
		if p, ok := it.(Positionable); ok {
			p.SetPosition(g.snapPoint(p.Position()))
		}
	}
}

// Lines returns the vertical and horizontal grid lines covering a screen-space
// viewport under transform t, in screen space. Both sequences are empty when
// the grid is hidden or t cannot be inverted. The sequences hold no state and
// can be iterated any number of times; each pass recomputes the lines.
func (g *Grid) Lines(viewport Rect, t Transform) (vertical, horizontal iter.Seq[Line]) {
	inv, ok := t.Invert()
	if !g.visible || !ok {
		return emptyLines, emptyLines
	}
	scene := inv.ApplyRect(viewport)
	cell := float64(g.cellSize)

	vertical = func(yield func(Line) bool) {
		start, n := gridSpan(scene.X, scene.Right(), cell)
		for i := 0; i <= n; i++ {
			x := start + float64(i)*cell
			from := t.Apply(Vec2{x, scene.Y})
			to := t.Apply(Vec2{x, scene.Bottom()})
			if !yield(Line{From: from, To: to}) {
				return
			}
		}
	}
	horizontal = func(yield func(Line) bool) {
		start, n := gridSpan(scene.Y, scene.Bottom(), cell)
		for i := 0; i <= n; i++ {
			y := start + float64(i)*cell
			from := t.Apply(Vec2{scene.X, y})
			to := t.Apply(Vec2{scene.Right(), y})
			if !yield(Line{From: from, To: to}) {
				return
			}
		}
	}
	return vertical, horizontal
}

// gridSpan returns the first grid coordinate at or below lo and the number of
// cell steps needed to reach the first grid coordinate at or above hi.
// Positions are start + i*cell so long spans do not accumulate rounding.
func gridSpan(lo, hi, cell float64) (start float64, steps int) {
	start = math.Floor(lo/cell) * cell
	end := math.Ceil(hi/cell) * cell
	return start, int(math.Round((end - start) / cell))
}

func emptyLines(func(Line) bool) {}
