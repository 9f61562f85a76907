package picker

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Colors used by Canvas.Draw.
var (
	gridColor      = color.RGBA{R: 60, G: 60, B: 72, A: 255}
	itemColor      = color.RGBA{R: 150, G: 160, B: 180, A: 255}
	selectedColor  = color.RGBA{R: 80, G: 180, B: 255, A: 255}
	bandFillColor  = color.RGBA{R: 40, G: 90, B: 140, A: 60}
	bandEdgeColor  = color.RGBA{R: 80, G: 180, B: 255, A: 200}
	statusBgColor  = color.RGBA{A: 128}
	labelImageSize = [2]int{128, 16}
)

// Glyph advance and line height of ebitenutil.DebugPrint.
const (
	debugPrintCharW = 6
	debugPrintLineH = 16
)

// labelCache holds one pre-rendered label per caption. Entries not requested
// since the previous sweep are released, so renamed or removed items do not
// keep their labels alive.
type labelCache[T any] struct {
	entries map[string]T
	used    map[string]struct{}
	render  func(caption string) T
	release func(T)
}

func newLabelCache[T any](render func(string) T, release func(T)) *labelCache[T] {
	return &labelCache[T]{
		entries: make(map[string]T),
		used:    make(map[string]struct{}),
		render:  render,
		release: release,
	}
}

func (lc *labelCache[T]) get(caption string) T {
	lc.used[caption] = struct{}{}
	if v, ok := lc.entries[caption]; ok {
		return v
	}
	v := lc.render(caption)
	lc.entries[caption] = v
	return v
}

// sweep releases every entry not requested since the last sweep.
func (lc *labelCache[T]) sweep() {
	for caption, v := range lc.entries {
		if _, ok := lc.used[caption]; !ok {
			lc.release(v)
			delete(lc.entries, caption)
		}
	}
	clear(lc.used)
}

func (lc *labelCache[T]) size() int { return len(lc.entries) }

// renderLabel draws caption into a new image. Captions are drawn in local
// space and placed with the item's local-to-screen GeoM.
func renderLabel(caption string) *ebiten.Image {
	img := ebiten.NewImage(labelImageSize[0], labelImageSize[1])
	ebitenutil.DebugPrint(img, caption)
	return img
}

// Draw paints the grid, item outlines, selection highlights and the rubber
// band onto screen. Per-kind widget painting is left to the host.
func (c *Canvas) Draw(screen *ebiten.Image) {
	view := c.viewport.Transform()

	vertical, horizontal := c.grid.Lines(c.ViewportRect(), view)
	for l := range vertical {
		strokeLine(screen, l, 1, gridColor)
	}
	for l := range horizontal {
		strokeLine(screen, l, 1, gridColor)
	}

	if c.labels == nil {
		c.labels = newLabelCache(renderLabel, (*ebiten.Image).Deallocate)
	}
	for _, it := range c.Items() {
		clr, width := itemColor, float32(1)
		if c.selection.IsSelected(it) {
			clr, width = selectedColor, 2
		}
		c.drawItem(screen, view, it, width, clr)
	}
	c.labels.sweep()

	if band := c.selection.RubberBand(); band.Active() {
		r := view.ApplyRect(band.Rect())
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), bandFillColor, false)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, bandEdgeColor, false)
	}
}

// drawItem outlines an item's hit shape, or its bounds when it has none, and
// draws its caption.
func (c *Canvas) drawItem(screen *ebiten.Image, view Transform, it Item, width float32, clr color.Color) {
	p, ok := it.(Positionable)
	if !ok {
		return
	}
	local := view.Multiply(Transform{1, 0, 0, 1, p.Position().X, p.Position().Y})

	var shape HitShape
	if h, ok := it.(HitTester); ok {
		shape = h.HitShape()
	}
	if shape == nil {
		s, ok := it.(Sized)
		if !ok {
			return
		}
		b := s.LocalBounds()
		shape = HitRect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
	}

	switch s := shape.(type) {
	case HitCircle:
		ctr := local.Apply(Vec2{s.CenterX, s.CenterY})
		vector.StrokeCircle(screen, float32(ctr.X), float32(ctr.Y), float32(s.Radius*local[0]), width, clr, true)
	case HitPolygon:
		for i := range s.Points {
			a := local.Apply(s.Points[i])
			b := local.Apply(s.Points[(i+1)%len(s.Points)])
			strokeLine(screen, Line{From: a, To: b}, width, clr)
		}
	case HitRect:
		r := local.ApplyRect(Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height})
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), width, clr, false)
	}

	cp, ok := it.(Captioned)
	if !ok || cp.Caption() == "" {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(4, 4)
	op.GeoM.Concat(local.GeoM())
	screen.DrawImage(c.labels.get(cp.Caption()), &op)
}

func strokeLine(screen *ebiten.Image, l Line, width float32, clr color.Color) {
	vector.StrokeLine(screen, float32(l.From.X), float32(l.From.Y), float32(l.To.X), float32(l.To.Y), width, clr, false)
}

// drawStatus prints the canvas state in the top-left corner.
func (c *Canvas) drawStatus(screen *ebiten.Image) {
	info := c.Info()
	mode := "view"
	if info.EditMode {
		mode = "edit"
	}
	msg := fmtStatus(info, mode, ebiten.ActualFPS())
	w := float32(longestLine(msg)*debugPrintCharW + 8)
	h := float32((strings.Count(msg, "\n") + 1) * debugPrintLineH)
	vector.DrawFilledRect(screen, 0, 0, w, h, statusBgColor, false)
	ebitenutil.DebugPrint(screen, msg)
}
