package picker

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func vecApprox(a, b Vec2, eps float64) bool {
	return approxEqual(a.X, b.X, eps) && approxEqual(a.Y, b.Y, eps)
}

// box is a minimal item with every capability.
type box struct {
	name     string
	pos      Vec2
	w, h     float64
	z        int
	selected bool
}

func newBox(name string, x, y, w, h float64) *box {
	return &box{name: name, pos: Vec2{x, y}, w: w, h: h}
}

func (b *box) Position() Vec2 { return b.pos }
func (b *box) SetPosition(p Vec2) { b.pos = p }
func (b *box) LocalBounds() Rect { return Rect{Width: b.w, Height: b.h} }
func (b *box) IsSelected() bool { return b.selected }
func (b *box) SetSelected(s bool) { b.selected = s }
func (b *box) Z() int { return b.z }
func (b *box) String() string { return b.name }

// marker is an item with a position but no size.
type marker struct{ pos Vec2 }

func (m *marker) Position() Vec2 { return m.pos }
func (m *marker) SetPosition(p Vec2) { m.pos = p }

func TestRectFromPointsNormalizes(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
	}{
		{"top-left to bottom-right", Vec2{10, 20}, Vec2{50, 60}},
		{"bottom-right to top-left", Vec2{50, 60}, Vec2{10, 20}},
		{"top-right to bottom-left", Vec2{50, 20}, Vec2{10, 60}},
		{"bottom-left to top-right", Vec2{10, 60}, Vec2{50, 20}},
	}
	want := Rect{X: 10, Y: 20, Width: 40, Height: 40}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RectFromPoints(tt.a, tt.b); got != want {
				t.Errorf("RectFromPoints = %v, want %v", got, want)
			}
		})
	}
}

func TestRectIntersectsEdgeTouching(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"shared edge", Rect{X: 10, Y: 0, Width: 10, Height: 10}, true},
		{"shared corner", Rect{X: 10, Y: 10, Width: 5, Height: 5}, true},
		{"contained", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"apart", Rect{X: 11, Y: 0, Width: 5, Height: 5}, false},
		{"below", Rect{X: 0, Y: 10.5, Width: 5, Height: 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.b, got, tt.want)
			}
			if got := tt.b.Intersects(a); got != tt.want {
				t.Errorf("reverse Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectUnionAndCenter(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 20, Y: -10, Width: 5, Height: 5}
	u := a.Union(b)
	want := Rect{X: 0, Y: -10, Width: 25, Height: 20}
	if u != want {
		t.Errorf("Union = %v, want %v", u, want)
	}
	if c := u.Center(); c != (Vec2{12.5, 0}) {
		t.Errorf("Center = %v, want (12.5, 0)", c)
	}
}

func TestRectIsEmpty(t *testing.T) {
	if !(Rect{Width: 0, Height: 5}).IsEmpty() {
		t.Error("zero width should be empty")
	}
	if (Rect{Width: 1, Height: 1}).IsEmpty() {
		t.Error("1x1 should not be empty")
	}
}

func TestKeyModifiersHas(t *testing.T) {
	m := ModCtrl | ModShift
	if !m.Has(ModCtrl) || !m.Has(ModShift) || m.Has(ModAlt) {
		t.Errorf("Has on %b wrong", m)
	}
	if !m.Has(ModCtrl | ModShift) {
		t.Error("Has(Ctrl|Shift) = false, want true")
	}
}

func TestEventTypeString(t *testing.T) {
	if got := EventSelectionChanged.String(); got == "unknown" || got == "" {
		t.Errorf("EventSelectionChanged.String() = %q", got)
	}
	if got := EventType(200).String(); got != "unknown" {
		t.Errorf("EventType(200).String() = %q, want unknown", got)
	}
}

func TestSceneBounds(t *testing.T) {
	b := newBox("a", 10, 20, 30, 40)
	r, ok := SceneBounds(b)
	if !ok || r != (Rect{X: 10, Y: 20, Width: 30, Height: 40}) {
		t.Errorf("SceneBounds = %v, %v", r, ok)
	}
	if _, ok := SceneBounds(&marker{}); ok {
		t.Error("SceneBounds of unsized item should fail")
	}
}
