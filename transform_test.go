package picker

import (
	"math"
	"testing"
)

func TestNewViewTransformMapsPoints(t *testing.T) {
	m := NewViewTransform(2, Vec2{100, 50})
	got := m.Apply(Vec2{10, 20})
	if !vecApprox(got, Vec2{120, 90}, epsilon) {
		t.Errorf("Apply = %v, want (120, 90)", got)
	}
}

func TestTransformInvertRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		m    Transform
	}{
		{"identity", IdentityTransform},
		{"view", NewViewTransform(1.7, Vec2{-30, 12})},
		{"general", Transform{2, 0.5, -0.3, 1.5, 7, -4}},
	}
	points := []Vec2{{0, 0}, {1, 1}, {-250.5, 1e4}, {3.25, -8}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, ok := tt.m.Invert()
			if !ok {
				t.Fatal("Invert reported singular")
			}
			for _, p := range points {
				back := inv.Apply(tt.m.Apply(p))
				if !vecApprox(back, p, 1e-6) {
					t.Errorf("round trip %v -> %v", p, back)
				}
			}
		})
	}
}

func TestTransformInvertSingular(t *testing.T) {
	inv, ok := Transform{0, 0, 0, 0, 5, 5}.Invert()
	if ok {
		t.Error("Invert of singular matrix reported ok")
	}
	if inv != IdentityTransform {
		t.Errorf("singular Invert = %v, want identity", inv)
	}
}

func TestTransformMultiplyOrder(t *testing.T) {
	scale := NewViewTransform(2, Vec2{})
	move := Transform{1, 0, 0, 1, 10, 0}
	// move applied first, then scale
	got := scale.Multiply(move).Apply(Vec2{1, 1})
	if !vecApprox(got, Vec2{22, 2}, epsilon) {
		t.Errorf("scale*move = %v, want (22, 2)", got)
	}
}

func TestTransformApplyRect(t *testing.T) {
	m := NewViewTransform(2, Vec2{10, 10})
	got := m.ApplyRect(Rect{X: 0, Y: 0, Width: 5, Height: 10})
	want := Rect{X: 10, Y: 10, Width: 10, Height: 20}
	if got != want {
		t.Errorf("ApplyRect = %v, want %v", got, want)
	}

	rot := Transform{0, 1, -1, 0, 0, 0} // 90 degrees
	got = rot.ApplyRect(Rect{Width: 4, Height: 2})
	want = Rect{X: -2, Y: 0, Width: 2, Height: 4}
	if !approxEqual(got.X, want.X, epsilon) || !approxEqual(got.Width, want.Width, epsilon) ||
		!approxEqual(got.Y, want.Y, epsilon) || !approxEqual(got.Height, want.Height, epsilon) {
		t.Errorf("rotated ApplyRect = %v, want %v", got, want)
	}
}

func TestTransformGeoMMatches(t *testing.T) {
	m := Transform{1.5, 0.25, -0.5, 2, 30, -7}
	g := m.GeoM()
	for _, p := range []Vec2{{0, 0}, {3, 4}, {-10, 2.5}} {
		gx, gy := g.Apply(p.X, p.Y)
		want := m.Apply(p)
		if !approxEqual(gx, want.X, 1e-9) || !approxEqual(gy, want.Y, 1e-9) {
			t.Errorf("GeoM.Apply(%v) = (%v, %v), want %v", p, gx, gy, want)
		}
	}
}

func TestCoordinateTransformItemSpaces(t *testing.T) {
	ct := NewCoordinateTransform(NewViewTransform(2, Vec2{5, 5}))
	b := newBox("b", 100, 200, 10, 10)

	scene := ct.LocalToScene(b, Vec2{1, 2})
	if scene != (Vec2{101, 202}) {
		t.Errorf("LocalToScene = %v, want (101, 202)", scene)
	}
	screen := ct.LocalToScreen(b, Vec2{1, 2})
	if !vecApprox(screen, Vec2{207, 409}, epsilon) {
		t.Errorf("LocalToScreen = %v, want (207, 409)", screen)
	}
	if back := ct.ScreenToLocal(b, screen); !vecApprox(back, Vec2{1, 2}, epsilon) {
		t.Errorf("ScreenToLocal = %v, want (1, 2)", back)
	}
	if local := ct.SceneToLocal(b, Vec2{100, 200}); local != (Vec2{}) {
		t.Errorf("SceneToLocal = %v, want origin", local)
	}

	// items without a position use a zero offset
	if got := ct.LocalToScene("label", Vec2{3, 4}); got != (Vec2{3, 4}) {
		t.Errorf("LocalToScene of unpositioned item = %v, want (3, 4)", got)
	}
}

func TestCoordinateTransformSingularPassesThrough(t *testing.T) {
	ct := NewCoordinateTransform(Transform{})
	p := Vec2{12, 34}
	if got := ct.ScreenToScene(p); got != p {
		t.Errorf("ScreenToScene with singular view = %v, want %v", got, p)
	}
}

func TestScreenSceneRoundTripAcrossZooms(t *testing.T) {
	for _, zoom := range []float64{0.1, 0.37, 1, 2.5, 10} {
		ct := NewCoordinateTransform(NewViewTransform(zoom, Vec2{-123.4, 56.7}))
		for _, p := range []Vec2{{0, 0}, {640, 480}, {-1e3, 3.3}} {
			back := ct.SceneToScreen(ct.ScreenToScene(p))
			if !vecApprox(back, p, 1e-9*math.Max(1, math.Abs(p.X)+math.Abs(p.Y))) {
				t.Errorf("zoom %v: round trip %v -> %v", zoom, p, back)
			}
		}
	}
}
