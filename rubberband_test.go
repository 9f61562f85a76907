package picker

import "testing"

func TestRubberBandLifecycle(t *testing.T) {
	b := NewRubberBand()
	if b.Active() {
		t.Fatal("new RubberBand is active")
	}
	var finished []Rect
	b.OnFinish(func(r Rect) { finished = append(finished, r) })

	b.Start(Vec2{10, 10})
	if !b.Active() || b.Rect() != (Rect{X: 10, Y: 10}) {
		t.Errorf("after Start: active %v rect %v", b.Active(), b.Rect())
	}
	b.Update(Vec2{30, 50})
	if b.Rect() != (Rect{X: 10, Y: 10, Width: 20, Height: 40}) {
		t.Errorf("after Update: rect %v", b.Rect())
	}
	r, ok := b.Finish(Vec2{40, 20})
	want := Rect{X: 10, Y: 10, Width: 30, Height: 10}
	if !ok || r != want {
		t.Errorf("Finish = %v, %v, want %v", r, ok, want)
	}
	if len(finished) != 1 || finished[0] != want {
		t.Errorf("finish callbacks = %v", finished)
	}
	if b.Active() || b.Rect() != (Rect{}) {
		t.Errorf("after Finish: active %v rect %v", b.Active(), b.Rect())
	}
}

func TestRubberBandDirectionIndependent(t *testing.T) {
	corners := [][2]Vec2{
		{{0, 0}, {100, 80}},
		{{100, 80}, {0, 0}},
		{{100, 0}, {0, 80}},
		{{0, 80}, {100, 0}},
	}
	want := Rect{X: 0, Y: 0, Width: 100, Height: 80}
	for _, c := range corners {
		b := NewRubberBand()
		b.Start(c[0])
		b.Update(c[1])
		if b.Rect() != want {
			t.Errorf("drag %v -> %v: rect %v, want %v", c[0], c[1], b.Rect(), want)
		}
		if b.Rect().Width < 0 || b.Rect().Height < 0 {
			t.Errorf("negative size %v", b.Rect())
		}
	}
}

func TestRubberBandIdleCalls(t *testing.T) {
	b := NewRubberBand()
	called := false
	b.OnFinish(func(Rect) { called = true })
	b.Update(Vec2{5, 5})
	if _, ok := b.Finish(Vec2{5, 5}); ok {
		t.Error("Finish on idle band reported ok")
	}
	if called || b.Rect() != (Rect{}) {
		t.Error("idle band emitted or changed")
	}
}

func TestRubberBandCancelEmitsNothing(t *testing.T) {
	b := NewRubberBand()
	called := false
	b.OnFinish(func(Rect) { called = true })
	b.Start(Vec2{0, 0})
	b.Update(Vec2{50, 50})
	b.Cancel()
	if called {
		t.Error("Cancel emitted a rectangle")
	}
	if b.Active() {
		t.Error("band active after Cancel")
	}
}

func TestItemsInRect(t *testing.T) {
	a := newBox("a", 0, 0, 10, 10)
	b := newBox("b", 20, 0, 10, 10)
	m := &marker{pos: Vec2{5, 5}}
	items := []Item{b, m, a}

	got := ItemsInRect(items, Rect{X: 5, Y: 5, Width: 20, Height: 2})
	if !sameItems(got, []Item{b, a}) {
		t.Errorf("ItemsInRect = %v, want [b a] in collection order", got)
	}
	if got := ItemsInRect(items, Rect{X: 100, Y: 100, Width: 5, Height: 5}); len(got) != 0 {
		t.Errorf("ItemsInRect far away = %v", got)
	}
}
