package picker

import "testing"

func TestSetDebugMode(t *testing.T) {
	c := newTestCanvas(false)
	if c.debug {
		t.Fatal("debug on by default")
	}
	c.SetDebugMode(true)
	if !c.debug {
		t.Fatal("SetDebugMode(true) did not enable debug")
	}
	// Warnings go to stderr; items without size are still accepted.
	m := &marker{pos: Vec2{3, 4}}
	c.AddItem(m, nil)
	if len(c.Items()) != 1 {
		t.Errorf("items = %d, want 1", len(c.Items()))
	}
	if c.ItemAt(Vec2{3, 4}) != nil {
		t.Error("item without size was hit")
	}
	c.SetDebugMode(false)
	if c.debug {
		t.Error("SetDebugMode(false) did not disable debug")
	}
}
