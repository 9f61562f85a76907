package picker

import "testing"

func TestLabelCacheSweepReleasesUnused(t *testing.T) {
	rendered := map[string]int{}
	var released []string
	lc := newLabelCache(
		func(caption string) string { rendered[caption]++; return caption },
		func(v string) { released = append(released, v) },
	)

	lc.get("ok")
	lc.get("cancel")
	lc.sweep()
	if lc.size() != 2 || len(released) != 0 {
		t.Fatalf("size = %d released = %v after first frame", lc.size(), released)
	}

	// "cancel" was renamed to "close"
	lc.get("ok")
	lc.get("close")
	lc.sweep()
	if len(released) != 1 || released[0] != "cancel" {
		t.Errorf("released = %v, want [cancel]", released)
	}
	if rendered["ok"] != 1 {
		t.Errorf("ok rendered %d times, want 1", rendered["ok"])
	}

	lc.sweep() // nothing drawn
	if lc.size() != 0 || len(released) != 3 {
		t.Errorf("size = %d released = %v, want everything released", lc.size(), released)
	}
}
