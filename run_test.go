package picker

import (
	"strings"
	"testing"
)

func TestFmtStatus(t *testing.T) {
	info := CanvasInfo{
		Items: 12, Selected: 3, Zoom: 1.5, Pan: Vec2{-20, 40.4},
		GridSize: 10, GridVisible: true, SnapToGrid: false,
	}
	got := fmtStatus(info, "edit", 59.96)
	for _, want := range []string{
		"items: 12", "selected: 3", "mode: edit",
		"zoom: 150%", "pan: (-20, 40)",
		"grid: 10", "snap: off", "FPS: 60.0",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("status %q missing %q", got, want)
		}
	}

	info.GridVisible, info.SnapToGrid = false, true
	got = fmtStatus(info, "view", 0)
	if !strings.Contains(got, "grid: off") || !strings.Contains(got, "snap: on") {
		t.Errorf("status %q", got)
	}
}

func TestLongestLine(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"ab\nabcde\nx", 5},
		{"abc\n", 3},
	}
	for _, tt := range tests {
		if got := longestLine(tt.in); got != tt.want {
			t.Errorf("longestLine(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
