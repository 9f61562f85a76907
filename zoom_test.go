package picker

import "testing"

func TestZoomManagerDefaults(t *testing.T) {
	z := NewZoomManager()
	if z.Zoom() != 1.0 {
		t.Errorf("Zoom = %v, want 1.0", z.Zoom())
	}
	lo, hi := z.Limits()
	if lo != DefaultMinZoom || hi != DefaultMaxZoom {
		t.Errorf("Limits = (%v, %v), want (%v, %v)", lo, hi, DefaultMinZoom, DefaultMaxZoom)
	}
	if z.Step() != DefaultZoomStep {
		t.Errorf("Step = %v, want %v", z.Step(), DefaultZoomStep)
	}
}

func TestZoomManagerSetZoomClamps(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.5, 0.5},
		{0.01, 0.1},
		{-3, 0.1},
		{50, 10},
		{10, 10},
	}
	for _, tt := range tests {
		z := NewZoomManager()
		if got := z.SetZoom(tt.in); got != tt.want {
			t.Errorf("SetZoom(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestZoomManagerNotifyThreshold(t *testing.T) {
	z := NewZoomManager()
	var calls []float64
	z.OnChange(func(v float64) { calls = append(calls, v) })

	z.SetZoom(1.0005) // below threshold
	if len(calls) != 0 {
		t.Errorf("sub-threshold change notified: %v", calls)
	}
	if z.Zoom() != 1.0005 {
		t.Errorf("sub-threshold change not stored: %v", z.Zoom())
	}
	z.SetZoom(1.5)
	if len(calls) != 1 || calls[0] != 1.5 {
		t.Errorf("calls = %v, want [1.5]", calls)
	}
	z.SetZoom(99) // clamps to 10
	z.SetZoom(99) // no change
	if len(calls) != 2 || calls[1] != 10 {
		t.Errorf("calls = %v, want [1.5 10]", calls)
	}
}

func TestZoomManagerSteps(t *testing.T) {
	z := NewZoomManager()
	z.ZoomIn()
	if !approxEqual(z.Zoom(), 1.1, epsilon) {
		t.Errorf("ZoomIn = %v, want 1.1", z.Zoom())
	}
	z.ZoomOut()
	z.ZoomOut()
	if !approxEqual(z.Zoom(), 0.9, epsilon) {
		t.Errorf("ZoomOut x2 = %v, want 0.9", z.Zoom())
	}
	z.SetStep(0.5)
	z.ZoomIn()
	if !approxEqual(z.Zoom(), 1.4, epsilon) {
		t.Errorf("ZoomIn step 0.5 = %v, want 1.4", z.Zoom())
	}
	z.SetStep(-1) // ignored
	if z.Step() != 0.5 {
		t.Errorf("Step = %v after invalid SetStep", z.Step())
	}
}

func TestZoomManagerZoomOutStopsAtMin(t *testing.T) {
	z := NewZoomManager()
	for range 50 {
		z.ZoomOut()
	}
	if z.Zoom() != DefaultMinZoom {
		t.Errorf("Zoom = %v, want %v", z.Zoom(), DefaultMinZoom)
	}
}

func TestZoomManagerZoomToFit(t *testing.T) {
	z := NewZoomManager()
	got := z.ZoomToFit(Rect{Width: 200, Height: 100}, Rect{Width: 800, Height: 600}, DefaultFitMargin)
	// min(800/200, 600/100) * 0.9
	if !approxEqual(got, 3.6, epsilon) {
		t.Errorf("ZoomToFit = %v, want 3.6", got)
	}
}

func TestZoomManagerZoomToFitDegenerate(t *testing.T) {
	z := NewZoomManager()
	z.SetZoom(2)
	if got := z.ZoomToFit(Rect{Width: 0, Height: 100}, Rect{Width: 800, Height: 600}, 0.9); got != 2 {
		t.Errorf("ZoomToFit(empty content) = %v, want 2", got)
	}
	if got := z.ZoomToFit(Rect{Width: 10, Height: 10}, Rect{}, 0.9); got != 2 {
		t.Errorf("ZoomToFit(empty viewport) = %v, want 2", got)
	}
}

func TestZoomManagerSetLimits(t *testing.T) {
	z := NewZoomManager()
	z.SetZoom(5)
	z.SetLimits(0.5, 2)
	if z.Zoom() != 2 {
		t.Errorf("Zoom after SetLimits = %v, want 2", z.Zoom())
	}
	z.SetLimits(0, 0)
	lo, hi := z.Limits()
	if lo != 0.01 || hi != 0.01 {
		t.Errorf("Limits = (%v, %v), want (0.01, 0.01)", lo, hi)
	}
}
