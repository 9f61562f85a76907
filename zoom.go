package picker

import "math"

const (
	DefaultMinZoom  = 0.1
	DefaultMaxZoom  = 10.0
	DefaultZoomStep = 0.1

	// DefaultFitMargin is the fraction of the viewport ZoomToFit fills.
	DefaultFitMargin = 0.9

	// zoomEpsilon is the smallest zoom change that counts as a change.
	zoomEpsilon = 1e-3

	minZoomFloor = 0.01
)

// ZoomManager owns a zoom factor clamped to [min, max].
type ZoomManager struct {
	zoom     float64
	min, max float64
	step     float64

	onChange func(zoom float64)
}

// NewZoomManager creates a ZoomManager at zoom 1.0 with default limits and step.
func NewZoomManager() *ZoomManager {
	return &ZoomManager{
		zoom: 1.0,
		min:  DefaultMinZoom,
		max:  DefaultMaxZoom,
		step: DefaultZoomStep,
	}
}

// Zoom returns the current zoom factor.
func (z *ZoomManager) Zoom() float64 { return z.zoom }

// Limits returns the current zoom limits.
func (z *ZoomManager) Limits() (min, max float64) { return z.min, z.max }

// Step returns the additive step used by ZoomIn and ZoomOut.
func (z *ZoomManager) Step() float64 { return z.step }

// SetStep sets the additive step used by ZoomIn and ZoomOut.
func (z *ZoomManager) SetStep(step float64) {
	if step > 0 {
		z.step = step
	}
}

// OnChange sets the callback fired when the zoom changes by more than 1e-3.
func (z *ZoomManager) OnChange(fn func(zoom float64)) { z.onChange = fn }

// SetZoom clamps factor into the zoom limits and stores it. Returns the
// resulting zoom. Changes smaller than 1e-3 are stored but not reported.
func (z *ZoomManager) SetZoom(factor float64) float64 {
	newZoom, changed := z.set(factor)
	if changed && z.onChange != nil {
		z.onChange(newZoom)
	}
	return newZoom
}

// set stores the clamped zoom without notifying.
func (z *ZoomManager) set(factor float64) (float64, bool) {
	if math.IsNaN(factor) {
		return z.zoom, false
	}
	old := z.zoom
	z.zoom = clamp(factor, z.min, z.max)
	return z.zoom, math.Abs(z.zoom-old) > zoomEpsilon
}

// ZoomIn adds one step to the zoom.
func (z *ZoomManager) ZoomIn() float64 {
	return z.SetZoom(z.zoom + z.step)
}

// ZoomOut subtracts one step from the zoom.
func (z *ZoomManager) ZoomOut() float64 {
	return z.SetZoom(z.zoom - z.step)
}

// ZoomToFit sets the zoom so content fills margin of viewport on its tighter
// axis. If either rectangle has zero area the zoom is left unchanged.
func (z *ZoomManager) ZoomToFit(content, viewport Rect, margin float64) float64 {
	scale, ok := fitScale(content, viewport, margin)
	if !ok {
		return z.zoom
	}
	return z.SetZoom(scale)
}

// fitScale returns the unclamped zoom that fits content into viewport.
func fitScale(content, viewport Rect, margin float64) (float64, bool) {
	if content.IsEmpty() || viewport.IsEmpty() {
		return 0, false
	}
	return math.Min(viewport.Width/content.Width, viewport.Height/content.Height) * margin, true
}

// SetLimits sets the zoom limits and re-clamps the current zoom.
// min is floored at 0.01 and max is raised to min if smaller.
func (z *ZoomManager) SetLimits(min, max float64) {
	z.min = math.Max(minZoomFloor, min)
	z.max = math.Max(z.min, max)
	z.SetZoom(z.zoom)
}
