package picker

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// viewTween animates zoom and pan together. All three tweens share one
// duration and easing function, so they finish on the same frame.
type viewTween struct {
	zoom, panX, panY *gween.Tween
	toZoom           float64
	toPan            Vec2
}

// AnimateTo starts a transition to the given zoom and pan over duration
// seconds. The zoom target is clamped to the zoom limits. Each Update call
// commits zoom and pan together; any direct zoom or pan change cancels the
// transition. A duration <= 0 applies the target immediately.
func (v *Viewport) AnimateTo(zoom float64, pan Vec2, duration float32, easeFn ease.TweenFunc) {
	zoom = clamp(zoom, v.zoom.min, v.zoom.max)
	if duration <= 0 {
		v.SetView(zoom, pan)
		return
	}
	if easeFn == nil {
		easeFn = ease.OutQuad
	}
	from := v.pan.Offset()
	v.anim = &viewTween{
		zoom:   gween.New(float32(v.zoom.Zoom()), float32(zoom), duration, easeFn),
		panX:   gween.New(float32(from.X), float32(pan.X), duration, easeFn),
		panY:   gween.New(float32(from.Y), float32(pan.Y), duration, easeFn),
		toZoom: zoom,
		toPan:  pan,
	}
}

// AnimateFitItems is FitItemsInView as a transition.
func (v *Viewport) AnimateFitItems(items []Item, viewport Rect, margin float64, duration float32, easeFn ease.TweenFunc) {
	zoom, pan, ok := v.fitTarget(items, viewport, margin)
	if !ok {
		return
	}
	v.AnimateTo(zoom, pan, duration, easeFn)
}

// Animating reports whether a transition is in progress.
func (v *Viewport) Animating() bool { return v.anim != nil }

// Update advances a running transition by dt seconds.
func (v *Viewport) Update(dt float32) {
	a := v.anim
	if a == nil {
		return
	}
	z, doneZ := a.zoom.Update(dt)
	x, doneX := a.panX.Update(dt)
	y, doneY := a.panY.Update(dt)

	if doneZ && doneX && doneY {
		// Land exactly on the target rather than its float32 approximation.
		v.anim = nil
		v.commit(a.toZoom, a.toPan)
		return
	}
	v.commit(float64(z), Vec2{float64(x), float64(y)})
}
