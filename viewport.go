package picker

import "math"

const (
	// wheelZoomFactor is the multiplicative zoom step of one ZoomAtPoint call.
	wheelZoomFactor = 1.15

	// DefaultFitItemsMargin is the fraction of the viewport left empty by
	// FitItemsInView.
	DefaultFitItemsMargin = 0.1
)

// Viewport composes a ZoomManager and a PanManager into the scene-to-screen
// transform T = translate(pan) * scale(zoom).
type Viewport struct {
	zoom *ZoomManager
	pan  *PanManager

	// cached transform and the zoom/pan it was built from
	view       Transform
	inv        Transform
	cachedZoom float64
	cachedPan  Vec2
	cacheValid bool

	anim *viewTween

	onChange func(zoomChanged, panChanged bool)
}

// NewViewport creates a Viewport at zoom 1.0 and pan (0, 0).
func NewViewport() *Viewport {
	v := &Viewport{zoom: NewZoomManager(), pan: NewPanManager()}
	v.zoom.OnChange(func(float64) {
		v.anim = nil
		v.changed(true, false)
	})
	v.pan.OnChange(func(Vec2) {
		v.anim = nil
		v.changed(false, true)
	})
	return v
}

// ZoomManager returns the zoom component, for button-driven zoom steps and
// limit changes.
func (v *Viewport) ZoomManager() *ZoomManager { return v.zoom }

// PanManager returns the pan component, for drag-driven panning.
func (v *Viewport) PanManager() *PanManager { return v.pan }

// Zoom returns the current zoom factor.
func (v *Viewport) Zoom() float64 { return v.zoom.Zoom() }

// Pan returns the current pan offset.
func (v *Viewport) Pan() Vec2 { return v.pan.Offset() }

// OnChange sets the callback fired after zoom and/or pan are committed. When
// both change in one operation the callback runs once, after both are written.
func (v *Viewport) OnChange(fn func(zoomChanged, panChanged bool)) { v.onChange = fn }

func (v *Viewport) changed(zoomChanged, panChanged bool) {
	if v.onChange != nil && (zoomChanged || panChanged) {
		v.onChange(zoomChanged, panChanged)
	}
}

// Transform returns the scene-to-screen matrix. It is rebuilt only when zoom
// or pan differ from the values it was last built from.
func (v *Viewport) Transform() Transform {
	v.refresh()
	return v.view
}

// CoordinateTransform returns a mapper for the current view.
func (v *Viewport) CoordinateTransform() CoordinateTransform {
	v.refresh()
	return CoordinateTransform{view: v.view, inv: v.inv, invertible: true}
}

func (v *Viewport) refresh() {
	z, p := v.zoom.Zoom(), v.pan.Offset()
	if v.cacheValid && z == v.cachedZoom && p == v.cachedPan {
		return
	}
	v.view = NewViewTransform(z, p)
	// zoom is clamped away from 0, so the view is always invertible.
	v.inv, _ = v.view.Invert()
	v.cachedZoom, v.cachedPan = z, p
	v.cacheValid = true
}

// SceneToScreen converts a scene-space point to screen pixels.
func (v *Viewport) SceneToScreen(p Vec2) Vec2 {
	v.refresh()
	return v.view.Apply(p)
}

// ScreenToScene converts screen pixels to a scene-space point.
func (v *Viewport) ScreenToScene(p Vec2) Vec2 {
	v.refresh()
	return v.inv.Apply(p)
}

// VisibleBounds returns the scene-space rectangle shown by a screen-space
// viewport rectangle.
func (v *Viewport) VisibleBounds(viewport Rect) Rect {
	v.refresh()
	return v.inv.ApplyRect(viewport)
}

// SetView sets zoom and pan together. The zoom is clamped; the pan is stored
// as given. A single change notification follows once both are written.
func (v *Viewport) SetView(zoom float64, pan Vec2) {
	v.anim = nil
	v.commit(zoom, pan)
}

// commit writes zoom then pan without intermediate notifications.
func (v *Viewport) commit(zoom float64, pan Vec2) {
	oldPan := v.pan.Offset()
	_, zoomChanged := v.zoom.set(zoom)
	v.pan.set(pan)
	v.changed(zoomChanged, pan != oldPan)
}

// ZoomAtPoint zooms in (delta > 0) or out (delta < 0) by one 1.15x step while
// keeping the scene point under the screen-space center fixed on screen.
// delta == 0 is a no-op.
func (v *Viewport) ZoomAtPoint(delta float64, center Vec2) {
	if delta == 0 {
		return
	}
	target := v.zoom.Zoom() * wheelZoomFactor
	if delta < 0 {
		target = v.zoom.Zoom() / wheelZoomFactor
	}
	v.ZoomAround(target, center)
}

// ZoomAround sets the zoom to target (clamped) while keeping the scene point
// under the screen-space center fixed on screen.
func (v *Viewport) ZoomAround(target float64, center Vec2) {
	if math.IsNaN(target) {
		return
	}
	oldZoom := v.zoom.Zoom()
	newZoom := clamp(target, v.zoom.min, v.zoom.max)
	if newZoom == oldZoom {
		return
	}

	// Pan is derived from the clamped zoom, so the invariant holds at the limits.
	ratio := newZoom / oldZoom
	pan := v.pan.Offset()
	offset := center.Sub(pan)
	newPan := center.Sub(offset.Scale(ratio))

	v.anim = nil
	v.commit(newZoom, newPan)
}

// fitTarget computes the zoom and pan that fit items into viewport, leaving
// margin (a fraction in [0, 1)) of the viewport empty.
func (v *Viewport) fitTarget(items []Item, viewport Rect, margin float64) (zoom float64, pan Vec2, ok bool) {
	if margin < 0 || margin >= 1 || math.IsNaN(margin) {
		margin = DefaultFitItemsMargin
	}
	union, ok := unionBounds(items)
	if !ok || union.IsEmpty() {
		return 0, Vec2{}, false
	}
	scale, ok := fitScale(union, viewport, 1-margin)
	if !ok {
		return 0, Vec2{}, false
	}
	zoom = clamp(scale, v.zoom.min, v.zoom.max)
	pan = viewport.Center().Sub(union.Center().Scale(zoom))
	return zoom, pan, true
}

// FitItemsInView zooms and pans so the scene bounds of items fill the viewport
// (a screen-space rectangle), leaving margin of it empty, centered. Items
// without both Positionable and Sized are skipped; if none qualify the view is
// unchanged.
//
// The margin scales the fitted zoom by (1 - margin); it is not a padding
// added to the items' union before fitting.
func (v *Viewport) FitItemsInView(items []Item, viewport Rect, margin float64) {
	zoom, pan, ok := v.fitTarget(items, viewport, margin)
	if !ok {
		return
	}
	v.SetView(zoom, pan)
}

// CenterOn pans so the scene point lands on the screen-space viewportCenter at
// the current zoom.
func (v *Viewport) CenterOn(scene, viewportCenter Vec2) {
	v.pan.SetOffset(viewportCenter.Sub(scene.Scale(v.zoom.Zoom())))
}

// ResetView returns to zoom 1.0 and pan (0, 0).
func (v *Viewport) ResetView() {
	v.SetView(1.0, Vec2{})
}
