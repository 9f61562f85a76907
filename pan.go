package picker

// PanManager owns the pan offset and turns drag motion into offset updates.
type PanManager struct {
	offset  Vec2
	panning bool
	last    Vec2

	onChange func(offset Vec2)
}

// NewPanManager creates a PanManager at offset (0, 0).
func NewPanManager() *PanManager {
	return &PanManager{}
}

// Offset returns the current pan offset.
func (p *PanManager) Offset() Vec2 { return p.offset }

// IsPanning reports whether a pan gesture is in progress.
func (p *PanManager) IsPanning() bool { return p.panning }

// OnChange sets the callback fired whenever the offset changes.
func (p *PanManager) OnChange(fn func(offset Vec2)) { p.onChange = fn }

// StartPan begins a pan gesture anchored at point.
func (p *PanManager) StartPan(anchor Vec2) {
	p.panning = true
	p.last = anchor
}

// UpdatePan moves the offset by the motion since the previous update (or
// StartPan). The anchor advances every call, so pan speed does not depend on
// how long the drag has been running. No-op when not panning.
func (p *PanManager) UpdatePan(current Vec2) {
	if !p.panning {
		return
	}
	delta := current.Sub(p.last)
	p.last = current
	p.SetOffset(p.offset.Add(delta))
}

// EndPan finishes the gesture. Motion already applied is kept.
func (p *PanManager) EndPan() {
	p.panning = false
}

// SetOffset sets the pan offset directly. Writing the current offset again
// does not notify.
func (p *PanManager) SetOffset(offset Vec2) {
	if offset == p.offset {
		return
	}
	p.set(offset)
	if p.onChange != nil {
		p.onChange(offset)
	}
}

// Reset moves the pan offset back to the origin.
func (p *PanManager) Reset() {
	p.SetOffset(Vec2{})
}

// CenterOn sets the offset so point lands on viewportCenter at zoom 1.
// Viewport.CenterOn accounts for the current zoom.
func (p *PanManager) CenterOn(point, viewportCenter Vec2) {
	p.SetOffset(viewportCenter.Sub(point))
}

// set stores the offset without notifying.
func (p *PanManager) set(offset Vec2) {
	p.offset = offset
}
