package picker

// SelectionManager owns the selected-item set and the last-selected item.
// Every mutating call delivers exactly one change notification carrying a
// fresh snapshot of the selection.
type SelectionManager struct {
	source ItemSource

	selected []Item
	members  map[Item]struct{}
	last     Item

	band     *RubberBand
	bandCtrl bool

	onChange func(selection []Item)
}

// NewSelectionManager creates an empty selection over the host collection
// source, which SelectAll, Invert and rubber-band selection enumerate.
func NewSelectionManager(source ItemSource) *SelectionManager {
	s := &SelectionManager{
		source:  source,
		members: make(map[Item]struct{}),
		band:    NewRubberBand(),
	}
	s.band.OnFinish(func(r Rect) {
		s.SelectInRect(r, s.bandCtrl)
	})
	return s
}

// OnChange sets the callback receiving a snapshot after every mutation.
func (s *SelectionManager) OnChange(fn func(selection []Item)) { s.onChange = fn }

// RubberBand returns the rubber-band gesture feeding this selection.
func (s *SelectionManager) RubberBand() *RubberBand { return s.band }

// Selected returns a copy of the selection in selection order.
func (s *SelectionManager) Selected() []Item {
	out := make([]Item, len(s.selected))
	copy(out, s.selected)
	return out
}

// LastSelected returns the most recently selected item, or nil.
func (s *SelectionManager) LastSelected() Item { return s.last }

// HasSelection reports whether any item is selected.
func (s *SelectionManager) HasSelection() bool { return len(s.selected) > 0 }

// Len returns the number of selected items.
func (s *SelectionManager) Len() int { return len(s.selected) }

// IsSelected reports whether item is in the selection.
func (s *SelectionManager) IsSelected(item Item) bool {
	_, ok := s.members[item]
	return ok
}

func (s *SelectionManager) notify() {
	if s.onChange != nil {
		s.onChange(s.Selected())
	}
}

// add inserts item if absent. Reports whether it was inserted.
func (s *SelectionManager) add(item Item) bool {
	if _, ok := s.members[item]; ok {
		return false
	}
	s.members[item] = struct{}{}
	s.selected = append(s.selected, item)
	if sel, ok := item.(Selectable); ok {
		sel.SetSelected(true)
	}
	return true
}

// remove deletes item if present. Reports whether it was removed. The
// last-selected item falls back to the final remaining member.
func (s *SelectionManager) remove(item Item) bool {
	if _, ok := s.members[item]; !ok {
		return false
	}
	delete(s.members, item)
	for i, it := range s.selected {
		if it == item {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			break
		}
	}
	if sel, ok := item.(Selectable); ok {
		sel.SetSelected(false)
	}
	if s.last == item {
		s.last = nil
		if n := len(s.selected); n > 0 {
			s.last = s.selected[n-1]
		}
	}
	return true
}

func (s *SelectionManager) clear() {
	for _, it := range s.selected {
		if sel, ok := it.(Selectable); ok {
			sel.SetSelected(false)
		}
	}
	clear(s.members)
	s.selected = s.selected[:0]
	s.last = nil
}

// Select adds item to the selection and makes it the last-selected item.
// Without multi the selection is cleared first, so it ends as exactly {item}.
func (s *SelectionManager) Select(item Item, multi bool) {
	if !multi {
		s.clear()
	}
	s.add(item)
	s.last = item
	s.notify()
}

// Deselect removes item from the selection.
func (s *SelectionManager) Deselect(item Item) {
	s.remove(item)
	s.notify()
}

// Toggle deselects item if selected, otherwise adds it to the selection.
func (s *SelectionManager) Toggle(item Item) {
	if s.IsSelected(item) {
		s.Deselect(item)
		return
	}
	s.Select(item, true)
}

// SelectItems adds items to the selection; without multi the selection is
// cleared first. The last-selected item becomes the final element of items.
func (s *SelectionManager) SelectItems(items []Item, multi bool) {
	if !multi {
		s.clear()
	}
	for _, it := range items {
		s.add(it)
	}
	if n := len(items); n > 0 {
		s.last = items[n-1]
	}
	s.notify()
}

// Clear empties the selection.
func (s *SelectionManager) Clear() {
	s.clear()
	s.notify()
}

// Remove drops an item that left the host collection. Unlike Deselect it
// stays silent when the item was not selected.
func (s *SelectionManager) Remove(item Item) {
	if s.remove(item) {
		s.notify()
	}
}

// SelectAll selects every item of the host collection, replacing the
// current selection.
func (s *SelectionManager) SelectAll() {
	if s.source == nil {
		return
	}
	s.SelectItems(s.source.Items(), false)
}

// Invert selects exactly the items of the host collection that are not
// currently selected.
func (s *SelectionManager) Invert() {
	if s.source == nil {
		return
	}
	var unselected []Item
	for _, it := range s.source.Items() {
		if !s.IsSelected(it) {
			unselected = append(unselected, it)
		}
	}
	s.SelectItems(unselected, false)
}

// SelectInRect applies a completed rubber band: items overlapping rect are
// selected, added to the selection when ctrl is held. A rectangle over empty
// space clears the selection unless ctrl is held.
func (s *SelectionManager) SelectInRect(rect Rect, ctrl bool) {
	var hits []Item
	if s.source != nil {
		hits = ItemsInRect(s.source.Items(), rect)
	}
	if len(hits) > 0 {
		s.SelectItems(hits, ctrl)
		return
	}
	if !ctrl {
		s.Clear()
	}
}

// StartRubberBand begins a rubber-band gesture at a scene point.
func (s *SelectionManager) StartRubberBand(p Vec2) { s.band.Start(p) }

// UpdateRubberBand stretches the rubber band to a scene point.
func (s *SelectionManager) UpdateRubberBand(p Vec2) { s.band.Update(p) }

// FinishRubberBand completes the rubber band at a scene point and applies it
// with the given Ctrl state.
func (s *SelectionManager) FinishRubberBand(p Vec2, ctrl bool) {
	s.bandCtrl = ctrl
	s.band.Finish(p)
	s.bandCtrl = false
}

// CancelRubberBand abandons the rubber band. The selection is not touched.
func (s *SelectionManager) CancelRubberBand() { s.band.Cancel() }

// RubberBandActive reports whether a rubber-band gesture is in progress.
func (s *SelectionManager) RubberBandActive() bool { return s.band.Active() }
