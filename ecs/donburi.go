package ecs

import (
	"github.com/phanxgames/picker"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CanvasEventType is the Donburi event type for picker canvas events.
var CanvasEventType = events.NewEventType[picker.CanvasEvent]()

// ViewState mirrors the canvas view and selection size.
type ViewState struct {
	Zoom     float64
	Pan      picker.Vec2
	Selected int
	EditMode bool
}

// ViewComponent holds the ViewState of the store's view entity.
var ViewComponent = donburi.NewComponentType[ViewState](ViewState{Zoom: 1})

// DonburiStore is a picker.EventSink backed by a Donburi world.
type DonburiStore struct {
	world donburi.World
	view  donburi.Entity
}

// NewDonburiStore creates an event sink backed by a Donburi world. Canvas
// events are published to CanvasEventType and can be consumed with
// events.Subscribe and ProcessEvents. The store also creates one entity
// carrying ViewComponent, updated as events arrive.
func NewDonburiStore(world donburi.World) *DonburiStore {
	return &DonburiStore{
		world: world,
		view:  world.Create(ViewComponent),
	}
}

// ViewEntity returns the entity carrying ViewComponent.
func (s *DonburiStore) ViewEntity() donburi.Entity { return s.view }

// View returns the mirrored view state.
func (s *DonburiStore) View() ViewState {
	return *ViewComponent.Get(s.world.Entry(s.view))
}

// EmitEvent implements picker.EventSink.
func (s *DonburiStore) EmitEvent(event picker.CanvasEvent) {
	if s.world.Valid(s.view) {
		v := ViewComponent.Get(s.world.Entry(s.view))
		switch event.Type {
		case picker.EventZoomChanged:
			v.Zoom = event.Zoom
		case picker.EventPanChanged:
			v.Pan = event.Pan
		case picker.EventSelectionChanged:
			v.Selected = len(event.Selection)
		case picker.EventEditModeChanged:
			v.EditMode = event.EditMode
		}
	}
	CanvasEventType.Publish(s.world, event)
}
