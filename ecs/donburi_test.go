package ecs

import (
	"testing"

	"github.com/phanxgames/picker"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
	if !world.Valid(store.ViewEntity()) {
		t.Fatal("view entity not created")
	}
	if got := store.View().Zoom; got != 1 {
		t.Errorf("initial Zoom = %v, want 1", got)
	}
}

func TestDonburiStore_ImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink picker.EventSink = NewDonburiStore(world)
	_ = sink // compile-time interface check
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []picker.CanvasEvent
	CanvasEventType.Subscribe(world, func(w donburi.World, e picker.CanvasEvent) {
		received = append(received, e)
	})

	store.EmitEvent(picker.CanvasEvent{Type: picker.EventZoomChanged, Zoom: 2.5})
	store.EmitEvent(picker.CanvasEvent{Type: picker.EventCanvasClicked, Point: picker.Vec2{X: 10, Y: 20}})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("received %d events before ProcessEvents", len(received))
	}
	CanvasEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if received[0].Type != picker.EventZoomChanged || received[0].Zoom != 2.5 {
		t.Errorf("event 0: %+v", received[0])
	}
	if received[1].Point != (picker.Vec2{X: 10, Y: 20}) {
		t.Errorf("event 1 point: %+v", received[1].Point)
	}
}

func TestDonburiStore_CanvasBridge(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	c := picker.NewCanvas(picker.CanvasConfig{ViewportSize: picker.Vec2{X: 800, Y: 600}})
	c.SetEventSink(store)

	var types []picker.EventType
	CanvasEventType.Subscribe(world, func(w donburi.World, e picker.CanvasEvent) {
		types = append(types, e.Type)
	})

	w, err := c.CreateItem("rectangle", &picker.Vec2{X: 100, Y: 100})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	c.Viewport().SetView(2, picker.Vec2{X: 30, Y: -40})
	c.SetEditMode(true)
	events.ProcessAllEvents(world)

	v := store.View()
	if v.Zoom != 2 || v.Pan != (picker.Vec2{X: 30, Y: -40}) {
		t.Errorf("view = %+v, want zoom 2 pan (30,-40)", v)
	}
	if v.Selected != 1 {
		t.Errorf("Selected = %d, want 1", v.Selected)
	}
	if !v.EditMode {
		t.Error("EditMode not mirrored")
	}

	want := []picker.EventType{
		picker.EventItemAdded,
		picker.EventSelectionChanged,
		picker.EventZoomChanged,
		picker.EventPanChanged,
		picker.EventEditModeChanged,
	}
	if len(types) != len(want) {
		t.Fatalf("got events %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}

	c.RemoveItem(w)
	events.ProcessAllEvents(world)
	if store.View().Selected != 0 {
		t.Errorf("Selected after remove = %d, want 0", store.View().Selected)
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	CanvasEventType.Subscribe(world, func(w donburi.World, e picker.CanvasEvent) {
		count1++
	})
	CanvasEventType.Subscribe(world, func(w donburi.World, e picker.CanvasEvent) {
		count2++
	})

	store.EmitEvent(picker.CanvasEvent{Type: picker.EventCanvasDoubleClicked})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
