// Package ecs provides ECS adapters for picker's canvas notifications.
//
// The primary adapter is [NewDonburiStore], which bridges canvas events
// (selection, zoom, pan, item and click notifications) into a [Donburi] world
// as typed events, and mirrors the current view into a [ViewState] component.
// Subscribe to [CanvasEventType] in your ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	canvas.SetEventSink(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
