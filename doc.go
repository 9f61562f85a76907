// Package picker is the viewport and selection engine of an interactive 2D
// picker canvas for [Ebitengine].
//
// A [Canvas] holds an unbounded scene of items laid out in scene space and
// shows it through a zoomable, pannable [Viewport]. It provides grid
// snapping, click and Ctrl-click multi-selection, rubber-band selection and
// item dragging, and reports every change through callbacks.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and feeds
// real mouse and keyboard input into the canvas:
//
//	canvas := picker.NewCanvas(picker.CanvasConfig{EditMode: true, GridVisible: true})
//	canvas.CreateItem("rectangle", &picker.Vec2{X: 100, Y: 100})
//	picker.Run(canvas, picker.RunConfig{
//		Title: "Picker", Width: 1024, Height: 768, ShowStatus: true,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Canvas.Update], [Canvas.PollInput] and [Canvas.Draw], or skip Ebitengine
// entirely and call the event methods ([Canvas.PointerDown],
// [Canvas.PointerMove], [Canvas.PointerUp], [Canvas.Wheel],
// [Canvas.KeyPress]) from any host.
//
// # Items
//
// An [Item] is any comparable value. The canvas discovers what an item can
// do through the [Positionable], [Sized], [Selectable], [HitTester] and
// [ZOrdered] interfaces and skips items lacking the capability an operation
// needs. [Widget] is a ready-made item covering the standard picker widget
// kinds.
//
// # Coordinates
//
// Scene space is unbounded; screen space is pixels in the viewport. The view
// transform is translate(pan) * scale(zoom), so zooming at a point keeps the
// scene point under it fixed on screen.
//
// # Key features
//
// Animated view transitions (via [gween]), alignment tools (via gonum's
// r2 vectors), synthetic input and JSON scripted sessions for automated
// testing, and ECS integration (via [Donburi] adapter in picker/ecs).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package picker
