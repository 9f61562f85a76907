package picker

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// ErrUnknownWidgetKind is returned when a widget kind name is not recognized.
var ErrUnknownWidgetKind = errors.New("unknown widget kind")

// WidgetKind selects the payload and hit-testing behavior of a Widget.
type WidgetKind uint8

const (
	WidgetRectangle      WidgetKind = iota // plain rectangular button
	WidgetRoundRectangle                   // rectangle with rounded corners
	WidgetCircle                           // circular button
	WidgetPolygon                          // convex polygon button
	WidgetCheckbox                         // toggle with a check box
	WidgetSlider                           // horizontal value slider
	WidgetRadiusButton                     // draggable radius handle
	WidgetPoseButton                       // pose thumbnail button
	WidgetText                             // free text label
)

var widgetKindNames = [...]string{
	WidgetRectangle:      "rectangle",
	WidgetRoundRectangle: "round_rectangle",
	WidgetCircle:         "circle",
	WidgetPolygon:        "polygon",
	WidgetCheckbox:       "checkbox",
	WidgetSlider:         "slider",
	WidgetRadiusButton:   "radius_button",
	WidgetPoseButton:     "pose_button",
	WidgetText:           "text",
}

// String returns the kind name accepted by ParseWidgetKind.
func (k WidgetKind) String() string {
	if int(k) < len(widgetKindNames) {
		return widgetKindNames[k]
	}
	return fmt.Sprintf("WidgetKind(%d)", uint8(k))
}

// ParseWidgetKind maps a kind name such as "circle" or "pose_button" to its
// WidgetKind.
func ParseWidgetKind(name string) (WidgetKind, error) {
	for k, n := range widgetKindNames {
		if n == name {
			return WidgetKind(k), nil
		}
	}
	return 0, fmt.Errorf("parse widget kind %q: %w", name, ErrUnknownWidgetKind)
}

// SliderData is the payload of a WidgetSlider.
type SliderData struct {
	Min, Max, Value, Step float64
}

// CheckboxData is the payload of a WidgetCheckbox.
type CheckboxData struct {
	Checked  bool
	Tristate bool
	BoxSize  float64
}

// PolygonData is the payload of a WidgetPolygon. Points are in local space
// and may be negative; the widget's bounds follow them.
type PolygonData struct {
	Points []Vec2
}

// RadiusData is the payload of radius-button widgets. Circle widgets take
// their radius from their size.
type RadiusData struct {
	Radius, MinRadius, MaxRadius float64
}

// PoseData is the payload of a WidgetPoseButton.
type PoseData struct {
	PoseName      string
	ShowThumbnail bool
}

// TextData is the payload of a WidgetText.
type TextData struct {
	WordWrap bool
	RichText bool
}

// Widget is the canvas's own item type: a closed set of picker widget kinds
// sharing position, size, label and command, with a per-kind payload. Only
// the payload matching Kind is meaningful.
type Widget struct {
	ID      uuid.UUID
	Kind    WidgetKind
	X, Y    float64
	Width   float64
	Height  float64
	Label   string
	Command string
	ZIndex  int

	Slider   SliderData
	Checkbox CheckboxData
	Polygon  PolygonData
	Radius   RadiusData
	Pose     PoseData
	Text     TextData

	selected bool
}

// NewWidget creates a widget of the given kind with its default size and
// payload at the scene origin.
func NewWidget(kind WidgetKind) *Widget {
	w := &Widget{ID: uuid.New(), Kind: kind, Width: 80, Height: 30, Label: "Button"}
	switch kind {
	case WidgetCircle:
		w.Width, w.Height = 80, 80
	case WidgetPolygon:
		w.Polygon.Points = []Vec2{{0, -30}, {-25, 25}, {25, 25}}
		w.Label = ""
	case WidgetCheckbox:
		w.Width, w.Height = 80, 20
		w.Checkbox = CheckboxData{BoxSize: 16}
		w.Label = "Checkbox"
	case WidgetSlider:
		w.Width, w.Height = 120, 20
		w.Slider = SliderData{Min: 0, Max: 1, Step: 0.01}
		w.Label = ""
	case WidgetRadiusButton:
		w.Radius = RadiusData{Radius: 25, MinRadius: 5, MaxRadius: 100}
		w.Width, w.Height = 100, 100
		w.Label = ""
	case WidgetPoseButton:
		w.Width, w.Height = 80, 80
		w.Pose = PoseData{PoseName: "Pose", ShowThumbnail: true}
		w.Label = "Pose"
	case WidgetText:
		w.Width, w.Height = 120, 30
		w.Text = TextData{WordWrap: true}
		w.Label = "Text"
	}
	return w
}

// Position implements Positionable.
func (w *Widget) Position() Vec2 { return Vec2{w.X, w.Y} }

// SetPosition implements Positionable.
func (w *Widget) SetPosition(p Vec2) { w.X, w.Y = p.X, p.Y }

// LocalBounds implements Sized.
func (w *Widget) LocalBounds() Rect {
	if w.Kind == WidgetPolygon {
		return polygonBounds(w.Polygon.Points)
	}
	return Rect{Width: w.Width, Height: w.Height}
}

// IsSelected implements Selectable.
func (w *Widget) IsSelected() bool { return w.selected }

// SetSelected implements Selectable.
func (w *Widget) SetSelected(selected bool) { w.selected = selected }

// Caption implements Captioned.
func (w *Widget) Caption() string { return w.Label }

// Z implements ZOrdered.
func (w *Widget) Z() int { return w.ZIndex }

// HitShape implements HitTester. Every kind maps to exactly one shape.
func (w *Widget) HitShape() HitShape {
	switch w.Kind {
	case WidgetCircle:
		return HitCircle{CenterX: w.Width / 2, CenterY: w.Height / 2, Radius: math.Min(w.Width, w.Height) / 2}
	case WidgetRadiusButton:
		r := math.Max(w.Radius.Radius, w.Radius.MinRadius)
		return HitCircle{CenterX: w.Width / 2, CenterY: w.Height / 2, Radius: r}
	case WidgetPolygon:
		return HitPolygon{Points: w.Polygon.Points}
	case WidgetRectangle, WidgetRoundRectangle, WidgetCheckbox, WidgetSlider,
		WidgetPoseButton, WidgetText:
		return HitRect{Width: w.Width, Height: w.Height}
	default:
		return HitRect{Width: w.Width, Height: w.Height}
	}
}

func polygonBounds(points []Vec2) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
