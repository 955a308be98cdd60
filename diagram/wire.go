package diagram

import (
	"github.com/google/uuid"

	"wiredraw/geometry"
)

// Drawing defaults shared by every wire.
const (
	// DefaultHitMargin is the fixed slack added to half the stroke width
	// when hit testing, so thin wires remain clickable.
	DefaultHitMargin = 5.0

	// DefaultLineWidth is the stroke width for new wires.
	DefaultLineWidth = 1.0

	// handleSize is the side of the square node handle drawn on interior
	// path points of a selected wire.
	handleSize = 6.0

	// terminalMarkerRadius is the radius of the round marker drawn on
	// attached terminal positions of a selected wire. Terminal markers are
	// deliberately distinct from node handles: terminal positions are not
	// editable through the wire.
	terminalMarkerRadius = 4.0
)

// DefaultColor is the stroke color for new wires.
const DefaultColor = "#000000"

// Wire is an editable polyline that may anchor either end to a component
// terminal. The interior path holds the user-placed bend points in traversal
// order; the rendered geometry is recomputed from the live terminal
// positions on every draw, so a wire follows its terminals without storing
// their coordinates.
type Wire struct {
	id    string
	start Terminal
	end   Terminal
	path  []geometry.Point

	color     string
	lineWidth float64
	lineDash  []float64
	hitMargin float64
	temporary bool
	selected  bool
}

// NewWire creates an empty detached wire with default styling and a fresh
// unique id.
func NewWire() *Wire {
	return &Wire{
		id:        uuid.NewString(),
		color:     DefaultColor,
		lineWidth: DefaultLineWidth,
		hitMargin: DefaultHitMargin,
	}
}

// ID returns the wire's unique identifier.
func (w *Wire) ID() string { return w.id }

// Selected reports whether the wire is selected.
func (w *Wire) Selected() bool { return w.selected }

// SetSelected sets the selection flag.
func (w *Wire) SetSelected(selected bool) { w.selected = selected }

// Color returns the stroke color.
func (w *Wire) Color() string { return w.color }

// LineWidth returns the stroke width.
func (w *Wire) LineWidth() float64 { return w.lineWidth }

// LineDash returns the dash pattern. The returned slice is a copy.
func (w *Wire) LineDash() []float64 {
	if w.lineDash == nil {
		return nil
	}
	dash := make([]float64, len(w.lineDash))
	copy(dash, w.lineDash)
	return dash
}

// Temporary reports whether the wire is an in-progress, uncommitted wire.
func (w *Wire) Temporary() bool { return w.temporary }

// StartTerminal returns the terminal anchoring the wire's start, or nil.
func (w *Wire) StartTerminal() Terminal { return w.start }

// EndTerminal returns the terminal anchoring the wire's end, or nil.
func (w *Wire) EndTerminal() Terminal { return w.end }

// Attached reports whether either end anchors to a terminal.
func (w *Wire) Attached() bool { return w.start != nil || w.end != nil }

// ConnectStart anchors the wire's start to a terminal. Passing nil detaches.
func (w *Wire) ConnectStart(t Terminal) { w.start = t }

// ConnectEnd anchors the wire's end to a terminal. Passing nil detaches.
func (w *Wire) ConnectEnd(t Terminal) { w.end = t }

// DisconnectStart detaches the start terminal.
func (w *Wire) DisconnectStart() { w.start = nil }

// DisconnectEnd detaches the end terminal.
func (w *Wire) DisconnectEnd() { w.end = nil }

// AddPoint appends an interior bend point to the path.
func (w *Wire) AddPoint(p geometry.Point) {
	w.path = append(w.path, p)
}

// Path returns a copy of the interior bend points in traversal order.
func (w *Wire) Path() []geometry.Point {
	path := make([]geometry.Point, len(w.path))
	copy(path, w.path)
	return path
}

// PointCount returns the number of interior bend points.
func (w *Wire) PointCount() int { return len(w.path) }

// AllPoints returns the full rendered polyline in traversal order: the
// start terminal position if attached, the interior path, then the end
// terminal position if attached. Terminal positions are queried fresh on
// every call.
func (w *Wire) AllPoints() []geometry.Point {
	points := make([]geometry.Point, 0, len(w.path)+2)
	if w.start != nil {
		points = append(points, w.start.AbsolutePosition())
	}
	points = append(points, w.path...)
	if w.end != nil {
		points = append(points, w.end.AbsolutePosition())
	}
	return points
}

// Move translates every interior point by (dx, dy). Attached wires never
// translate as a rigid body: if either terminal is set this is a no-op, and
// the wire follows its terminals instead.
func (w *Wire) Move(dx, dy float64) {
	if w.Attached() {
		return
	}
	geometry.TranslateAll(w.path, dx, dy)
}

// Hit reports whether (x, y) lies within the hit tolerance of any segment
// of the rendered polyline. Tolerance is lineWidth/2 plus the fixed margin.
// Each segment is tested by clamped projection: the closest point on the
// segment itself, not the infinite line through it.
func (w *Wire) Hit(x, y float64) bool {
	points := w.AllPoints()
	if len(points) == 0 {
		return false
	}

	p := geometry.Point{X: x, Y: y}
	tolerance := w.lineWidth/2 + w.hitMargin
	tolSq := tolerance * tolerance

	if len(points) == 1 {
		return p.DistanceSquared(points[0]) <= tolSq
	}
	for i := 0; i < len(points)-1; i++ {
		if geometry.DistanceToSegmentSquared(points[i], points[i+1], p) <= tolSq {
			return true
		}
	}
	return false
}

// Draw strokes the wire onto the surface as a single open polyline. With
// fewer than two renderable points nothing is drawn. When selected, square
// handles mark interior path points and round markers mark attached
// terminal positions.
func (w *Wire) Draw(s Surface) {
	points := w.AllPoints()
	if len(points) < 2 {
		return
	}

	s.Save()
	defer s.Restore()

	s.SetStrokeColor(w.color)
	s.SetLineWidth(w.lineWidth)
	s.SetLineDash(w.lineDash)
	s.SetLineCap(CapRound)
	s.SetLineJoin(JoinRound)

	s.BeginPath()
	s.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		s.LineTo(p.X, p.Y)
	}
	s.Stroke()

	if !w.selected {
		return
	}

	s.SetFillColor(w.color)
	for _, p := range w.path {
		s.FillRect(p.X-handleSize/2, p.Y-handleSize/2, handleSize, handleSize)
	}
	if w.start != nil {
		p := w.start.AbsolutePosition()
		s.FillCircle(p.X, p.Y, terminalMarkerRadius)
	}
	if w.end != nil {
		p := w.end.AbsolutePosition()
		s.FillCircle(p.X, p.Y, terminalMarkerRadius)
	}
}
