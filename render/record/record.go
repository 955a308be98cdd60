// Package record provides a Surface that records drawing commands instead
// of rasterizing them. It exists for tests: entity drawing code can be
// exercised without any concrete rendering backend, and assertions run
// against the recorded command list.
package record

import (
	"fmt"
	"strings"

	"wiredraw/diagram"
)

// style is the mutable surface state covered by Save/Restore.
type style struct {
	strokeColor string
	fillColor   string
	lineWidth   float64
	lineDash    []float64
	lineCap     diagram.LineCap
	lineJoin    diagram.LineJoin
}

// Surface records every drawing command issued to it, in order.
type Surface struct {
	ops   []string
	style style
	stack []style
}

var _ diagram.Surface = (*Surface)(nil)

// New creates an empty recording surface.
func New() *Surface {
	return &Surface{}
}

func (s *Surface) record(format string, args ...any) {
	s.ops = append(s.ops, fmt.Sprintf(format, args...))
}

// Ops returns the recorded commands in issue order.
func (s *Surface) Ops() []string {
	ops := make([]string, len(s.ops))
	copy(ops, s.ops)
	return ops
}

// Count returns how many commands with the given name were recorded.
func (s *Surface) Count(name string) int {
	n := 0
	for _, op := range s.ops {
		if op == name || strings.HasPrefix(op, name+" ") {
			n++
		}
	}
	return n
}

// Depth returns the current Save/Restore nesting depth.
func (s *Surface) Depth() int { return len(s.stack) }

// LineWidth returns the current stroke width.
func (s *Surface) LineWidth() float64 { return s.style.lineWidth }

// StrokeColor returns the current stroke color.
func (s *Surface) StrokeColor() string { return s.style.strokeColor }

func (s *Surface) Save() {
	s.stack = append(s.stack, s.style)
	s.record("save")
}

func (s *Surface) Restore() {
	if n := len(s.stack); n > 0 {
		s.style = s.stack[n-1]
		s.stack = s.stack[:n-1]
	}
	s.record("restore")
}

func (s *Surface) SetStrokeColor(color string) {
	s.style.strokeColor = color
	s.record("strokeColor %s", color)
}

func (s *Surface) SetLineWidth(width float64) {
	s.style.lineWidth = width
	s.record("lineWidth %g", width)
}

func (s *Surface) SetLineDash(dash []float64) {
	s.style.lineDash = dash
	s.record("lineDash %v", dash)
}

func (s *Surface) SetLineCap(cap diagram.LineCap) {
	s.style.lineCap = cap
	s.record("lineCap %d", cap)
}

func (s *Surface) SetLineJoin(join diagram.LineJoin) {
	s.style.lineJoin = join
	s.record("lineJoin %d", join)
}

func (s *Surface) SetFillColor(color string) {
	s.style.fillColor = color
	s.record("fillColor %s", color)
}

func (s *Surface) BeginPath() { s.record("begin") }

func (s *Surface) MoveTo(x, y float64) { s.record("move %g,%g", x, y) }

func (s *Surface) LineTo(x, y float64) { s.record("line %g,%g", x, y) }

func (s *Surface) Stroke() { s.record("stroke") }

func (s *Surface) FillCircle(x, y, r float64) { s.record("fillCircle %g,%g r=%g", x, y, r) }

func (s *Surface) FillRect(x, y, w, h float64) { s.record("fillRect %g,%g %gx%g", x, y, w, h) }

func (s *Surface) FillText(text string, x, y float64) { s.record("fillText %q %g,%g", text, x, y) }
