package component

import (
	"wiredraw/diagram"
	"wiredraw/geometry"
)

const (
	bodyPadding     = 6.0
	pinMarkerRadius = 2.0
	bodyColor       = "#444444"
)

// Draw renders the component body as an outlined box around its pins, the
// pin markers, and the label above the body.
func (c *Component) Draw(s diagram.Surface) {
	s.Save()
	defer s.Restore()

	offsets := make([]geometry.Point, len(c.pins))
	for i, p := range c.pins {
		offsets[i] = p.offset
	}
	min, max := geometry.BoundingBox(offsets)
	min = c.position.Add(min).Translate(-bodyPadding, -bodyPadding)
	max = c.position.Add(max).Translate(bodyPadding, bodyPadding)

	s.SetStrokeColor(bodyColor)
	s.SetLineWidth(1)
	s.SetLineDash(nil)
	s.BeginPath()
	s.MoveTo(min.X, min.Y)
	s.LineTo(max.X, min.Y)
	s.LineTo(max.X, max.Y)
	s.LineTo(min.X, max.Y)
	s.LineTo(min.X, min.Y)
	s.Stroke()

	s.SetFillColor(bodyColor)
	for _, p := range c.pins {
		pos := p.AbsolutePosition()
		s.FillCircle(pos.X, pos.Y, pinMarkerRadius)
	}
	if c.label != "" {
		s.FillText(c.label, min.X, min.Y-2)
	}
}
