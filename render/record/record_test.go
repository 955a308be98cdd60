package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wiredraw/diagram"
	"wiredraw/geometry"
)

type fixedTerminal struct {
	id  string
	pos geometry.Point
}

func (t *fixedTerminal) ID() string { return t.id }

func (t *fixedTerminal) AbsolutePosition() geometry.Point { return t.pos }

func TestWireDrawStrokesPolyline(t *testing.T) {
	w := diagram.NewWire()
	require.NoError(t, w.SetPath([]geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}))

	s := New()
	w.Draw(s)

	assert.Equal(t, 1, s.Count("begin"))
	assert.Equal(t, 1, s.Count("move"))
	assert.Equal(t, 2, s.Count("line"), "one open polyline, not one stroke per segment")
	assert.Equal(t, 1, s.Count("stroke"))
	assert.Equal(t, 0, s.Depth(), "save/restore balanced")
}

func TestWireDrawTooFewPoints(t *testing.T) {
	w := diagram.NewWire()
	w.AddPoint(geometry.Point{X: 5, Y: 5})

	s := New()
	w.Draw(s)
	assert.Empty(t, s.Ops(), "a wire with fewer than two points draws nothing")
}

func TestWireDrawSelectionMarkers(t *testing.T) {
	w := diagram.NewWire()
	require.NoError(t, w.SetPath([]geometry.Point{{X: 5, Y: 0}, {X: 5, Y: 5}}))
	w.ConnectStart(&fixedTerminal{id: "a", pos: geometry.Point{X: 0, Y: 0}})
	w.ConnectEnd(&fixedTerminal{id: "b", pos: geometry.Point{X: 10, Y: 10}})
	w.SetSelected(true)

	s := New()
	w.Draw(s)

	// Square handles on the two interior points, round markers on the two
	// attached terminals. The marker shapes must stay distinct.
	assert.Equal(t, 2, s.Count("fillRect"))
	assert.Equal(t, 2, s.Count("fillCircle"))
}

func TestWireDrawUnselectedHasNoMarkers(t *testing.T) {
	w := diagram.NewWire()
	require.NoError(t, w.SetPath([]geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}))

	s := New()
	w.Draw(s)
	assert.Zero(t, s.Count("fillRect"))
	assert.Zero(t, s.Count("fillCircle"))
}

func TestSaveRestoreRestoresStyle(t *testing.T) {
	s := New()
	s.SetLineWidth(1)
	s.Save()
	s.SetLineWidth(9)
	s.SetStrokeColor("#ff0000")
	s.Restore()

	assert.Equal(t, 1.0, s.LineWidth())
	assert.Equal(t, "", s.StrokeColor())
}
