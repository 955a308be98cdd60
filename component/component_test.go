package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wiredraw/diagram"
	"wiredraw/geometry"
)

func TestPinAbsolutePosition(t *testing.T) {
	c := New("U1", geometry.Point{X: 100, Y: 50})
	pin := c.AddPin("1", geometry.Point{X: 0, Y: 10})

	assert.Equal(t, geometry.Point{X: 100, Y: 60}, pin.AbsolutePosition())

	c.Move(-20, 5)
	assert.Equal(t, geometry.Point{X: 80, Y: 65}, pin.AbsolutePosition())
}

func TestAttachedWireFollowsComponent(t *testing.T) {
	c := New("U1", geometry.Point{X: 0, Y: 0})
	pin := c.AddPin("1", geometry.Point{X: 5, Y: 0})

	w := diagram.NewWire()
	w.ConnectStart(pin)
	w.AddPoint(geometry.Point{X: 20, Y: 0})
	pin.AttachWire(w)

	require.Equal(t, geometry.Point{X: 5, Y: 0}, w.AllPoints()[0])

	c.Move(0, 30)
	assert.Equal(t, geometry.Point{X: 5, Y: 30}, w.AllPoints()[0],
		"wire geometry re-queries the pin position")
	assert.Equal(t, geometry.Point{X: 20, Y: 0}, w.AllPoints()[1],
		"interior points do not move with the component")
}

func TestAttachDetachWire(t *testing.T) {
	c := New("U1", geometry.Point{})
	pin := c.AddPin("1", geometry.Point{})

	w := diagram.NewWire()
	pin.AttachWire(w)
	pin.AttachWire(w) // duplicate attach is a no-op
	assert.Len(t, pin.Wires(), 1)

	pin.DetachWire(w)
	assert.Empty(t, pin.Wires())

	pin.DetachWire(w) // detach of unknown wire is a no-op
	assert.Empty(t, pin.Wires())
}

func TestComponentRecordRoundTrip(t *testing.T) {
	c := New("U1", geometry.Point{X: 10, Y: 20})
	c.AddPin("A", geometry.Point{X: 0, Y: 0})
	c.AddPin("B", geometry.Point{X: 0, Y: 10})

	restored := FromRecord(c.ToRecord())
	assert.Equal(t, c.ID(), restored.ID())
	assert.Equal(t, c.Label(), restored.Label())
	assert.Equal(t, c.Position(), restored.Position())
	require.Len(t, restored.Pins(), 2)
	assert.Equal(t, c.Pins()[0].ID(), restored.Pins()[0].ID())
	assert.Equal(t, c.Pins()[1].Name(), restored.Pins()[1].Name())
	assert.Equal(t, geometry.Point{X: 10, Y: 30}, restored.Pins()[1].AbsolutePosition())
}
