// Package component provides a minimal movable component whose pins serve
// as wire terminals. A pin's absolute position is derived from its owning
// component's position, so moving the component implicitly moves every
// wire attached to its pins.
package component

import (
	"wiredraw/diagram"
	"wiredraw/geometry"
)

// Component is a placeable part with a set of pins at fixed offsets.
type Component struct {
	id       string
	label    string
	position geometry.Point
	pins     []*Pin
}

// New creates a component at the given position with a fresh id.
func New(label string, position geometry.Point) *Component {
	return &Component{
		id:       diagram.NewID(),
		label:    label,
		position: position,
	}
}

// ID returns the component's unique identifier.
func (c *Component) ID() string { return c.id }

// Label returns the component's display label.
func (c *Component) Label() string { return c.label }

// Position returns the component's current position.
func (c *Component) Position() geometry.Point { return c.position }

// Pins returns the component's pins in declaration order.
func (c *Component) Pins() []*Pin { return c.pins }

// AddPin creates a pin at the given offset from the component position.
func (c *Component) AddPin(name string, offset geometry.Point) *Pin {
	pin := &Pin{
		id:     diagram.NewID(),
		name:   name,
		owner:  c,
		offset: offset,
	}
	c.pins = append(c.pins, pin)
	return pin
}

// Move translates the component. Pins move with it; attached wires follow
// on their next draw because they re-query pin positions.
func (c *Component) Move(dx, dy float64) {
	c.position = c.position.Translate(dx, dy)
}

// Pin is a terminal anchor on a component. It satisfies diagram.Terminal
// and keeps non-owning back-references to the wires attached to it, so a
// deleted wire can be detached and a deleted component's wires can be
// found and notified by the editing session.
type Pin struct {
	id     string
	name   string
	owner  *Component
	offset geometry.Point
	wires  []*diagram.Wire
}

// ID returns the pin's stable identifier.
func (p *Pin) ID() string { return p.id }

// Name returns the pin's name within its component.
func (p *Pin) Name() string { return p.name }

// Owner returns the component the pin belongs to.
func (p *Pin) Owner() *Component { return p.owner }

// AbsolutePosition returns the pin's position in surface coordinates.
func (p *Pin) AbsolutePosition() geometry.Point {
	return p.owner.position.Add(p.offset)
}

// AttachWire records a wire as connected to this pin. Attaching the same
// wire twice is a no-op.
func (p *Pin) AttachWire(w *diagram.Wire) {
	for _, existing := range p.wires {
		if existing == w {
			return
		}
	}
	p.wires = append(p.wires, w)
}

// DetachWire drops the back-reference to a wire. Detaching a wire that was
// never attached is a no-op.
func (p *Pin) DetachWire(w *diagram.Wire) {
	for i, existing := range p.wires {
		if existing == w {
			p.wires = append(p.wires[:i], p.wires[i+1:]...)
			return
		}
	}
}

// Wires returns the wires currently attached to this pin.
func (p *Pin) Wires() []*diagram.Wire {
	wires := make([]*diagram.Wire, len(p.wires))
	copy(wires, p.wires)
	return wires
}
