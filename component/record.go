package component

import "wiredraw/geometry"

// Record is the persisted form of a component. Pin ids are stored so wires
// can resolve their terminal references against a reloaded component.
type Record struct {
	ID       string         `json:"id" validate:"required"`
	Label    string         `json:"label"`
	Position geometry.Point `json:"position"`
	Pins     []PinRecord    `json:"pins" validate:"dive"`
}

// PinRecord is the persisted form of a pin.
type PinRecord struct {
	ID     string         `json:"id" validate:"required"`
	Name   string         `json:"name"`
	Offset geometry.Point `json:"offset"`
}

// ToRecord returns the component's persisted form.
func (c *Component) ToRecord() Record {
	rec := Record{
		ID:       c.id,
		Label:    c.label,
		Position: c.position,
		Pins:     make([]PinRecord, len(c.pins)),
	}
	for i, p := range c.pins {
		rec.Pins[i] = PinRecord{ID: p.id, Name: p.name, Offset: p.offset}
	}
	return rec
}

// FromRecord reconstructs a component with its persisted ids intact.
func FromRecord(rec Record) *Component {
	c := &Component{
		id:       rec.ID,
		label:    rec.Label,
		position: rec.Position,
	}
	for _, pr := range rec.Pins {
		c.pins = append(c.pins, &Pin{
			id:     pr.ID,
			name:   pr.Name,
			owner:  c,
			offset: pr.Offset,
		})
	}
	return c
}
