// Package diagram contains the editable entity model: the capability
// contracts shared by every drawable object and the connectivity-aware Wire.
package diagram

import (
	"encoding/json"

	"wiredraw/geometry"
)

// Entity is the common capability set of every editable object on the
// drawing: identity, selection, translation, partial edits, hit testing,
// and serialization.
type Entity interface {
	json.Marshaler

	// ID returns the unique identifier, fixed at creation.
	ID() string

	// Selected reports whether the entity is currently selected.
	Selected() bool

	// SetSelected sets the selection flag.
	SetSelected(selected bool)

	// Move translates the entity by (dx, dy) where the entity allows it.
	Move(dx, dy float64)

	// Edit applies a partial property update. Unknown keys are ignored;
	// rejected values are returned and leave the entity unchanged.
	Edit(changes map[string]any) []error

	// Hit reports whether the point (x, y) in surface coordinates touches
	// the entity within its hit tolerance.
	Hit(x, y float64) bool

	// Draw renders the entity onto the surface.
	Draw(s Surface)
}

// Terminal is an anchor point owned by a component that a wire may attach
// to. Wires hold terminals as non-owning references: the owning component
// controls the terminal's position and lifetime.
type Terminal interface {
	// ID returns the terminal's stable identifier, used for persistence.
	ID() string

	// AbsolutePosition returns the terminal's current position in surface
	// coordinates.
	AbsolutePosition() geometry.Point
}

// TerminalLookup resolves terminal ids to live terminals during the second
// phase of deserialization. A miss returns nil rather than an error.
type TerminalLookup interface {
	Terminal(id string) Terminal
}

// LookupMap adapts a plain map to the TerminalLookup interface.
type LookupMap map[string]Terminal

// Terminal returns the terminal for id, or nil when absent.
func (m LookupMap) Terminal(id string) Terminal {
	return m[id]
}
