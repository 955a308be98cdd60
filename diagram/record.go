package diagram

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"wiredraw/geometry"
)

// Record is the persisted form of a wire. Terminal references are stored as
// ids only, never as nested objects: that breaks the potential reference
// cycle through the owning component and lets wires and components be
// persisted independently. Live references are re-established in a second
// pass via ResolveTerminals once every terminal exists again.
type Record struct {
	ID              string           `json:"id" validate:"required"`
	StartTerminalID string           `json:"startTerminalId"`
	EndTerminalID   string           `json:"endTerminalId"`
	Path            []geometry.Point `json:"path"`
	Color           string           `json:"color" validate:"required"`
	LineWidth       float64          `json:"lineWidth" validate:"gte=0"`
	LineDash        []float64        `json:"lineDash" validate:"dive,gte=0"`
}

// ToRecord returns the wire's persisted form.
func (w *Wire) ToRecord() Record {
	rec := Record{
		ID:        w.id,
		Path:      w.Path(),
		Color:     w.color,
		LineWidth: w.lineWidth,
		LineDash:  w.LineDash(),
	}
	if w.start != nil {
		rec.StartTerminalID = w.start.ID()
	}
	if w.end != nil {
		rec.EndTerminalID = w.end.ID()
	}
	return rec
}

// MarshalJSON serializes the wire as its Record.
func (w *Wire) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.ToRecord())
}

// FromRecord reconstructs a wire from its persisted scalar fields. Terminal
// objects may be supplied directly for same-session reconstruction, or left
// nil and resolved later. Invalid field values fall back to defaults rather
// than failing the whole record; a record without an id gets a fresh one.
func FromRecord(rec Record, start, end Terminal) *Wire {
	w := NewWire()
	if rec.ID != "" {
		w.id = rec.ID
	}
	if rec.Path != nil {
		_ = w.SetPath(rec.Path)
	}
	_ = w.SetColor(rec.Color)
	_ = w.SetLineWidth(rec.LineWidth)
	_ = w.SetLineDash(rec.LineDash)
	w.start = start
	w.end = end
	return w
}

// FromJSON decodes a persisted wire record. Malformed input is fatal and
// surfaced to the caller; per-field fallbacks follow FromRecord.
func FromJSON(data []byte, start, end Terminal) (*Wire, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decoding wire record: %w", err)
	}
	return FromRecord(rec, start, end), nil
}

// Resolution reports the outcome of the second deserialization phase.
type Resolution struct {
	Start bool
	End   bool
}

// ResolveTerminals re-establishes the wire's terminal references from an
// id-to-terminal lookup. Explicitly supplied ids win; with an empty id the
// id cached on the currently assigned terminal is used instead. A lookup
// miss leaves the reference nil and is reported through the returned flags,
// never as an error: a dangling reference is an expected condition when the
// owning component was deleted.
func (w *Wire) ResolveTerminals(lookup TerminalLookup, startID, endID string) Resolution {
	if startID == "" && w.start != nil {
		startID = w.start.ID()
	}
	if endID == "" && w.end != nil {
		endID = w.end.ID()
	}

	var res Resolution
	w.start = nil
	w.end = nil
	if startID != "" {
		if t := lookup.Terminal(startID); t != nil {
			w.start = t
			res.Start = true
		}
	}
	if endID != "" {
		if t := lookup.Terminal(endID); t != nil {
			w.end = t
			res.End = true
		}
	}
	return res
}

// ApplyRecord overwrites the wire's state in place from a persisted record,
// keeping the wire's identity. Invalid field values are dropped per the
// fail-soft setter rules. Terminal references are resolved strictly from the
// record's ids: an empty id detaches that end.
func (w *Wire) ApplyRecord(rec Record, lookup TerminalLookup) Resolution {
	if rec.Path != nil {
		_ = w.SetPath(rec.Path)
	} else {
		w.path = nil
	}
	_ = w.SetColor(rec.Color)
	_ = w.SetLineWidth(rec.LineWidth)
	_ = w.SetLineDash(rec.LineDash)

	w.start = nil
	w.end = nil
	return w.ResolveTerminals(lookup, rec.StartTerminalID, rec.EndTerminalID)
}

// RestoreJSON restores the wire from a serialized snapshot, as produced by
// MarshalJSON. Malformed input is fatal; see ApplyRecord for field and
// terminal semantics.
func (w *Wire) RestoreJSON(data []byte, lookup TerminalLookup) (Resolution, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Resolution{}, fmt.Errorf("decoding wire snapshot: %w", err)
	}
	return w.ApplyRecord(rec, lookup), nil
}

// NewID returns a fresh unique entity id.
func NewID() string {
	return uuid.NewString()
}
