// Package document persists a drawing as JSON and reconstructs it with
// two-phase reference resolution: scalar fields first, then terminal
// references once every component and pin exists again.
package document

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"wiredraw/component"
	"wiredraw/diagram"
)

// FormatVersion is written into every saved file.
const FormatVersion = 1

// File is the on-disk JSON structure.
type File struct {
	Version    int                `json:"version" validate:"required,gte=1"`
	Components []component.Record `json:"components" validate:"dive"`
	Wires      []diagram.Record   `json:"wires" validate:"dive"`
}

// Document is a reconstructed drawing.
type Document struct {
	Components []*component.Component
	Wires      []*diagram.Wire

	// Unresolved lists terminal ids that wires referenced but that no
	// loaded component provides. Dangling references are reported, not
	// fatal: the wires load detached.
	Unresolved []string
}

var validate = validator.New()

// Marshal serializes a document to the on-disk format.
func Marshal(doc *Document) ([]byte, error) {
	file := File{Version: FormatVersion}
	for _, c := range doc.Components {
		file.Components = append(file.Components, c.ToRecord())
	}
	for _, w := range doc.Wires {
		file.Wires = append(file.Wires, w.ToRecord())
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return data, nil
}

// Unmarshal reconstructs a document. Structural problems (malformed JSON,
// records failing validation) are fatal; dangling terminal references are
// collected into Unresolved.
func Unmarshal(data []byte) (*Document, error) {
	var file File
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	if err := validate.Struct(&file); err != nil {
		return nil, fmt.Errorf("validating document: %w", err)
	}

	doc := &Document{}

	// Phase one: rebuild components and index their pins.
	pins := make(diagram.LookupMap)
	for _, rec := range file.Components {
		c := component.FromRecord(rec)
		doc.Components = append(doc.Components, c)
		for _, pin := range c.Pins() {
			pins[pin.ID()] = pin
		}
	}

	// Phase two: rebuild wires and resolve their terminal references
	// against the pin table.
	for _, rec := range file.Wires {
		w := diagram.FromRecord(rec, nil, nil)
		res := w.ResolveTerminals(pins, rec.StartTerminalID, rec.EndTerminalID)
		if rec.StartTerminalID != "" && !res.Start {
			doc.Unresolved = append(doc.Unresolved, rec.StartTerminalID)
		}
		if rec.EndTerminalID != "" && !res.End {
			doc.Unresolved = append(doc.Unresolved, rec.EndTerminalID)
		}
		if pin, ok := w.StartTerminal().(*component.Pin); ok {
			pin.AttachWire(w)
		}
		if pin, ok := w.EndTerminal().(*component.Pin); ok {
			pin.AttachWire(w)
		}
		doc.Wires = append(doc.Wires, w)
	}
	return doc, nil
}

// Save writes the document to path.
func Save(doc *Document, path string) error {
	data, err := Marshal(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

// Load reads a document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return Unmarshal(data)
}
