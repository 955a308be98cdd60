// Package editor ties the entity model, the terminal registry, and the
// history engine into one editing session. The session is the single
// writer: every mutation runs synchronously inside one input-event
// handler, so no locking is needed.
package editor

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"wiredraw/diagram"
	"wiredraw/history"
)

// ErrUnknownEntity is returned for operations on ids the session does not
// track.
var ErrUnknownEntity = errors.New("editor: unknown entity")

// wireDetacher is what a terminal must additionally implement for the
// session to clean up its back-references when a wire is deleted.
// Referential cleanup is the session's responsibility, not the wire's.
type wireDetacher interface {
	DetachWire(*diagram.Wire)
}

// wireAttacher is the inverse capability, used when a restore or connect
// re-establishes a reference.
type wireAttacher interface {
	AttachWire(*diagram.Wire)
}

// Session holds the live editing state: wires in draw order, the terminal
// registry used for reference resolution, and a per-entity snapshot
// history.
type Session struct {
	log       *zap.Logger
	wires     []*diagram.Wire
	byID      map[string]*diagram.Wire
	terminals diagram.LookupMap
	history   *history.Store[string, json.RawMessage]
	hashes    map[string]uint64
	maxStates int
}

// NewSession creates an empty session. A nil logger disables diagnostics.
func NewSession(log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		log:       log,
		byID:      make(map[string]*diagram.Wire),
		terminals: make(diagram.LookupMap),
		history:   history.New[string, json.RawMessage](),
		hashes:    make(map[string]uint64),
	}
}

// SetHistoryLimit caps how many states each wire's history keeps. When a
// commit pushes past the cap the oldest states are dropped. A limit below
// 1 means unlimited.
func (s *Session) SetHistoryLimit(n int) {
	s.maxStates = n
}

// Terminal implements diagram.TerminalLookup against the session registry.
func (s *Session) Terminal(id string) diagram.Terminal {
	return s.terminals[id]
}

// RegisterTerminal adds a terminal to the resolution registry.
func (s *Session) RegisterTerminal(t diagram.Terminal) {
	s.terminals[t.ID()] = t
}

// UnregisterTerminal drops a terminal, typically when its owning component
// is deleted. Wires still referencing it keep working until their next
// resolution, which reports the reference as dangling.
func (s *Session) UnregisterTerminal(id string) {
	delete(s.terminals, id)
}

// AddWire registers a wire and starts its history with the current state
// as the initial snapshot.
func (s *Session) AddWire(w *diagram.Wire) error {
	if _, ok := s.byID[w.ID()]; ok {
		return fmt.Errorf("editor: wire %s already added", w.ID())
	}
	snap, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("snapshotting wire %s: %w", w.ID(), err)
	}
	s.wires = append(s.wires, w)
	s.byID[w.ID()] = w
	s.history.Initialize(w.ID(), snap)
	s.hashes[w.ID()] = xxhash.Sum64(snap)
	return nil
}

// Wire returns the wire with the given id, or nil.
func (s *Session) Wire(id string) *diagram.Wire {
	return s.byID[id]
}

// Wires returns the session's wires in draw order.
func (s *Session) Wires() []*diagram.Wire {
	wires := make([]*diagram.Wire, len(s.wires))
	copy(wires, s.wires)
	return wires
}

// HitTest returns the topmost wire touching (x, y), or nil. Later-added
// wires draw on top, so they are tested first.
func (s *Session) HitTest(x, y float64) *diagram.Wire {
	for i := len(s.wires) - 1; i >= 0; i-- {
		if s.wires[i].Hit(x, y) {
			return s.wires[i]
		}
	}
	return nil
}

// Select marks one wire selected and deselects the rest. An empty id
// clears the selection.
func (s *Session) Select(id string) {
	for _, w := range s.wires {
		w.SetSelected(w.ID() == id)
	}
}

// Edit applies a partial update to a wire. Rejected fields keep their
// previous values; each rejection is logged and the count returned.
func (s *Session) Edit(id string, changes map[string]any) (rejected int, err error) {
	w, ok := s.byID[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownEntity, id)
	}
	for _, rejection := range w.Edit(changes) {
		s.log.Warn("edit rejected",
			zap.String("wire", id),
			zap.Error(rejection))
		rejected++
	}
	return rejected, nil
}

// Commit snapshots a wire's current state onto its history. Committing a
// state identical to the current snapshot is a no-op, so callers can
// commit after every gesture without flooding the log with duplicates.
func (s *Session) Commit(id string) error {
	w, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntity, id)
	}
	snap, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("snapshotting wire %s: %w", id, err)
	}
	sum := xxhash.Sum64(snap)
	if sum == s.hashes[id] {
		return nil
	}
	if err := s.history.Push(id, snap); err != nil {
		return err
	}
	if s.maxStates > 0 {
		if err := s.history.Trim(id, s.maxStates); err != nil {
			return err
		}
	}
	s.hashes[id] = sum
	return nil
}

// Undo steps a wire one state back and restores it in place.
func (s *Session) Undo(id string) error {
	snap, err := s.history.Undo(id)
	if err != nil {
		return err
	}
	return s.restore(id, snap)
}

// Redo steps a wire one state forward and restores it in place.
func (s *Session) Redo(id string) error {
	snap, err := s.history.Redo(id)
	if err != nil {
		return err
	}
	return s.restore(id, snap)
}

// RestoreAt jumps a wire's history cursor to an absolute index.
func (s *Session) RestoreAt(id string, index int) error {
	snap, err := s.history.Restore(id, index)
	if err != nil {
		return err
	}
	return s.restore(id, snap)
}

// CanUndo reports whether the wire has states behind its cursor.
func (s *Session) CanUndo(id string) bool { return s.history.CanUndo(id) }

// CanRedo reports whether the wire has states ahead of its cursor.
func (s *Session) CanRedo(id string) bool { return s.history.CanRedo(id) }

func (s *Session) restore(id string, snap json.RawMessage) error {
	w, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntity, id)
	}
	s.detachFromTerminals(w)
	res, err := w.RestoreJSON(snap, s)
	if err != nil {
		return err
	}
	s.attachToTerminals(w)
	rec := w.ToRecord()
	if rec.StartTerminalID != "" && !res.Start {
		s.log.Warn("start terminal unresolved after restore",
			zap.String("wire", id), zap.String("terminal", rec.StartTerminalID))
	}
	if rec.EndTerminalID != "" && !res.End {
		s.log.Warn("end terminal unresolved after restore",
			zap.String("wire", id), zap.String("terminal", rec.EndTerminalID))
	}
	s.hashes[id] = xxhash.Sum64(snap)
	return nil
}

// DeleteWire removes a wire from the session, drops its history, and
// notifies both terminals to forget their back-references.
func (s *Session) DeleteWire(id string) error {
	w, ok := s.byID[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntity, id)
	}
	s.detachFromTerminals(w)
	delete(s.byID, id)
	delete(s.hashes, id)
	s.history.Clear(id)
	for i, existing := range s.wires {
		if existing == w {
			s.wires = append(s.wires[:i], s.wires[i+1:]...)
			break
		}
	}
	return nil
}

// Connect anchors a wire end to a registered terminal and keeps the pin's
// back-reference in sync.
func (s *Session) Connect(wireID, terminalID string, atStart bool) error {
	w, ok := s.byID[wireID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEntity, wireID)
	}
	t := s.terminals[terminalID]
	if t == nil {
		return fmt.Errorf("editor: unknown terminal %s", terminalID)
	}
	if atStart {
		w.ConnectStart(t)
	} else {
		w.ConnectEnd(t)
	}
	if a, ok := t.(wireAttacher); ok {
		a.AttachWire(w)
	}
	return nil
}

// Draw renders every wire in draw order.
func (s *Session) Draw(surface diagram.Surface) {
	for _, w := range s.wires {
		w.Draw(surface)
	}
}

func (s *Session) detachFromTerminals(w *diagram.Wire) {
	for _, t := range []diagram.Terminal{w.StartTerminal(), w.EndTerminal()} {
		if d, ok := t.(wireDetacher); ok {
			d.DetachWire(w)
		}
	}
}

func (s *Session) attachToTerminals(w *diagram.Wire) {
	for _, t := range []diagram.Terminal{w.StartTerminal(), w.EndTerminal()} {
		if a, ok := t.(wireAttacher); ok {
			a.AttachWire(w)
		}
	}
}
