// Package history provides a per-key linear undo/redo log over opaque
// snapshots. The store never inspects snapshot contents; it only tracks the
// ordered state sequence and a cursor per key.
package history

import (
	"errors"
	"fmt"
)

// ErrUnknownKey is returned when an operation targets a key that was never
// initialized or was cleared.
var ErrUnknownKey = errors.New("history: unknown key")

// ErrIndexOutOfRange is returned by Restore for an index outside the state
// sequence.
var ErrIndexOutOfRange = errors.New("history: index out of range")

// entry is one key's linear history: a non-empty state sequence plus the
// cursor identifying the active state. 0 <= cursor < len(states) holds at
// all times after initialization.
type entry[S any] struct {
	states []S
	cursor int
}

// Store tracks an independent linear snapshot history per key. K is the
// entity id type, S the snapshot type; snapshots are opaque to the store.
// Zero value note: use New, the map must exist before use.
type Store[K comparable, S any] struct {
	entries map[K]*entry[S]
}

// New creates an empty store.
func New[K comparable, S any]() *Store[K, S] {
	return &Store[K, S]{entries: make(map[K]*entry[S])}
}

// Initialize creates the history for key with s0 as its only state. If the
// key already has a history this is a no-op, so callers can initialize
// unconditionally on first touch.
func (st *Store[K, S]) Initialize(key K, s0 S) {
	if _, ok := st.entries[key]; ok {
		return
	}
	st.entries[key] = &entry[S]{states: []S{s0}}
}

// Has reports whether key has an initialized history.
func (st *Store[K, S]) Has(key K) bool {
	_, ok := st.entries[key]
	return ok
}

// Push appends a new state for key. When the cursor sits before the end of
// the sequence the forward states are discarded first: redo history does
// not survive a new edit. The cursor ends on the pushed state.
func (st *Store[K, S]) Push(key K, s S) error {
	e, ok := st.entries[key]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownKey, key)
	}
	if e.cursor < len(e.states)-1 {
		e.states = e.states[:e.cursor+1]
	}
	e.states = append(e.states, s)
	e.cursor = len(e.states) - 1
	return nil
}

// PopLatest removes the most recent state for key. The sequence is never
// emptied: with a single state this is a no-op. The cursor is clamped to
// the new last index.
func (st *Store[K, S]) PopLatest(key K) error {
	e, ok := st.entries[key]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownKey, key)
	}
	if len(e.states) == 1 {
		return nil
	}
	e.states = e.states[:len(e.states)-1]
	if e.cursor > len(e.states)-1 {
		e.cursor = len(e.states) - 1
	}
	return nil
}

// Trim drops key's oldest states until at most max remain, shifting the
// cursor so it keeps pointing at the same state. max < 1 is a no-op: a
// history is never emptied.
func (st *Store[K, S]) Trim(key K, max int) error {
	e, ok := st.entries[key]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownKey, key)
	}
	if max < 1 || len(e.states) <= max {
		return nil
	}
	drop := len(e.states) - max
	e.states = append(e.states[:0], e.states[drop:]...)
	e.cursor -= drop
	if e.cursor < 0 {
		e.cursor = 0
	}
	return nil
}

// Undo moves the cursor one state back, clamping at the oldest state, and
// returns the now-active state.
func (st *Store[K, S]) Undo(key K) (S, error) {
	e, ok := st.entries[key]
	if !ok {
		var zero S
		return zero, fmt.Errorf("%w: %v", ErrUnknownKey, key)
	}
	if e.cursor > 0 {
		e.cursor--
	}
	return e.states[e.cursor], nil
}

// Redo moves the cursor one state forward, clamping at the newest state,
// and returns the now-active state.
func (st *Store[K, S]) Redo(key K) (S, error) {
	e, ok := st.entries[key]
	if !ok {
		var zero S
		return zero, fmt.Errorf("%w: %v", ErrUnknownKey, key)
	}
	if e.cursor < len(e.states)-1 {
		e.cursor++
	}
	return e.states[e.cursor], nil
}

// Restore moves the cursor directly to index. An index outside the state
// sequence is an error and leaves the cursor unchanged.
func (st *Store[K, S]) Restore(key K, index int) (S, error) {
	e, ok := st.entries[key]
	if !ok {
		var zero S
		return zero, fmt.Errorf("%w: %v", ErrUnknownKey, key)
	}
	if index < 0 || index >= len(e.states) {
		var zero S
		return zero, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, len(e.states))
	}
	e.cursor = index
	return e.states[e.cursor], nil
}

// Current returns the active state for key.
func (st *Store[K, S]) Current(key K) (S, error) {
	e, ok := st.entries[key]
	if !ok {
		var zero S
		return zero, fmt.Errorf("%w: %v", ErrUnknownKey, key)
	}
	return e.states[e.cursor], nil
}

// List returns a shallow copy of key's state sequence, oldest first.
func (st *Store[K, S]) List(key K) ([]S, error) {
	e, ok := st.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownKey, key)
	}
	states := make([]S, len(e.states))
	copy(states, e.states)
	return states, nil
}

// Len returns the number of states recorded for key.
func (st *Store[K, S]) Len(key K) (int, error) {
	e, ok := st.entries[key]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownKey, key)
	}
	return len(e.states), nil
}

// CanUndo reports whether key has states behind the cursor.
func (st *Store[K, S]) CanUndo(key K) bool {
	e, ok := st.entries[key]
	return ok && e.cursor > 0
}

// CanRedo reports whether key has states ahead of the cursor.
func (st *Store[K, S]) CanRedo(key K) bool {
	e, ok := st.entries[key]
	return ok && e.cursor < len(e.states)-1
}

// Clear removes key's history entirely. The key must be re-initialized
// before further use.
func (st *Store[K, S]) Clear(key K) {
	delete(st.entries, key)
}

// ClearAll removes every key.
func (st *Store[K, S]) ClearAll() {
	st.entries = make(map[K]*entry[S])
}
