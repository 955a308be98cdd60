package diagram

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wiredraw/geometry"
)

// stubTerminal is a fixed-position terminal for tests.
type stubTerminal struct {
	id  string
	pos geometry.Point
}

func (t *stubTerminal) ID() string { return t.id }

func (t *stubTerminal) AbsolutePosition() geometry.Point { return t.pos }

func TestAllPointsDetached(t *testing.T) {
	w := NewWire()
	points := []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	require.NoError(t, w.SetPath(points))

	got := w.AllPoints()
	assert.Equal(t, points, got)
	assert.Len(t, got, w.PointCount())
}

func TestAllPointsIncludesTerminals(t *testing.T) {
	w := NewWire()
	require.NoError(t, w.SetPath([]geometry.Point{{X: 5, Y: 5}}))
	w.ConnectStart(&stubTerminal{id: "a", pos: geometry.Point{X: 0, Y: 0}})
	w.ConnectEnd(&stubTerminal{id: "b", pos: geometry.Point{X: 10, Y: 10}})

	got := w.AllPoints()
	require.Len(t, got, 3)
	assert.Equal(t, geometry.Point{X: 0, Y: 0}, got[0])
	assert.Equal(t, geometry.Point{X: 5, Y: 5}, got[1])
	assert.Equal(t, geometry.Point{X: 10, Y: 10}, got[2])
}

func TestAllPointsFollowsTerminalMoves(t *testing.T) {
	start := &stubTerminal{id: "a", pos: geometry.Point{X: 0, Y: 0}}
	w := NewWire()
	w.ConnectStart(start)
	w.AddPoint(geometry.Point{X: 5, Y: 0})

	start.pos = geometry.Point{X: 2, Y: 3}
	assert.Equal(t, geometry.Point{X: 2, Y: 3}, w.AllPoints()[0])
}

func TestMoveTranslatesFreeWire(t *testing.T) {
	w := NewWire()
	require.NoError(t, w.SetPath([]geometry.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}))

	w.Move(10, -5)
	assert.Equal(t, []geometry.Point{{X: 11, Y: -4}, {X: 12, Y: -3}}, w.Path())
}

func TestMoveIsNoOpWhenAttached(t *testing.T) {
	term := &stubTerminal{id: "a", pos: geometry.Point{X: 0, Y: 0}}
	original := []geometry.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}

	// Either terminal alone pins the wire.
	for _, connect := range []func(*Wire){
		func(w *Wire) { w.ConnectStart(term) },
		func(w *Wire) { w.ConnectEnd(term) },
	} {
		w := NewWire()
		require.NoError(t, w.SetPath(original))
		connect(w)
		w.Move(10, 10)
		assert.Equal(t, original, w.Path())
	}
}

func TestHitStraightWire(t *testing.T) {
	// lineWidth 4, margin 5 => tolerance 7.
	w := NewWire()
	require.NoError(t, w.SetPath([]geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}))
	require.NoError(t, w.SetLineWidth(4))
	require.NoError(t, w.SetHitMargin(5))

	assert.True(t, w.Hit(3, 3), "perpendicular distance 3 <= 7")
	assert.True(t, w.Hit(5, 0), "point exactly on the segment")
	assert.False(t, w.Hit(3, 20), "distance 20 > 7")
	assert.False(t, w.Hit(25, 0), "beyond the endpoint by more than tolerance")
}

func TestHitClampsToSegmentEnds(t *testing.T) {
	w := NewWire()
	require.NoError(t, w.SetPath([]geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}))
	require.NoError(t, w.SetLineWidth(2))
	require.NoError(t, w.SetHitMargin(2))

	// (13, 0) projects past the end; distance to the endpoint is 3 <= 3.
	assert.True(t, w.Hit(13, 0))
	// (14, 0) is 4 from the endpoint but only would hit the infinite line.
	assert.False(t, w.Hit(14, 0))
}

func TestHitZeroLengthSegment(t *testing.T) {
	w := NewWire()
	require.NoError(t, w.SetPath([]geometry.Point{{X: 5, Y: 5}, {X: 5, Y: 5}}))
	require.NoError(t, w.SetLineWidth(0))
	require.NoError(t, w.SetHitMargin(3))

	assert.True(t, w.Hit(7, 5))
	assert.False(t, w.Hit(9, 5))
}

func TestHitEmptyWire(t *testing.T) {
	assert.False(t, NewWire().Hit(0, 0))
}

func TestSettersRejectInvalidValues(t *testing.T) {
	w := NewWire()
	require.NoError(t, w.SetLineWidth(4))

	err := w.SetLineWidth(-1)
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "lineWidth", fieldErr.Field)
	assert.Equal(t, 4.0, w.LineWidth(), "rejected value leaves field unchanged")

	assert.Error(t, w.SetColor(""))
	assert.Error(t, w.SetLineDash([]float64{4, -2}))
	assert.Error(t, w.SetPath(nil))
	assert.Error(t, w.SetHitMargin(-0.5))
}

func TestEditRoutesWhitelistedKeys(t *testing.T) {
	w := NewWire()
	rejected := w.Edit(map[string]any{
		"color":       "#ff0000",
		"lineWidth":   2.5,
		"lineDash":    []float64{4, 2},
		"isTemporary": true,
		"path":        []geometry.Point{{X: 1, Y: 2}},
	})
	assert.Empty(t, rejected)
	assert.Equal(t, "#ff0000", w.Color())
	assert.Equal(t, 2.5, w.LineWidth())
	assert.Equal(t, []float64{4, 2}, w.LineDash())
	assert.True(t, w.Temporary())
	assert.Equal(t, []geometry.Point{{X: 1, Y: 2}}, w.Path())
}

func TestEditIgnoresUnknownKeys(t *testing.T) {
	w := NewWire()
	rejected := w.Edit(map[string]any{"bogus": 42, "id": "nope"})
	assert.Empty(t, rejected)
}

func TestEditRejectsWrongTypes(t *testing.T) {
	w := NewWire()
	require.NoError(t, w.SetLineWidth(3))

	rejected := w.Edit(map[string]any{
		"lineWidth": "wide",
		"color":     "#00ff00",
	})
	require.Len(t, rejected, 1)
	assert.Equal(t, 3.0, w.LineWidth(), "bad key rejected, field kept")
	assert.Equal(t, "#00ff00", w.Color(), "good key in same edit still applied")
}

func TestEditAcceptsDecodedJSONShapes(t *testing.T) {
	// The tool layer hands over values decoded from JSON: numbers arrive as
	// float64 and sequences as []any.
	w := NewWire()
	rejected := w.Edit(map[string]any{
		"lineDash": []any{4.0, 2.0},
		"path":     []any{map[string]any{"x": 1.0, "y": 2.0}},
	})
	assert.Empty(t, rejected)
	assert.Equal(t, []float64{4, 2}, w.LineDash())
	assert.Equal(t, []geometry.Point{{X: 1, Y: 2}}, w.Path())
}

func TestRecordRoundTrip(t *testing.T) {
	w := NewWire()
	require.NoError(t, w.SetPath([]geometry.Point{{X: 0, Y: 0}, {X: 3, Y: 4}}))
	require.NoError(t, w.SetColor("#123456"))
	require.NoError(t, w.SetLineWidth(2))
	require.NoError(t, w.SetLineDash([]float64{6, 3}))

	data, err := json.Marshal(w)
	require.NoError(t, err)

	restored, err := FromJSON(data, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, w.ID(), restored.ID())
	assert.Equal(t, w.Path(), restored.Path())
	assert.Equal(t, w.Color(), restored.Color())
	assert.Equal(t, w.LineWidth(), restored.LineWidth())
	assert.Equal(t, w.LineDash(), restored.LineDash())
}

func TestRecordPersistsTerminalIDsOnly(t *testing.T) {
	w := NewWire()
	w.ConnectStart(&stubTerminal{id: "pin-1"})
	w.ConnectEnd(&stubTerminal{id: "pin-2"})

	rec := w.ToRecord()
	assert.Equal(t, "pin-1", rec.StartTerminalID)
	assert.Equal(t, "pin-2", rec.EndTerminalID)
}

func TestFromJSONMalformed(t *testing.T) {
	_, err := FromJSON([]byte(`"not an object"`), nil, nil)
	assert.Error(t, err)

	_, err = FromJSON([]byte(`{broken`), nil, nil)
	assert.Error(t, err)
}

func TestResolveTerminals(t *testing.T) {
	pins := LookupMap{
		"pin-1": &stubTerminal{id: "pin-1", pos: geometry.Point{X: 0, Y: 0}},
		"pin-2": &stubTerminal{id: "pin-2", pos: geometry.Point{X: 9, Y: 9}},
	}

	w := NewWire()
	res := w.ResolveTerminals(pins, "pin-1", "pin-2")
	assert.True(t, res.Start)
	assert.True(t, res.End)
	assert.Equal(t, "pin-1", w.StartTerminal().ID())
	assert.Equal(t, "pin-2", w.EndTerminal().ID())
}

func TestResolveTerminalsMissLeavesNil(t *testing.T) {
	pins := LookupMap{"pin-1": &stubTerminal{id: "pin-1"}}

	w := NewWire()
	res := w.ResolveTerminals(pins, "pin-1", "gone")
	assert.True(t, res.Start)
	assert.False(t, res.End)
	assert.NotNil(t, w.StartTerminal())
	assert.Nil(t, w.EndTerminal(), "dangling reference resolves to nil, not an error")
}

func TestResolveTerminalsUsesCachedIDs(t *testing.T) {
	// Same-session resolution: the wire already holds terminal objects and
	// no explicit ids are supplied, so the cached ids drive the lookup.
	fresh := &stubTerminal{id: "pin-1", pos: geometry.Point{X: 4, Y: 4}}
	pins := LookupMap{"pin-1": fresh}

	w := NewWire()
	w.ConnectStart(&stubTerminal{id: "pin-1", pos: geometry.Point{X: 0, Y: 0}})
	res := w.ResolveTerminals(pins, "", "")
	assert.True(t, res.Start)
	assert.False(t, res.End)
	assert.Same(t, Terminal(fresh), w.StartTerminal())
}
