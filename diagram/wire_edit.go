package diagram

import "wiredraw/geometry"

// Setters validate before mutating. A rejected value returns a *FieldError
// and leaves the field exactly as it was; the wire is never left in a
// partially updated state.

// SetColor sets the stroke color. Empty colors are rejected.
func (w *Wire) SetColor(color string) error {
	if color == "" {
		return rejectf("color", "must not be empty")
	}
	w.color = color
	return nil
}

// SetLineWidth sets the stroke width. Negative widths are rejected.
func (w *Wire) SetLineWidth(width float64) error {
	if width < 0 {
		return rejectf("lineWidth", "must not be negative, got %v", width)
	}
	w.lineWidth = width
	return nil
}

// SetLineDash sets the dash pattern. Every entry must be non-negative. The
// slice is copied; nil or empty means a solid stroke.
func (w *Wire) SetLineDash(dash []float64) error {
	for _, d := range dash {
		if d < 0 {
			return rejectf("lineDash", "entries must not be negative, got %v", d)
		}
	}
	if len(dash) == 0 {
		w.lineDash = nil
		return nil
	}
	w.lineDash = make([]float64, len(dash))
	copy(w.lineDash, dash)
	return nil
}

// SetTemporary marks or unmarks the wire as in-progress.
func (w *Wire) SetTemporary(temporary bool) error {
	w.temporary = temporary
	return nil
}

// SetPath replaces the interior bend points. The slice is copied and its
// order preserved.
func (w *Wire) SetPath(path []geometry.Point) error {
	if path == nil {
		return rejectf("path", "must not be nil")
	}
	w.path = make([]geometry.Point, len(path))
	copy(w.path, path)
	return nil
}

// SetHitMargin sets the fixed hit-test slack. Negative margins are rejected.
func (w *Wire) SetHitMargin(margin float64) error {
	if margin < 0 {
		return rejectf("hitMargin", "must not be negative, got %v", margin)
	}
	w.hitMargin = margin
	return nil
}

// Edit applies a partial property update. Recognized keys are color,
// lineWidth, lineDash, isTemporary and path; unknown keys are silently
// ignored. Each present key is routed through the corresponding validated
// setter; a value of the wrong type or shape rejects that key and leaves
// the field unchanged. All rejections are returned so the caller can log
// them.
func (w *Wire) Edit(changes map[string]any) []error {
	var rejected []error
	reject := func(err error) {
		if err != nil {
			rejected = append(rejected, err)
		}
	}

	if v, ok := changes["color"]; ok {
		if s, ok := v.(string); ok {
			reject(w.SetColor(s))
		} else {
			reject(rejectf("color", "expected string, got %T", v))
		}
	}
	if v, ok := changes["lineWidth"]; ok {
		if f, ok := asFloat(v); ok {
			reject(w.SetLineWidth(f))
		} else {
			reject(rejectf("lineWidth", "expected number, got %T", v))
		}
	}
	if v, ok := changes["lineDash"]; ok {
		if dash, ok := asFloatSlice(v); ok {
			reject(w.SetLineDash(dash))
		} else {
			reject(rejectf("lineDash", "expected number sequence, got %T", v))
		}
	}
	if v, ok := changes["isTemporary"]; ok {
		if b, ok := v.(bool); ok {
			reject(w.SetTemporary(b))
		} else {
			reject(rejectf("isTemporary", "expected bool, got %T", v))
		}
	}
	if v, ok := changes["path"]; ok {
		if path, ok := asPointSlice(v); ok {
			reject(w.SetPath(path))
		} else {
			reject(rejectf("path", "expected point sequence, got %T", v))
		}
	}
	return rejected
}

// asFloat coerces the numeric types that reach Edit from Go callers and
// from decoded JSON.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

func asFloatSlice(v any) ([]float64, bool) {
	switch s := v.(type) {
	case []float64:
		return s, true
	case []any:
		out := make([]float64, len(s))
		for i, e := range s {
			f, ok := asFloat(e)
			if !ok {
				return nil, false
			}
			out[i] = f
		}
		return out, true
	}
	return nil, false
}

func asPointSlice(v any) ([]geometry.Point, bool) {
	switch s := v.(type) {
	case []geometry.Point:
		return s, true
	case []any:
		out := make([]geometry.Point, len(s))
		for i, e := range s {
			m, ok := e.(map[string]any)
			if !ok {
				return nil, false
			}
			x, okX := asFloat(m["x"])
			y, okY := asFloat(m["y"])
			if !okX || !okY {
				return nil, false
			}
			out[i] = geometry.Point{X: x, Y: y}
		}
		return out, true
	}
	return nil, false
}
