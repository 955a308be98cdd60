package diagram

// LineCap controls how stroked line ends are drawn.
type LineCap int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

// LineJoin controls how stroked segment joints are drawn.
type LineJoin int

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// Surface is the drawing capability contract consumed by the entity model.
// It is a thin stateful stroke/fill/path interface so the core can render
// through any backend: a raster context, a terminal grid, or a recording
// stub in tests.
type Surface interface {
	// Save pushes the current drawing state; Restore pops it. Entities
	// bracket their style changes with this pair.
	Save()
	Restore()

	// Stroke style.
	SetStrokeColor(color string)
	SetLineWidth(width float64)
	SetLineDash(dash []float64)
	SetLineCap(cap LineCap)
	SetLineJoin(join LineJoin)

	// Fill style, used for node handles and terminal markers.
	SetFillColor(color string)

	// Path construction. BeginPath starts an empty path; MoveTo starts a
	// subpath; LineTo extends it; Stroke draws the accumulated path.
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()

	// Markers.
	FillCircle(x, y, r float64)
	FillRect(x, y, w, h float64)

	// FillText draws text with its baseline origin at (x, y) in the
	// current fill color.
	FillText(text string, x, y float64)
}
