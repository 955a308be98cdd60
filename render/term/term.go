// Package term provides a cell-based Surface that quantizes stroked
// geometry onto a rune matrix, for previewing drawings in a terminal.
package term

import (
	"strings"

	"wiredraw/diagram"
	"wiredraw/geometry"
)

// Surface draws onto a fixed-size rune grid. Stroked polylines are
// rasterized with Bresenham per segment; the rune for each cell follows
// the segment's dominant direction. Colors are tracked per cell so a
// terminal front end can style its output.
type Surface struct {
	width, height int
	cells         []rune
	cellColors    []string

	strokeColor string
	fillColor   string
	lineDash    []float64
	stack       []savedStyle

	path [][]geometry.Point
	cur  []geometry.Point
}

type savedStyle struct {
	strokeColor string
	fillColor   string
	lineDash    []float64
}

var _ diagram.Surface = (*Surface)(nil)

// New creates a cleared surface of the given cell dimensions.
func New(width, height int) *Surface {
	s := &Surface{
		width:  width,
		height: height,
		cells:  make([]rune, width*height),
	}
	s.cellColors = make([]string, width*height)
	s.Clear()
	return s
}

// Size returns the grid dimensions.
func (s *Surface) Size() (width, height int) { return s.width, s.height }

// Clear resets every cell to a space.
func (s *Surface) Clear() {
	for i := range s.cells {
		s.cells[i] = ' '
		s.cellColors[i] = ""
	}
}

// CellAt returns the rune and color at a grid position, or a space when out
// of bounds.
func (s *Surface) CellAt(x, y int) (rune, string) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return ' ', ""
	}
	return s.cells[y*s.width+x], s.cellColors[y*s.width+x]
}

// String returns the grid as newline-separated rows.
func (s *Surface) String() string {
	var sb strings.Builder
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y*s.width+x])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (s *Surface) set(x, y int, r rune, color string) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.cells[y*s.width+x] = r
	s.cellColors[y*s.width+x] = color
}

func (s *Surface) Save() {
	s.stack = append(s.stack, savedStyle{
		strokeColor: s.strokeColor,
		fillColor:   s.fillColor,
		lineDash:    s.lineDash,
	})
}

func (s *Surface) Restore() {
	if n := len(s.stack); n > 0 {
		st := s.stack[n-1]
		s.strokeColor = st.strokeColor
		s.fillColor = st.fillColor
		s.lineDash = st.lineDash
		s.stack = s.stack[:n-1]
	}
}

func (s *Surface) SetStrokeColor(color string) { s.strokeColor = color }

func (s *Surface) SetFillColor(color string) { s.fillColor = color }

// SetLineWidth is accepted but has no cell-level meaning.
func (s *Surface) SetLineWidth(float64) {}

func (s *Surface) SetLineDash(dash []float64) { s.lineDash = dash }

// Caps and joins have no representation on a rune grid.
func (s *Surface) SetLineCap(diagram.LineCap) {}

func (s *Surface) SetLineJoin(diagram.LineJoin) {}

func (s *Surface) BeginPath() {
	s.path = nil
	s.cur = nil
}

func (s *Surface) MoveTo(x, y float64) {
	if len(s.cur) > 0 {
		s.path = append(s.path, s.cur)
	}
	s.cur = []geometry.Point{{X: x, Y: y}}
}

func (s *Surface) LineTo(x, y float64) {
	s.cur = append(s.cur, geometry.Point{X: x, Y: y})
}

// Stroke rasterizes the accumulated subpaths onto the grid.
func (s *Surface) Stroke() {
	paths := s.path
	if len(s.cur) > 0 {
		paths = append(paths, s.cur)
	}
	for _, pts := range paths {
		drawn := 0
		for i := 0; i < len(pts)-1; i++ {
			drawn = s.strokeSegment(pts[i], pts[i+1], drawn)
		}
	}
	s.path = nil
	s.cur = nil
}

// strokeSegment draws one segment, carrying the dash phase across segments
// via the drawn counter.
func (s *Surface) strokeSegment(a, b geometry.Point, drawn int) int {
	r := segmentRune(a, b)
	for _, cell := range geometry.RasterizeSegment(a, b) {
		if s.dashVisible(drawn) {
			s.set(cell.X, cell.Y, r, s.strokeColor)
		}
		drawn++
	}
	return drawn
}

// dashVisible reports whether the nth stroked cell falls in an "on" run of
// the dash pattern.
func (s *Surface) dashVisible(n int) bool {
	if len(s.lineDash) == 0 {
		return true
	}
	total := 0.0
	for _, d := range s.lineDash {
		total += d
	}
	if total == 0 {
		return true
	}
	pos := float64(n) - total*float64(int(float64(n)/total))
	for i, d := range s.lineDash {
		if pos < d {
			return i%2 == 0
		}
		pos -= d
	}
	return true
}

// segmentRune picks the line rune for a segment by its dominant direction.
func segmentRune(a, b geometry.Point) rune {
	dx := geometry.Round(b.X) - geometry.Round(a.X)
	dy := geometry.Round(b.Y) - geometry.Round(a.Y)
	switch {
	case dy == 0:
		return '─'
	case dx == 0:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

func (s *Surface) FillCircle(x, y, r float64) {
	s.set(geometry.Round(x), geometry.Round(y), '●', s.fillColor)
}

func (s *Surface) FillRect(x, y, w, h float64) {
	s.set(geometry.Round(x+w/2), geometry.Round(y+h/2), '■', s.fillColor)
}

func (s *Surface) FillText(text string, x, y float64) {
	cx, cy := geometry.Round(x), geometry.Round(y)
	for i, r := range []rune(text) {
		s.set(cx+i, cy, r, s.fillColor)
	}
}
