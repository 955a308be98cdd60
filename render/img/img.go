// Package img provides a raster Surface backed by fogleman/gg, used for
// exporting drawings to PNG.
package img

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"wiredraw/diagram"
)

// colors carries the stroke/fill split the contract requires; gg keeps a
// single current color, so the split lives here and is applied just before
// each stroke or fill.
type colors struct {
	stroke string
	fill   string
}

// Surface rasterizes drawing commands onto an RGBA image.
type Surface struct {
	dc     *gg.Context
	colors colors
	stack  []colors
	face   font.Face
}

var _ diagram.Surface = (*Surface)(nil)

// New creates a white-backed raster surface of the given pixel size.
func New(width, height int) *Surface {
	dc := gg.NewContext(width, height)
	dc.SetHexColor("#ffffff")
	dc.Clear()
	return &Surface{
		dc:     dc,
		colors: colors{stroke: "#000000", fill: "#000000"},
	}
}

// Image returns the rendered image.
func (s *Surface) Image() image.Image { return s.dc.Image() }

// SavePNG writes the rendered image to path.
func (s *Surface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("writing png: %w", err)
	}
	return nil
}

func (s *Surface) Save() {
	s.dc.Push()
	s.stack = append(s.stack, s.colors)
}

func (s *Surface) Restore() {
	s.dc.Pop()
	if n := len(s.stack); n > 0 {
		s.colors = s.stack[n-1]
		s.stack = s.stack[:n-1]
	}
}

func (s *Surface) SetStrokeColor(color string) { s.colors.stroke = color }

func (s *Surface) SetFillColor(color string) { s.colors.fill = color }

func (s *Surface) SetLineWidth(width float64) { s.dc.SetLineWidth(width) }

func (s *Surface) SetLineDash(dash []float64) { s.dc.SetDash(dash...) }

func (s *Surface) SetLineCap(cap diagram.LineCap) {
	switch cap {
	case diagram.CapRound:
		s.dc.SetLineCap(gg.LineCapRound)
	case diagram.CapSquare:
		s.dc.SetLineCap(gg.LineCapSquare)
	default:
		s.dc.SetLineCap(gg.LineCapButt)
	}
}

func (s *Surface) SetLineJoin(join diagram.LineJoin) {
	// gg has no miter join; bevel is the closest fallback.
	if join == diagram.JoinRound {
		s.dc.SetLineJoin(gg.LineJoinRound)
	} else {
		s.dc.SetLineJoin(gg.LineJoinBevel)
	}
}

func (s *Surface) BeginPath() { s.dc.ClearPath() }

func (s *Surface) MoveTo(x, y float64) { s.dc.MoveTo(x, y) }

func (s *Surface) LineTo(x, y float64) { s.dc.LineTo(x, y) }

func (s *Surface) Stroke() {
	s.dc.SetHexColor(s.colors.stroke)
	s.dc.Stroke()
}

func (s *Surface) FillCircle(x, y, r float64) {
	s.dc.SetHexColor(s.colors.fill)
	s.dc.DrawCircle(x, y, r)
	s.dc.Fill()
}

func (s *Surface) FillRect(x, y, w, h float64) {
	s.dc.SetHexColor(s.colors.fill)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

// FillText renders text with its baseline at (x, y) in the monospace face.
func (s *Surface) FillText(text string, x, y float64) {
	if s.face == nil {
		s.face = monoFace(12)
	}
	s.dc.SetFontFace(s.face)
	s.dc.SetHexColor(s.colors.fill)
	s.dc.DrawString(text, x, y)
}

func monoFace(size float64) font.Face {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		// gomono.TTF is compiled in; parsing it cannot fail at runtime.
		panic(err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size})
}
