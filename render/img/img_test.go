package img

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func luminance(t *testing.T, s *Surface, x, y int) uint32 {
	t.Helper()
	r, g, b, _ := s.Image().At(x, y).RGBA()
	return (r + g + b) / 3
}

func TestStrokePaintsPixels(t *testing.T) {
	s := New(20, 20)

	s.SetStrokeColor("#000000")
	s.SetLineWidth(2)
	s.BeginPath()
	s.MoveTo(2, 10)
	s.LineTo(18, 10)
	s.Stroke()

	assert.Less(t, luminance(t, s, 10, 10), uint32(0x4000), "stroke center should be dark")
	assert.Greater(t, luminance(t, s, 10, 2), uint32(0xc000), "background should stay white")
}

func TestFillCircleUsesFillColor(t *testing.T) {
	s := New(20, 20)

	s.SetFillColor("#ff0000")
	s.FillCircle(10, 10, 4)

	r, g, _, _ := s.Image().At(10, 10).RGBA()
	assert.Greater(t, r, uint32(0xc000))
	assert.Less(t, g, uint32(0x4000))
}

func TestSaveRestoreRoundTripsColors(t *testing.T) {
	s := New(10, 10)

	s.SetStrokeColor("#00ff00")
	s.Save()
	s.SetStrokeColor("#0000ff")
	s.Restore()

	s.SetLineWidth(4)
	s.BeginPath()
	s.MoveTo(1, 5)
	s.LineTo(9, 5)
	s.Stroke()

	_, g, b, _ := s.Image().At(5, 5).RGBA()
	assert.Greater(t, g, uint32(0xc000), "restored stroke color should be green")
	assert.Less(t, b, uint32(0x4000))
}

func TestSavePNG(t *testing.T) {
	s := New(4, 4)
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, s.SavePNG(path))
}

func TestNewClearsToWhite(t *testing.T) {
	s := New(4, 4)
	c := color.RGBAModel.Convert(s.Image().At(2, 2)).(color.RGBA)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, c)
}
