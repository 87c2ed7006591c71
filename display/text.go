package display

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Text draws str with the surface font. (x, y) is the left end of the
// baseline. Glyph pixels outside the surface are dropped.
func (s *Surface) Text(x, y int, str string, c Color) error {
	if s.closed {
		return ErrClosed
	}
	if x < math.MinInt16 || x > math.MaxInt16 || y < math.MinInt16 || y > math.MaxInt16 {
		return nil
	}
	tinyfont.WriteLine(s.Displayer(), s.font, int16(x), int16(y), str, c.toRGBA())
	return nil
}

// TextWidth returns the advance width of str in pixels.
func (s *Surface) TextWidth(str string) int {
	_, outbox := tinyfont.LineWidth(s.font, str)
	return int(outbox)
}

// Displayer adapts the surface to the tinygo display driver interface so
// tinyfont and similar renderers can draw on it. Display presents the
// surface.
func (s *Surface) Displayer() drivers.Displayer {
	return surfaceDisplayer{s: s}
}

type surfaceDisplayer struct {
	s *Surface
}

// Size reports the surface size, saturated to the int16 range.
func (d surfaceDisplayer) Size() (x, y int16) {
	return clampInt16(d.s.fb.Width()), clampInt16(d.s.fb.Height())
}

func (d surfaceDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.s.closed {
		return
	}
	d.s.fb.SetRGB(int(x), int(y), c.R, c.G, c.B)
}

func (d surfaceDisplayer) Display() error {
	return d.s.Present()
}

func clampInt16(v int) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	return int16(v)
}
