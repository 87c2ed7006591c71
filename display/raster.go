package display

import "math"

// Line draws a segment from (x1, y1) to (x2, y2) with the given stroke width.
// Endpoints may lie anywhere; the segment is clipped to the surface. A width
// below 1 draws nothing.
//
// Thick lines are built from parallel one-pixel lines offset along the minor
// axis, alternating below and above the centre line. Offsets whose line
// cannot reach the surface are skipped.
func (s *Surface) Line(x1, y1, x2, y2 int, c Color, width int) error {
	if s.closed {
		return ErrClosed
	}
	if width < 1 {
		return nil
	}

	xMajor := math.Abs(float64(x2)-float64(x1)) > math.Abs(float64(y2)-float64(y1))
	var ok bool
	x1, y1, x2, y2, ok = s.clipSegment(x1, y1, x2, y2, xMajor, width/2+1)
	if !ok {
		return nil
	}

	lo, hi := s.strokeRange(x1, y1, x2, y2, xMajor, -(width-1)/2, width/2)
	for off := lo; off <= hi; off++ {
		if xMajor {
			s.line(x1, y1+off, x2, y2+off, c)
		} else {
			s.line(x1+off, y1, x2+off, y2, c)
		}
	}
	return nil
}

// Rect draws the outline of the w×h box with top-left corner (x, y). The
// stroke of the given width grows inward. A width of 0 fills the box; a
// negative width, w or h draws nothing.
func (s *Surface) Rect(x, y, w, h int, c Color, width int) error {
	if s.closed {
		return ErrClosed
	}
	if width < 0 || w <= 0 || h <= 0 {
		return nil
	}

	if width == 0 || width > (w-1)/2 || width > (h-1)/2 {
		s.fb.FillRectRGB(x, y, w, h, c.R, c.G, c.B)
		return nil
	}
	// 2*width < w and 2*width < h from here on.
	s.fb.FillRectRGB(x, y, w, width, c.R, c.G, c.B)
	s.fb.FillRectRGB(x, addSat(y, h-width), w, width, c.R, c.G, c.B)
	s.fb.FillRectRGB(x, addSat(y, width), width, h-2*width, c.R, c.G, c.B)
	s.fb.FillRectRGB(addSat(x, w-width), addSat(y, width), width, h-2*width, c.R, c.G, c.B)
	return nil
}

// Circle draws a circle of radius r centred on (x, y). The stroke of the
// given width grows inward; a width of 0, or one larger than r, fills the
// disc. A radius of 0 plots the centre pixel. Negative r or width draw
// nothing.
func (s *Surface) Circle(x, y, r int, c Color, width int) error {
	if s.closed {
		return ErrClosed
	}
	if r < 0 || width < 0 {
		return nil
	}
	if r == 0 {
		s.fb.SetRGB(x, y, c.R, c.G, c.B)
		return nil
	}

	fill := width == 0 || width > r
	near, far := s.reach(x, y)
	if near > float64(r)+1 {
		return nil
	}
	inner := r - width
	if !fill && far < float64(inner)-1 {
		// The whole surface sits inside the hole.
		return nil
	}

	switch {
	case fill:
		s.fillCircle(x, y, r, c)
	case width == 1 && r <= rasterGuard:
		s.circle(x, y, r, c)
	case width == 1:
		s.bigCircle(x, y, r, c)
	default:
		s.ring(x, y, r, inner, c)
	}
	return nil
}

// line is Bresenham's algorithm; pixels outside the surface are dropped.
func (s *Surface) line(x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		s.fb.SetRGB(x0, y0, c.R, c.G, c.B)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// circle is the midpoint circle algorithm.
func (s *Surface) circle(cx, cy, r int, c Color) {
	x := r
	y := 0
	err := 0
	for x >= y {
		s.circlePoints(cx, cy, x, y, c)
		y++
		if err <= 0 {
			err += 2*y + 1
		}
		if err > 0 {
			x--
			err -= 2*x + 1
		}
	}
}

func (s *Surface) circlePoints(cx, cy, x, y int, c Color) {
	s.fb.SetRGB(cx+x, cy+y, c.R, c.G, c.B)
	s.fb.SetRGB(cx+y, cy+x, c.R, c.G, c.B)
	s.fb.SetRGB(cx-x, cy+y, c.R, c.G, c.B)
	s.fb.SetRGB(cx-y, cy+x, c.R, c.G, c.B)
	s.fb.SetRGB(cx-x, cy-y, c.R, c.G, c.B)
	s.fb.SetRGB(cx-y, cy-x, c.R, c.G, c.B)
	s.fb.SetRGB(cx+x, cy-y, c.R, c.G, c.B)
	s.fb.SetRGB(cx+y, cy-x, c.R, c.G, c.B)
}

// bigCircle plots an outline too large for the midpoint walk by solving the
// circle once per surface row and once per surface column.
func (s *Surface) bigCircle(cx, cy, r int, c Color) {
	rf := float64(r)
	fx, fy := float64(cx), float64(cy)
	for py := 0; py < s.fb.Height(); py++ {
		dy := float64(py) - fy
		if math.Abs(dy) > rf {
			continue
		}
		dx := math.Round(math.Sqrt((rf - dy) * (rf + dy)))
		s.plot(fx-dx, py, c)
		s.plot(fx+dx, py, c)
	}
	for px := 0; px < s.fb.Width(); px++ {
		dx := float64(px) - fx
		if math.Abs(dx) > rf {
			continue
		}
		dy := math.Round(math.Sqrt((rf - dx) * (rf + dx)))
		s.plotRow(px, fy-dy, c)
		s.plotRow(px, fy+dy, c)
	}
}

func (s *Surface) plot(x float64, py int, c Color) {
	if x >= 0 && x < float64(s.fb.Width()) {
		s.fb.SetRGB(int(x), py, c.R, c.G, c.B)
	}
}

func (s *Surface) plotRow(px int, y float64, c Color) {
	if y >= 0 && y < float64(s.fb.Height()) {
		s.fb.SetRGB(px, int(y), c.R, c.G, c.B)
	}
}

func (s *Surface) fillCircle(cx, cy, r int, c Color) {
	rf := float64(r)
	for py := 0; py < s.fb.Height(); py++ {
		dy := float64(py) - float64(cy)
		if math.Abs(dy) > rf {
			continue
		}
		dx := halfChord(rf, dy)
		s.span(cx, py, -dx, dx, c)
	}
}

// ring fills the pixels of each row that lie inside the outer disc and
// outside the inner one.
func (s *Surface) ring(cx, cy, outer, inner int, c Color) {
	of, inf := float64(outer), float64(inner)
	for py := 0; py < s.fb.Height(); py++ {
		dy := float64(py) - float64(cy)
		if math.Abs(dy) > of {
			continue
		}
		dxo := halfChord(of, dy)
		if math.Abs(dy) > inf {
			s.span(cx, py, -dxo, dxo, c)
			continue
		}
		dxi := halfChord(inf, dy)
		s.span(cx, py, -dxo, -dxi-1, c)
		s.span(cx, py, dxi+1, dxo, c)
	}
}

// span fills row py from cx+from to cx+to inclusive, clipped to the surface.
func (s *Surface) span(cx, py int, from, to float64, c Color) {
	lo := math.Max(float64(cx)+from, 0)
	hi := math.Min(float64(cx)+to, float64(s.fb.Width()-1))
	if lo > hi {
		return
	}
	s.fb.FillRectRGB(int(lo), py, int(hi)-int(lo)+1, 1, c.R, c.G, c.B)
}

// halfChord is the whole-pixel half width of a disc of radius r at row
// offset dy, with |dy| <= r.
func halfChord(r, dy float64) float64 {
	return math.Floor(math.Sqrt((r - dy) * (r + dy)))
}

// reach returns the distances from (x, y) to the nearest and the farthest
// pixel centre of the surface.
func (s *Surface) reach(x, y int) (near, far float64) {
	fx, fy := float64(x), float64(y)
	maxX, maxY := float64(s.fb.Width()-1), float64(s.fb.Height()-1)
	nx := math.Max(0, math.Min(fx, maxX))
	ny := math.Max(0, math.Min(fy, maxY))
	near = math.Hypot(fx-nx, fy-ny)
	far = math.Hypot(math.Max(math.Abs(fx), math.Abs(fx-maxX)), math.Max(math.Abs(fy), math.Abs(fy-maxY)))
	return near, far
}

// rasterGuard bounds the coordinates handed to line, and the radius handed
// to the midpoint walk, so one call cannot turn into billions of dropped
// pixels.
const rasterGuard = 1 << 14

// clipSegment clips the segment to the surface grown by one pixel along the
// major axis and by pad pixels along the minor one. Segments already inside
// the guard band are returned unchanged so their rasterisation does not
// shift.
func (s *Surface) clipSegment(x1, y1, x2, y2 int, xMajor bool, pad int) (int, int, int, int, bool) {
	w := s.fb.Width()
	h := s.fb.Height()
	inGuard := func(x, y int) bool {
		return x > -rasterGuard && x < w+rasterGuard && y > -rasterGuard && y < h+rasterGuard
	}
	if inGuard(x1, y1) && inGuard(x2, y2) {
		return x1, y1, x2, y2, true
	}

	padX, padY := float64(pad), 1.0
	if xMajor {
		padX, padY = 1, float64(pad)
	}
	xmin := -padX
	ymin := -padY
	xmax := float64(w-1) + padX
	ymax := float64(h-1) + padY
	cx0, cy0, cx1, cy1, ok := clipLineToRect(float64(x1), float64(y1), float64(x2), float64(y2), xmin, ymin, xmax, ymax)
	if !ok {
		return 0, 0, 0, 0, false
	}
	return roundInt(cx0), roundInt(cy0), roundInt(cx1), roundInt(cy1), true
}

// strokeRange narrows the stroke offsets [lo, hi] to those whose shifted copy
// of the segment can touch the surface. The result is empty when lo > hi.
func (s *Surface) strokeRange(x1, y1, x2, y2 int, xMajor bool, lo, hi int) (int, int) {
	// a runs along the major axis, b along the minor one.
	a1, b1, a2, b2 := float64(y1), float64(x1), float64(y2), float64(x2)
	alen, blen := s.fb.Height(), s.fb.Width()
	if xMajor {
		a1, b1, a2, b2 = float64(x1), float64(y1), float64(x2), float64(y2)
		alen, blen = s.fb.Width(), s.fb.Height()
	}

	from := math.Max(math.Min(a1, a2), 0)
	to := math.Min(math.Max(a1, a2), float64(alen-1))
	if from > to {
		return 0, -1
	}
	bmin, bmax := math.Min(b1, b2), math.Max(b1, b2)
	if a1 != a2 {
		slope := (b2 - b1) / (a2 - a1)
		bf := b1 + (from-a1)*slope
		bt := b1 + (to-a1)*slope
		bmin, bmax = math.Min(bf, bt), math.Max(bf, bt)
	}

	first := -math.Floor(bmax) - 1
	last := math.Ceil(float64(blen-1)-bmin) + 1
	if first > float64(lo) {
		lo = int(first)
	}
	if last < float64(hi) {
		hi = int(last)
	}
	return lo, hi
}

// clipLineToRect is Liang-Barsky clipping against an inclusive rectangle.
func clipLineToRect(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx := x1 - x0
	dy := y1 - y0
	u1 := 0.0
	u2 := 1.0

	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		r := q / p
		if p < 0 {
			if r > u2 {
				return false
			}
			if r > u1 {
				u1 = r
			}
			return true
		}
		if r < u1 {
			return false
		}
		if r < u2 {
			u2 = r
		}
		return true
	}

	if !clip(-dx, x0-xmin) || !clip(dx, xmax-x0) || !clip(-dy, y0-ymin) || !clip(dy, ymax-y0) {
		return 0, 0, 0, 0, false
	}
	return x0 + u1*dx, y0 + u1*dy, x0 + u2*dx, y0 + u2*dy, true
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

// addSat returns a+b saturated to the int range.
func addSat(a, b int) int {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return math.MaxInt
	case b < 0 && a < math.MinInt-b:
		return math.MinInt
	}
	return a + b
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
