package hal

import "image"

// Framebuffer is a fixed-size RGBA pixel buffer.
//
// Pixels are stored opaque (alpha is always 0xFF). Coordinates outside the
// buffer are ignored by SetRGB and FillRectRGB.
type Framebuffer struct {
	img *image.RGBA
}

// NewFramebuffer returns a black framebuffer of the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	f := &Framebuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	f.ClearRGB(0, 0, 0)
	return f
}

func (f *Framebuffer) Width() int              { return f.img.Rect.Dx() }
func (f *Framebuffer) Height() int             { return f.img.Rect.Dy() }
func (f *Framebuffer) Bounds() image.Rectangle { return f.img.Rect }

// Image exposes the backing image. Callers must not change its bounds.
func (f *Framebuffer) Image() *image.RGBA { return f.img }

func (f *Framebuffer) ClearRGB(r, g, b uint8) {
	pix := f.img.Pix
	if len(pix) < 4 {
		return
	}
	pix[0], pix[1], pix[2], pix[3] = r, g, b, 0xFF
	// Doubling copy: each pass duplicates the already-filled prefix.
	for filled := 4; filled < len(pix); filled *= 2 {
		copy(pix[filled:], pix[:filled])
	}
}

func (f *Framebuffer) SetRGB(x, y int, r, g, b uint8) {
	if !(image.Point{X: x, Y: y}).In(f.img.Rect) {
		return
	}
	off := f.img.PixOffset(x, y)
	p := f.img.Pix[off : off+4 : off+4]
	p[0], p[1], p[2], p[3] = r, g, b, 0xFF
}

func (f *Framebuffer) RGB(x, y int) (r, g, b uint8, ok bool) {
	if !(image.Point{X: x, Y: y}).In(f.img.Rect) {
		return 0, 0, 0, false
	}
	off := f.img.PixOffset(x, y)
	p := f.img.Pix[off : off+4 : off+4]
	return p[0], p[1], p[2], true
}

// FillRectRGB fills the w×h box at (x, y), clipped to the buffer. The box may
// extend past the int range; only its part on the buffer is touched.
func (f *Framebuffer) FillRectRGB(x, y, w, h int, r, g, b uint8) {
	x0, x1 := clampSpan(x, w, f.Width())
	y0, y1 := clampSpan(y, h, f.Height())
	if x0 >= x1 || y0 >= y1 {
		return
	}
	for py := y0; py < y1; py++ {
		off := f.img.PixOffset(x0, py)
		row := f.img.Pix[off : off+(x1-x0)*4]
		for i := 0; i < len(row); i += 4 {
			row[i], row[i+1], row[i+2], row[i+3] = r, g, b, 0xFF
		}
	}
}

// clampSpan intersects [pos, pos+n) with [0, limit) without computing pos+n.
func clampSpan(pos, n, limit int) (lo, hi int) {
	if n <= 0 || pos >= limit {
		return 0, 0
	}
	if pos < 0 {
		// Signs differ, so n+pos cannot overflow.
		n += pos
		if n <= 0 {
			return 0, 0
		}
		pos = 0
	}
	if n >= limit-pos {
		return pos, limit
	}
	return pos, pos + n
}
