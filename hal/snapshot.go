package hal

import (
	"fmt"
	"image"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
)

// WritePNG encodes frame as PNG, magnified by an integer scale with
// nearest-neighbour sampling so every surface pixel stays a sharp square.
func WritePNG(w io.Writer, frame *image.RGBA, scale int) error {
	if frame == nil {
		return fmt.Errorf("png: no frame")
	}
	if scale < 1 {
		scale = 1
	}

	out := frame
	if scale > 1 {
		b := frame.Bounds()
		out = image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		xdraw.NearestNeighbor.Scale(out, out.Bounds(), frame, b, xdraw.Src, nil)
	}
	if err := png.Encode(w, out); err != nil {
		return fmt.Errorf("png: %w", err)
	}
	return nil
}
