package hal

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func TestWritePNGScales(t *testing.T) {
	frame := image.NewRGBA(image.Rect(0, 0, 2, 1))
	frame.SetRGBA(0, 0, color.RGBA{R: 0xFF, A: 0xFF})
	frame.SetRGBA(1, 0, color.RGBA{B: 0xFF, A: 0xFF})

	var buf bytes.Buffer
	if err := WritePNG(&buf, frame, 3); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 6, 3) {
		t.Fatalf("bounds = %v, want (0,0)-(6,3)", got)
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			r, _, b, _ := img.At(x, y).RGBA()
			wantRed := x < 3
			if (r == 0xFFFF) != wantRed || (b == 0xFFFF) == wantRed {
				t.Fatalf("pixel (%d, %d) = %v", x, y, img.At(x, y))
			}
		}
	}
}

func TestWritePNGNilFrame(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, nil, 1); err == nil {
		t.Fatal("WritePNG(nil) err = nil")
	}
}
