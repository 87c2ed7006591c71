package hal

import (
	"image"
	"math"
	"testing"
)

func TestFramebufferClearRGB(t *testing.T) {
	// Odd sizes exercise the tail of the doubling copy.
	f := NewFramebuffer(7, 3)
	f.ClearRGB(1, 2, 3)
	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			r, g, b, ok := f.RGB(x, y)
			if !ok || r != 1 || g != 2 || b != 3 {
				t.Fatalf("RGB(%d, %d) = %d %d %d %v, want 1 2 3 true", x, y, r, g, b, ok)
			}
		}
	}
	pix := f.Image().Pix
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0xFF {
			t.Fatalf("alpha at byte %d = %#x, want 0xff", i, pix[i])
		}
	}
}

func TestFramebufferSetRGBClips(t *testing.T) {
	f := NewFramebuffer(4, 4)
	f.SetRGB(-1, 0, 9, 9, 9)
	f.SetRGB(4, 0, 9, 9, 9)
	f.SetRGB(0, 4, 9, 9, 9)
	f.SetRGB(2, 1, 9, 8, 7)

	if _, _, _, ok := f.RGB(4, 0); ok {
		t.Fatal("RGB(4, 0) ok = true, want false")
	}
	r, g, b, _ := f.RGB(2, 1)
	if r != 9 || g != 8 || b != 7 {
		t.Fatalf("RGB(2, 1) = %d %d %d, want 9 8 7", r, g, b)
	}
	set := 0
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if r, _, _, _ := f.RGB(x, y); r != 0 {
				set++
			}
		}
	}
	if set != 1 {
		t.Fatalf("%d pixels set, want 1", set)
	}
}

func TestFramebufferFillRectRGB(t *testing.T) {
	f := NewFramebuffer(5, 5)
	f.FillRectRGB(-2, 3, 4, 10, 0xFF, 0, 0)
	f.FillRectRGB(1, 1, 0, 3, 0, 0xFF, 0)

	want := map[image.Point]bool{
		image.Pt(0, 3): true, image.Pt(1, 3): true,
		image.Pt(0, 4): true, image.Pt(1, 4): true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			r, g, _, _ := f.RGB(x, y)
			if g != 0 {
				t.Fatalf("zero-width fill touched (%d, %d)", x, y)
			}
			if (r == 0xFF) != want[image.Pt(x, y)] {
				t.Fatalf("pixel (%d, %d) red = %v, want %v", x, y, r == 0xFF, want[image.Pt(x, y)])
			}
		}
	}
}

func TestFramebufferFillRectRGBHugeBox(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		want       []image.Point
	}{
		{name: "width past int range", x: 1, y: 1, w: math.MaxInt, h: 2, want: []image.Point{image.Pt(1, 1), image.Pt(3, 2)}},
		{name: "height past int range", x: 2, y: 3, w: 1, h: math.MaxInt, want: []image.Point{image.Pt(2, 3), image.Pt(2, 4)}},
		{name: "far negative origin", x: math.MinInt, y: 0, w: math.MaxInt, h: 1, want: nil},
		{name: "far negative covering", x: -10, y: -5, w: math.MaxInt, h: math.MaxInt, want: []image.Point{image.Pt(0, 0), image.Pt(3, 4)}},
		{name: "far positive origin", x: math.MaxInt, y: 0, w: math.MaxInt, h: 1, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFramebuffer(4, 5)
			f.FillRectRGB(tt.x, tt.y, tt.w, tt.h, 0xFF, 0, 0)
			want := make(map[image.Point]bool)
			for _, p := range tt.want {
				want[p] = true
			}
			set := 0
			for y := 0; y < 5; y++ {
				for x := 0; x < 4; x++ {
					if r, _, _, _ := f.RGB(x, y); r == 0xFF {
						set++
						continue
					}
					if want[image.Pt(x, y)] {
						t.Fatalf("pixel (%d, %d) not filled", x, y)
					}
				}
			}
			if len(tt.want) == 0 && set != 0 {
				t.Fatalf("%d pixels filled, want 0", set)
			}
		})
	}
}

func TestSnapshotRGBA(t *testing.T) {
	f := NewFramebuffer(3, 2)
	f.SetRGB(1, 1, 10, 20, 30)

	snap := snapshotRGBA(nil, f.Image())
	f.SetRGB(1, 1, 0, 0, 0)
	if got := snap.RGBAAt(1, 1); got.R != 10 || got.G != 20 || got.B != 30 {
		t.Fatalf("snapshot pixel = %v, want 10 20 30", got)
	}

	again := snapshotRGBA(snap, f.Image())
	if again != snap {
		t.Fatal("snapshotRGBA reallocated a destination of the right size")
	}
	if got := again.RGBAAt(1, 1); got.R != 0 {
		t.Fatalf("snapshot pixel R = %d, want 0", got.R)
	}

	other := snapshotRGBA(image.NewRGBA(image.Rect(0, 0, 1, 1)), f.Image())
	if other.Bounds() != f.Bounds() {
		t.Fatalf("snapshotRGBA bounds = %v, want %v", other.Bounds(), f.Bounds())
	}
}
