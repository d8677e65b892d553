package inputs

import (
	"image"
	"image/color"
	"testing"
)

func TestVflip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 3))
	for y := range 3 {
		src.Set(0, y, color.RGBA{R: uint8(y), A: 255})
		src.Set(1, y, color.RGBA{G: uint8(y), A: 255})
	}

	got := vflip(src)
	for y := range 3 {
		if c := got.RGBAAt(0, y); c.R != uint8(2-y) {
			t.Errorf("row %d col 0: R = %d, want %d", y, c.R, 2-y)
		}
		if c := got.RGBAAt(1, y); c.G != uint8(2-y) {
			t.Errorf("row %d col 1: G = %d, want %d", y, c.G, 2-y)
		}
	}

	twice := vflip(got)
	for i := range src.Pix {
		if twice.Pix[i] != src.Pix[i] {
			t.Fatalf("flipping twice changed byte %d", i)
		}
	}
}

func TestFlipRows(t *testing.T) {
	// Two rows, bottom row first as read back from GL.
	pix := []byte{
		1, 1, 1, 1, 2, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 4,
	}
	img := FlipRows(pix, 2, 2)
	if c := img.RGBAAt(0, 0); c.R != 3 {
		t.Errorf("top-left R = %d, want 3", c.R)
	}
	if c := img.RGBAAt(1, 1); c.R != 2 {
		t.Errorf("bottom-right R = %d, want 2", c.R)
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in   string
		want Filter
		ok   bool
	}{
		{"", FilterNearest, true},
		{"nearest", FilterNearest, true},
		{"linear", FilterLinear, true},
		{"mipmap", FilterMipmap, true},
		{"bicubic", 0, false},
	}
	for _, tc := range tests {
		got, err := ParseFilter(tc.in)
		if (err == nil) != tc.ok {
			t.Errorf("ParseFilter(%q) error = %v", tc.in, err)
			continue
		}
		if tc.ok && got != tc.want {
			t.Errorf("ParseFilter(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
