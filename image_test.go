package canvas

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestImageRoundTrip verifies Canvas → image.RGBA → Canvas preserves every
// pixel exactly (the buffer stores opaque colors only).
func TestImageRoundTrip(t *testing.T) {
	c := New(16, 16)
	c.DrawCircleSolid(8, 8, 5, Red)
	c.DrawLine(0, 0, 15, 15, Blue)

	back := FromImage(c.Image())

	if diff := cmp.Diff(c.Buffer(), back.Buffer()); diff != "" {
		t.Errorf("round trip changed pixels (-orig +back):\n%s", diff)
	}
}

// TestImageAt verifies the image.Image view of the canvas.
func TestImageAt(t *testing.T) {
	c := New(4, 4)
	c.Set(1, 2, RGB{R: 10, G: 20, B: 30})

	got := c.At(1, 2)
	want := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	if got != want {
		t.Errorf("At(1, 2): got %v, want %v", got, want)
	}
	if c.At(-1, 0) != (color.RGBA{A: 255}) {
		t.Errorf("At out of bounds: got %v, want opaque black", c.At(-1, 0))
	}
	if c.Bounds().Dx() != 4 || c.Bounds().Dy() != 4 {
		t.Errorf("Bounds: got %v", c.Bounds())
	}
}

// TestSavePNGOpenRoundTrip verifies a canvas survives a PNG save and load
// bit for bit.
func TestSavePNGOpenRoundTrip(t *testing.T) {
	c := New(12, 9)
	c.Fill(RGB{R: 30, G: 40, B: 50})
	c.DrawCircle(6, 4, 3, White)

	path := filepath.Join(t.TempDir(), "roundtrip.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	loaded, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if loaded.Width() != 12 || loaded.Height() != 9 {
		t.Fatalf("loaded dimensions: got %dx%d, want 12x9", loaded.Width(), loaded.Height())
	}
	if diff := cmp.Diff(c.Buffer(), loaded.Buffer()); diff != "" {
		t.Errorf("PNG round trip changed pixels (-orig +loaded):\n%s", diff)
	}
}

// TestOpenMissingFile verifies Open surfaces file errors.
func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

// TestScaled verifies nearest-neighbor upscaling turns each source pixel
// into an unmixed block.
func TestScaled(t *testing.T) {
	c := New(2, 2)
	c.Set(0, 0, RGB{R: 255})
	c.Set(1, 0, RGB{G: 255})
	c.Set(0, 1, RGB{B: 255})
	c.Set(1, 1, RGB{R: 255, G: 255, B: 255})

	big := c.Scaled(4, 4)
	if big.Width() != 4 || big.Height() != 4 {
		t.Fatalf("dimensions: got %dx%d, want 4x4", big.Width(), big.Height())
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want, _ := c.Get(x/2, y/2)
			got, _ := big.Get(x, y)
			if got != want {
				t.Errorf("pixel (%d, %d): got %v, want %v", x, y, got, want)
			}
		}
	}
}
