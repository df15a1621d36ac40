package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// At implements the image.Image interface. Off-canvas coordinates read as
// opaque black.
func (c *Canvas) At(x, y int) color.Color {
	px, _ := c.Get(x, y)
	return color.RGBA{R: px.R, G: px.G, B: px.B, A: 255}
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}

// Image converts the canvas to an image.RGBA, every pixel fully opaque.
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(c.Bounds())
	for i, px := range c.buffer {
		img.Pix[i*4+0] = px.R
		img.Pix[i*4+1] = px.G
		img.Pix[i*4+2] = px.B
		img.Pix[i*4+3] = 255
	}
	return img
}

// FromImage creates a canvas from an image. Alpha is dropped; the canvas
// stores opaque colors only.
func FromImage(img image.Image) *Canvas {
	bounds := img.Bounds()
	cv := New(bounds.Dx(), bounds.Dy())
	for y := 0; y < cv.height; y++ {
		for x := 0; x < cv.width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			cv.Set(x, y, RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)})
		}
	}
	return cv
}

// Open loads an image file into a new canvas.
func Open(path string) (*Canvas, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open canvas image: %w", err)
	}
	return FromImage(img), nil
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, c.Image())
}

// Scaled returns a copy of the canvas resampled to the given dimensions
// with nearest-neighbor interpolation, preserving hard pixel edges.
func (c *Canvas) Scaled(width, height int) *Canvas {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), c, c.Bounds(), xdraw.Src, nil)
	return FromImage(dst)
}
