package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// ScanlineSink receives a finished image one row at a time, top row first.
// Any error aborts the render.
type ScanlineSink interface {
	Begin(width, height int) error
	WriteScanline(y int, pixels []core.Color) error
	End() error
}

// Framebuffer is an in-memory ScanlineSink that can be read back as an image
type Framebuffer struct {
	width, height int
	pixels        []core.Color
}

// NewFramebuffer creates an empty framebuffer; Begin sizes it
func NewFramebuffer() *Framebuffer {
	return &Framebuffer{}
}

// Begin implements ScanlineSink
func (f *Framebuffer) Begin(width, height int) error {
	f.width, f.height = width, height
	f.pixels = make([]core.Color, width*height)
	return nil
}

// WriteScanline implements ScanlineSink
func (f *Framebuffer) WriteScanline(y int, pixels []core.Color) error {
	if y < 0 || y >= f.height {
		return fmt.Errorf("scanline %d out of range [0, %d)", y, f.height)
	}
	if len(pixels) != f.width {
		return fmt.Errorf("scanline %d has %d pixels, want %d", y, len(pixels), f.width)
	}
	copy(f.pixels[y*f.width:], pixels)
	return nil
}

// End implements ScanlineSink
func (f *Framebuffer) End() error { return nil }

// Pixel returns the color at column x of output row y (row 0 is the top)
func (f *Framebuffer) Pixel(x, y int) core.Color {
	return f.pixels[y*f.width+x]
}

func (f *Framebuffer) ColorModel() color.Model { return color.RGBA64Model }

func (f *Framebuffer) Bounds() image.Rectangle { return image.Rect(0, 0, f.width, f.height) }

func (f *Framebuffer) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(f.Bounds())) {
		return color.RGBA64{}
	}
	return f.Pixel(x, y)
}
