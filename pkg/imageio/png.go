package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// PNGWriter collects scanlines and encodes a PNG when the image is complete
type PNGWriter struct {
	w   io.Writer
	img *image.NRGBA
}

// NewPNGWriter creates a PNG sink writing to w
func NewPNGWriter(w io.Writer) *PNGWriter {
	return &PNGWriter{w: w}
}

// Begin implements renderer.ScanlineSink
func (p *PNGWriter) Begin(width, height int) error {
	p.img = image.NewNRGBA(image.Rect(0, 0, width, height))
	return nil
}

// WriteScanline implements renderer.ScanlineSink
func (p *PNGWriter) WriteScanline(y int, pixels []core.Color) error {
	if !(image.Point{Y: y}.In(p.img.Rect)) {
		return fmt.Errorf("png: scanline %d out of range", y)
	}
	for x, c := range pixels {
		// same quantization as PPM output
		b := c.Bytes()
		p.img.SetNRGBA(x, y, color.NRGBA{R: b[0], G: b[1], B: b[2], A: 255})
	}
	return nil
}

// End encodes the image
func (p *PNGWriter) End() error {
	if err := png.Encode(p.w, p.img); err != nil {
		return fmt.Errorf("png: %w", err)
	}
	return nil
}
