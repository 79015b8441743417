package imageio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// PPMWriter streams a plain-text (P3) PPM image, flushing after every scanline
type PPMWriter struct {
	w      *bufio.Writer
	width  int
	height int
	rows   int
}

// NewPPMWriter creates a PPM sink writing to w
func NewPPMWriter(w io.Writer) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriter(w)}
}

// Begin writes the "P3\n<w> <h>\n255\n" header
func (p *PPMWriter) Begin(width, height int) error {
	p.width, p.height = width, height
	if _, err := fmt.Fprintf(p.w, "P3\n%d %d\n255\n", width, height); err != nil {
		return err
	}
	return p.w.Flush()
}

// WriteScanline writes one "r g b" line per pixel
func (p *PPMWriter) WriteScanline(y int, pixels []core.Color) error {
	if y != p.rows {
		return fmt.Errorf("ppm: scanline %d written out of order, expected %d", y, p.rows)
	}
	for _, c := range pixels {
		if _, err := fmt.Fprintln(p.w, c.String()); err != nil {
			return err
		}
	}
	p.rows++
	return p.w.Flush()
}

// End checks that the whole image was written
func (p *PPMWriter) End() error {
	if p.rows != p.height {
		return fmt.Errorf("ppm: wrote %d of %d scanlines", p.rows, p.height)
	}
	return p.w.Flush()
}
