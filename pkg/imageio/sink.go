package imageio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// Output is a ScanlineSink bound to its destination. Close releases the destination.
type Output struct {
	renderer.ScanlineSink
	Format string // "ppm" or "png"
	closer io.Closer
}

// Close closes the underlying file; stdout is left open.
// Only the first call closes; later calls return nil.
func (o *Output) Close() error {
	if o.closer == nil {
		return nil
	}
	closer := o.closer
	o.closer = nil
	return closer.Close()
}

// Open selects an output for path. An empty path or "-" writes PPM to stdout;
// otherwise the extension (.ppm or .png) picks the format.
func Open(path string, stdout io.Writer) (*Output, error) {
	if path == "" || path == "-" {
		return &Output{ScanlineSink: NewPPMWriter(stdout), Format: "ppm"}, nil
	}

	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format != "ppm" && format != "png" {
		return nil, fmt.Errorf("unsupported output format %q (use .ppm or .png)", filepath.Ext(path))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("error creating output directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("error creating file: %w", err)
	}

	out := &Output{Format: format, closer: file}
	if format == "png" {
		out.ScanlineSink = NewPNGWriter(file)
	} else {
		out.ScanlineSink = NewPPMWriter(file)
	}
	return out, nil
}
