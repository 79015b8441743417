package imageio

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

func TestPPMWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewPPMWriter(&buf)

	if err := w.Begin(2, 2); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteScanline(0, []core.Color{core.White, core.NewColor(0.5, 0, 1)}); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteScanline(1, []core.Color{core.Black, core.NewColor(0.999, 0.004, 0.25)}); err != nil {
		t.Fatal(err)
	}
	if err := w.End(); err != nil {
		t.Fatal(err)
	}

	expected := "P3\n2 2\n255\n255 255 255\n127 0 255\n0 0 0\n255 1 63\n"
	if buf.String() != expected {
		t.Errorf("Expected:\n%q\ngot:\n%q", expected, buf.String())
	}
}

func TestPPMWriter_FlushesEachScanline(t *testing.T) {
	var buf bytes.Buffer
	w := NewPPMWriter(&buf)
	w.Begin(1, 3)

	if buf.String() != "P3\n1 3\n255\n" {
		t.Fatalf("Header should be flushed by Begin, got %q", buf.String())
	}
	w.WriteScanline(0, []core.Color{core.White})
	if !strings.HasSuffix(buf.String(), "255 255 255\n") {
		t.Errorf("Scanline should be flushed immediately, got %q", buf.String())
	}
}

func TestPPMWriter_Errors(t *testing.T) {
	t.Run("out of order", func(t *testing.T) {
		w := NewPPMWriter(&bytes.Buffer{})
		w.Begin(1, 2)
		if err := w.WriteScanline(1, []core.Color{core.Black}); err == nil {
			t.Error("Expected out of order error")
		}
	})

	t.Run("incomplete image", func(t *testing.T) {
		w := NewPPMWriter(&bytes.Buffer{})
		w.Begin(1, 2)
		w.WriteScanline(0, []core.Color{core.Black})
		if err := w.End(); err == nil {
			t.Error("Expected incomplete image error")
		}
	})

	t.Run("write failure", func(t *testing.T) {
		w := NewPPMWriter(failingWriter{})
		if err := w.Begin(1, 1); !errors.Is(err, errBrokenPipe) {
			t.Errorf("Expected broken pipe, got %v", err)
		}
	})
}

var errBrokenPipe = errors.New("broken pipe")

// failingWriter rejects every write
type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, errBrokenPipe }
