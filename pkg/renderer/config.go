package renderer

import (
	"errors"
	"fmt"
)

// Config contains rendering configuration
type Config struct {
	Width           int     // Image width in pixels
	Height          int     // Image height in pixels
	SamplesPerPixel int     // Number of rays per pixel
	MaxDepth        int     // Maximum ray bounce depth
	Gamma           float64 // Display gamma; each channel is raised to 1/Gamma
	Seed            int64   // Base seed for per-row samplers
	NumWorkers      int     // Parallel row renderers, 0 means one per CPU
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Gamma:           2.0,
		Seed:            42,
	}
}

// MergeConfig overlays the non-zero fields of override onto base
func MergeConfig(base, override Config) Config {
	result := base

	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.SamplesPerPixel != 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth != 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.Gamma != 0 {
		result.Gamma = override.Gamma
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	if override.NumWorkers != 0 {
		result.NumWorkers = override.NumWorkers
	}

	return result
}

// Validate reports every field that cannot drive a render
func (c Config) Validate() error {
	var errs []error
	if c.Width < 2 {
		errs = append(errs, fmt.Errorf("width must be at least 2, got %d", c.Width))
	}
	if c.Height < 2 {
		errs = append(errs, fmt.Errorf("height must be at least 2, got %d", c.Height))
	}
	if c.SamplesPerPixel <= 0 {
		errs = append(errs, fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel))
	}
	if c.MaxDepth <= 0 {
		errs = append(errs, fmt.Errorf("max depth must be positive, got %d", c.MaxDepth))
	}
	if !(c.Gamma > 0) {
		errs = append(errs, fmt.Errorf("gamma must be positive, got %g", c.Gamma))
	}
	if c.NumWorkers < 0 {
		errs = append(errs, fmt.Errorf("workers must not be negative, got %d", c.NumWorkers))
	}
	return errors.Join(errs...)
}
