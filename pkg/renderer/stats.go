package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of camera rays traced
	Rows         int           // Scanlines delivered to the sink
	Workers      int           // Parallel row renderers used
	Elapsed      time.Duration // Wall time from Begin to End
}

// SamplesPerSecond returns the primary ray throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Elapsed.Seconds()
}

func (s RenderStats) String() string {
	return fmt.Sprintf("%d pixels, %d samples on %d workers in %v (%.0f samples/s)",
		s.TotalPixels, s.TotalSamples, s.Workers, s.Elapsed.Round(time.Millisecond), s.SamplesPerSecond())
}
