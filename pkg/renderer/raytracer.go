package renderer

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
)

// SamplerFactory supplies the sampler for one image row. Row 0 is the bottom of the image.
type SamplerFactory func(row int) core.Sampler

// Raytracer handles the rendering process
type Raytracer struct {
	camera     *Camera
	world      geometry.Hittable
	integrator integrator.Integrator
	config     Config
	logger     core.Logger
	samplers   SamplerFactory
}

// NewRaytracer creates a new raytracer. The world must not change while a render is running.
func NewRaytracer(camera *Camera, world geometry.Hittable, integ integrator.Integrator, config Config, logger core.Logger) *Raytracer {
	if integ == nil {
		integ = integrator.NewPathTracingIntegrator(nil)
	}
	if logger == nil {
		logger = core.DiscardLogger()
	}
	rt := &Raytracer{
		camera:     camera,
		world:      world,
		integrator: integ,
		config:     config,
		logger:     logger,
	}
	rt.samplers = rt.seededSamplers
	return rt
}

// seededSamplers gives each row its own deterministic random stream,
// so the image does not depend on how rows are scheduled
func (rt *Raytracer) seededSamplers(row int) core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(rt.config.Seed + int64(row))))
}

// SetSamplerFactory replaces the per-row sampler source
func (rt *Raytracer) SetSamplerFactory(factory SamplerFactory) {
	if factory == nil {
		factory = rt.seededSamplers
	}
	rt.samplers = factory
}

// Config returns the configuration the raytracer renders with
func (rt *Raytracer) Config() Config {
	return rt.config
}

// RenderPixel averages SamplesPerPixel jittered samples for pixel (i, j)
// and gamma corrects the mean. j counts up from the bottom row.
func (rt *Raytracer) RenderPixel(i, j int, sampler core.Sampler) core.Color {
	var sum core.SampleSum
	for range rt.config.SamplesPerPixel {
		u := (float64(i) + sampler.Get1D()) / float64(rt.config.Width-1)
		v := (float64(j) + sampler.Get1D()) / float64(rt.config.Height-1)

		ray := rt.camera.GetRay(u, v, sampler)
		sum.Add(rt.integrator.RayColor(ray, rt.world, sampler, rt.config.MaxDepth))
	}
	return sum.Mean().GammaCorrect(rt.config.Gamma)
}

// renderRow renders image row j from left to right
func (rt *Raytracer) renderRow(ctx context.Context, j int, sampler core.Sampler) ([]core.Color, error) {
	row := make([]core.Color, rt.config.Width)
	for i := range row {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row[i] = rt.RenderPixel(i, j, sampler)
	}
	return row, nil
}

// Render traces the whole image and streams it to sink top row first.
// Rows render in parallel but reach the sink strictly in order. The first
// sink error aborts the render and is returned.
func (rt *Raytracer) Render(ctx context.Context, sink ScanlineSink) (RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return RenderStats{}, fmt.Errorf("invalid render config: %w", err)
	}

	start := time.Now()
	width, height := rt.config.Width, rt.config.Height

	if err := sink.Begin(width, height); err != nil {
		return RenderStats{}, fmt.Errorf("failed to begin image: %w", err)
	}

	pool := NewWorkerPool(ctx, rt.config.NumWorkers)
	stats := RenderStats{Workers: pool.NumWorkers()}

	// results[y] carries output row y, which is image row height-1-y
	results := make([]chan []core.Color, height)
	for y := range results {
		results[y] = make(chan []core.Color, 1)
	}

	pool.Go(func(ctx context.Context) error {
		for y, result := range results {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case pixels := <-result:
				if err := sink.WriteScanline(y, pixels); err != nil {
					return fmt.Errorf("failed to write scanline %d: %w", y, err)
				}
			}
			stats.Rows++
			rt.logger.Printf("Scanlines remaining: %d", height-1-y)
		}
		return nil
	})

	for y := range height {
		if pool.Context().Err() != nil {
			break
		}
		j := height - 1 - y
		sampler := rt.samplers(j)
		pool.Go(func(ctx context.Context) error {
			pixels, err := rt.renderRow(ctx, j, sampler)
			if err != nil {
				return err
			}
			results[y] <- pixels
			return nil
		})
	}

	if err := pool.Wait(); err != nil {
		return stats, err
	}

	if err := sink.End(); err != nil {
		return stats, fmt.Errorf("failed to finish image: %w", err)
	}

	stats.TotalPixels = width * height
	stats.TotalSamples = stats.TotalPixels * rt.config.SamplesPerPixel
	stats.Elapsed = time.Since(start)
	return stats, nil
}
