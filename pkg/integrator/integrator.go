package integrator

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the light arriving along ray, following at most
	// depth bounces. Randomness comes only from sampler.
	RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler, depth int) core.Color
}

// Background supplies the light seen by rays that escape the scene
type Background interface {
	Evaluate(ray core.Ray) core.Color
}

// GradientBackground blends vertically from Bottom to Top by ray direction
type GradientBackground struct {
	Top    core.Color
	Bottom core.Color
}

// NewSkyBackground returns the white to sky-blue gradient
func NewSkyBackground() GradientBackground {
	return GradientBackground{
		Top:    core.NewColor(0.5, 0.7, 1.0),
		Bottom: core.White,
	}
}

// Evaluate maps the unit direction's y from [-1, 1] onto [Bottom, Top]
func (g GradientBackground) Evaluate(ray core.Ray) core.Color {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return g.Bottom.Interpolate(g.Top, t)
}
