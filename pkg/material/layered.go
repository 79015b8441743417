package material

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// Layered represents a material with two layers - an outer and inner material.
// Light hits the outer layer first; if it scatters into the surface it reaches
// the inner layer at the same point. This models coatings and varnishes.
type Layered struct {
	Outer Material // Outer layer material (e.g., clear coat)
	Inner Material // Inner layer material (e.g., base paint)
}

// NewLayered creates a new layered material
func NewLayered(outer, inner Material) *Layered {
	return &Layered{Outer: outer, Inner: inner}
}

// Scatter implements the Material interface for layered scattering
func (l *Layered) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	outerResult, outerScatters := l.Outer.Scatter(rayIn, hit, sampler)
	if !outerScatters {
		return ScatterResult{}, false
	}

	// Reflected off the coating: the base never sees it
	if outerResult.Scattered.Direction.Dot(hit.FacingNormal(rayIn)) >= 0 {
		return outerResult, true
	}

	// Transmitted through the coating: it arrives at the base from the same side
	innerResult, innerScatters := l.Inner.Scatter(outerResult.Scattered, hit, sampler)
	if !innerScatters {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Attenuation: outerResult.Attenuation.Attenuate(innerResult.Attenuation),
		Scattered:   innerResult.Scattered,
	}, true
}

// Name implements the Material interface
func (l *Layered) Name() string { return "layered" }
