package material

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64    // Index of refraction (e.g., 1.5 for glass)
	Albedo          core.Color // Tint applied to both reflected and refracted light
}

// NewDielectric creates a clear dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex, Albedo: core.White}
}

// NewTintedDielectric creates a dielectric that attenuates by albedo
func NewTintedDielectric(albedo core.Color, refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex, Albedo: albedo}
}

// Scatter implements the Material interface for dielectric scattering
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	unitDirection := rayIn.Direction.Normalize()

	// Entering when travelling against the outward normal; 1.0 is air
	etaFrom, etaTo := d.RefractiveIndex, 1.0
	if unitDirection.Dot(hit.Normal) < 0 {
		etaFrom, etaTo = 1.0, d.RefractiveIndex
	}
	refractionRatio := etaFrom / etaTo
	normal := hit.FacingNormal(rayIn)

	cosTheta := math.Min(unitDirection.Negate().Dot(normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	// Check for total internal reflection
	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = unitDirection.Reflect(normal)
	} else {
		direction = unitDirection.Refract(normal, refractionRatio)
	}

	return ScatterResult{
		Attenuation: d.Albedo,
		Scattered:   core.NewRay(hit.Point, direction),
	}, true
}

// Name implements the Material interface
func (d *Dielectric) Name() string { return "dielectric" }

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	// R0 is the reflectance at normal incidence
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
