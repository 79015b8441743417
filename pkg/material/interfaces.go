package material

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// Material interface for objects that can scatter rays
type Material interface {
	// Scatter returns the outgoing ray and its attenuation, or false when
	// the material absorbs the ray.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// Name identifies the kind of material, e.g. "metal"
	Name() string
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Attenuation core.Color // Per-channel fraction of incoming light kept
	Scattered   core.Ray   // The scattered ray, starting at the hit point
}

// HitRecord contains information about a ray-object intersection.
// Normal points outward from the surface whichever side the ray came from;
// use FrontFace or FacingNormal to orient it.
type HitRecord struct {
	Point    core.Point3 // Point of intersection
	Normal   core.Vec3   // Outward surface normal at intersection
	T        float64     // Parameter t along the ray
	Material Material    // Material of the hit object, shared with other shapes
}

// FrontFace reports whether ray arrived from outside the surface
func (h HitRecord) FrontFace(ray core.Ray) bool {
	return ray.Direction.Dot(h.Normal) < 0
}

// FacingNormal returns the normal flipped to point against ray
func (h HitRecord) FacingNormal(ray core.Ray) core.Vec3 {
	if h.FrontFace(ray) {
		return h.Normal
	}
	return h.Normal.Negate()
}
