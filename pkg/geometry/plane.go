package geometry

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and normal.
// It has no bounding box, so lists containing it are never wrapped in a BVH.
type Plane struct {
	Point    core.Point3       // A point on the plane
	Normal   core.Vec3         // Unit normal; the "outward" side
	Material material.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point core.Point3, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: mat,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, valid core.Interval) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray parallel to plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if !valid.Contains(t) {
		return nil, false
	}

	return &material.HitRecord{
		Point:    ray.At(t),
		Normal:   p.Normal,
		T:        t,
		Material: p.Material,
	}, true
}
