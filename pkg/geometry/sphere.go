package geometry

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Point3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere. A negative radius is clamped to 0.
func NewSphere(center core.Point3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   math.Max(radius, 0),
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, valid core.Interval) (*material.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2*halfB*t + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	quarterDiscriminant := halfB*halfB - a*c
	if quarterDiscriminant < 0 {
		return nil, false
	}

	sqrtD := math.Sqrt(quarterDiscriminant)

	// Try the closer intersection point first, then the farther one
	root := (-halfB - sqrtD) / a
	if !valid.Contains(root) {
		root = (-halfB + sqrtD) / a
		if !valid.Contains(root) {
			return nil, false
		}
	}

	point := ray.At(root)
	return &material.HitRecord{
		Point:    point,
		Normal:   s.normal(point),
		T:        root,
		Material: s.Material,
	}, true
}

// normal is the outward unit normal at p, assumed to be on the surface
func (s *Sphere) normal(p core.Point3) core.Vec3 {
	return p.Subtract(s.Center).Divide(s.Radius)
}

// Equal compares geometry exactly and materials by name only
func (s *Sphere) Equal(other *Sphere) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Center == other.Center &&
		s.Radius == other.Radius &&
		materialName(s.Material) == materialName(other.Material)
}

func materialName(m material.Material) string {
	if m == nil {
		return ""
	}
	return m.Name()
}

// BoundingBox returns the box enclosing the sphere
func (s *Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}
