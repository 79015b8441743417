package geometry

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// Hittable interface for objects that can be hit by rays.
// Hit returns the nearest intersection whose t lies in valid.
type Hittable interface {
	Hit(ray core.Ray, valid core.Interval) (*material.HitRecord, bool)
}

// Bounded is a Hittable with a finite bounding box
type Bounded interface {
	Hittable
	BoundingBox() core.AABB
}
