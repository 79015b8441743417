package geometry

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// List is an ordered group of hittables with no geometry of its own.
// It must not be modified while a render is reading it.
type List struct {
	objects []Hittable
}

// NewList creates a list holding objects
func NewList(objects ...Hittable) *List {
	return &List{objects: append([]Hittable(nil), objects...)}
}

// Add appends an object to the back of the list
func (l *List) Add(object Hittable) {
	l.objects = append(l.objects, object)
}

// Clear removes all objects from the list
func (l *List) Clear() {
	l.objects = nil
}

// Len returns the number of objects in the list
func (l *List) Len() int {
	return len(l.objects)
}

// Objects returns a copy of the list's members
func (l *List) Objects() []Hittable {
	return append([]Hittable(nil), l.objects...)
}

// Hit returns the nearest hit among all objects. Each test only accepts
// hits closer than the best found so far.
func (l *List) Hit(ray core.Ray, valid core.Interval) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := valid

	for _, object := range l.objects {
		if hit, isHit := object.Hit(ray, closestSoFar); isHit {
			closestHit = hit
			closestSoFar = closestSoFar.WithMax(hit.T)
		}
	}

	return closestHit, closestHit != nil
}
