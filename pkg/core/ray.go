package core

import "math"

// Ray represents a ray with an origin and direction.
// Direction need not be unit length.
type Ray struct {
	Origin    Point3
	Direction Vec3
}

// NewRay creates a new ray
func NewRay(origin Point3, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray. Negative t lies behind the origin.
func (r Ray) At(t float64) Point3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Interval is a closed range of ray parameters
type Interval struct {
	Min, Max float64
}

// NewInterval creates the closed interval [min, max]
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// From returns the interval [min, +Inf]
func From(min float64) Interval {
	return Interval{Min: min, Max: math.Inf(1)}
}

// Contains reports whether t lies in the interval, bounds included
func (i Interval) Contains(t float64) bool {
	return i.Min <= t && t <= i.Max
}

// WithMax returns a copy of the interval with a new upper bound
func (i Interval) WithMax(max float64) Interval {
	return Interval{Min: i.Min, Max: max}
}
