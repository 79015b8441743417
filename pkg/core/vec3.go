package core

import (
	"fmt"
	"math"
)

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float64
}

// Point3 is a position in space. It shares every operation with Vec3.
type Point3 = Vec3

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Divide returns the vector divided by a scalar
func (v Vec3) Divide(scalar float64) Vec3 {
	return v.Multiply(1 / scalar)
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// LengthSquared returns the squared magnitude of the vector.
// Prefer it over Length when only comparing magnitudes.
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the right-handed cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction.
// A zero vector has no direction: the result has NaN components.
func (v Vec3) Normalize() Vec3 {
	return v.Divide(v.Length())
}

// NearZero reports whether every component is within 1e-8 of zero
func (v Vec3) NearZero() bool {
	const s = 1e-8
	return math.Abs(v.X) < s && math.Abs(v.Y) < s && math.Abs(v.Z) < s
}

// Reflect mirrors v about the surface with normal n.
// The result is the same for n and -n.
func (v Vec3) Reflect(n Vec3) Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends the unit vector v through a surface with unit normal n
// facing against v, using Snell's law with etaFromOverEtaTo.
func (v Vec3) Refract(n Vec3, etaFromOverEtaTo float64) Vec3 {
	cosTheta := math.Min(v.Negate().Dot(n), 1.0)
	rOutPerp := v.Add(n.Multiply(cosTheta)).Multiply(etaFromOverEtaTo)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Equals reports whether two vectors are equal within tolerance
func (v Vec3) Equals(other Vec3, tolerance float64) bool {
	return math.Abs(v.X-other.X) <= tolerance &&
		math.Abs(v.Y-other.Y) <= tolerance &&
		math.Abs(v.Z-other.Z) <= tolerance
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// RandomVec3 draws each component uniformly from [min, max)
func RandomVec3(sampler Sampler, min, max float64) Vec3 {
	u := sampler.Get3D()
	span := max - min
	return Vec3{min + span*u.X, min + span*u.Y, min + span*u.Z}
}

// maxRejections bounds the rejection loops below. A random sampler exhausts
// it with probability about 0.48^64; a fixed sequence may never land inside.
const maxRejections = 64

// RandomInUnitSphere returns a uniformly distributed point inside the unit ball.
// Rejection sampling from the enclosing cube takes about 1.91 draws on average.
// If every draw misses, the last one is pulled inside the ball.
func RandomInUnitSphere(sampler Sampler) Vec3 {
	var p Vec3
	for range maxRejections {
		p = RandomVec3(sampler, -1, 1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
	return p.Multiply(0.5 / p.Length())
}

// RandomUnitVector returns a uniformly distributed point on the unit sphere.
// Draws too close to the centre to normalize are rejected like those outside.
func RandomUnitVector(sampler Sampler) Vec3 {
	var p Vec3
	for range maxRejections {
		p = RandomVec3(sampler, -1, 1)
		if lengthSquared := p.LengthSquared(); lengthSquared > 1e-160 && lengthSquared < 1 {
			return p.Divide(math.Sqrt(lengthSquared))
		}
	}
	if p.LengthSquared() <= 1e-160 {
		return NewVec3(0, 0, 1)
	}
	return p.Normalize()
}

// RandomInUnitDisk generates a random point in the unit disk on the z = 0 plane (for depth of field).
// If every draw misses, the last one is pulled inside the disk.
func RandomInUnitDisk(sampler Sampler) Vec3 {
	var p Vec3
	for range maxRejections {
		u := sampler.Get2D()
		p = NewVec3(2*u.X-1, 2*u.Y-1, 0)
		if p.LengthSquared() < 1 {
			return p
		}
	}
	return p.Multiply(0.5 / p.Length())
}
