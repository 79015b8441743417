package core

import (
	"fmt"
	"math"
)

// AngleUnit identifies how an Angle's value is expressed
type AngleUnit int

const (
	UnitRadians AngleUnit = iota
	UnitDegrees
)

func (u AngleUnit) String() string {
	switch u {
	case UnitRadians:
		return "rad"
	case UnitDegrees:
		return "deg"
	default:
		return fmt.Sprintf("AngleUnit(%d)", int(u))
	}
}

// Angle is a scalar tagged with its unit so field-of-view parameters
// cannot be misread. The zero value is 0 radians.
type Angle struct {
	unit  AngleUnit
	value float64
}

// Degrees creates an angle expressed in degrees
func Degrees(d float64) Angle {
	return Angle{unit: UnitDegrees, value: d}
}

// Radians creates an angle expressed in radians
func Radians(r float64) Angle {
	return Angle{unit: UnitRadians, value: r}
}

// Unit returns the unit the angle is currently expressed in
func (a Angle) Unit() AngleUnit { return a.unit }

// Value returns the raw value in the angle's current unit
func (a Angle) Value() float64 { return a.value }

// ToDegrees expresses the angle in degrees
func (a Angle) ToDegrees() Angle {
	switch a.unit {
	case UnitDegrees:
		return a
	case UnitRadians:
		return Degrees(a.value * 180 / math.Pi)
	default:
		panic(fmt.Sprintf("core: invalid angle unit %v", a.unit))
	}
}

// ToRadians expresses the angle in radians
func (a Angle) ToRadians() Angle {
	switch a.unit {
	case UnitRadians:
		return a
	case UnitDegrees:
		return Radians(a.value * math.Pi / 180)
	default:
		panic(fmt.Sprintf("core: invalid angle unit %v", a.unit))
	}
}

// UnwrapDegrees returns the size of the angle in degrees, converting if necessary
func (a Angle) UnwrapDegrees() float64 {
	d := a.ToDegrees()
	if d.unit != UnitDegrees {
		panic("core: ToDegrees produced a non-degree angle")
	}
	return d.value
}

// UnwrapRadians returns the size of the angle in radians, converting if necessary
func (a Angle) UnwrapRadians() float64 {
	r := a.ToRadians()
	if r.unit != UnitRadians {
		panic("core: ToRadians produced a non-radian angle")
	}
	return r.value
}

func (a Angle) Sin() float64 { return math.Sin(a.UnwrapRadians()) }
func (a Angle) Cos() float64 { return math.Cos(a.UnwrapRadians()) }
func (a Angle) Tan() float64 { return math.Tan(a.UnwrapRadians()) }

// SinCos returns the sine and cosine of the angle
func (a Angle) SinCos() (sin, cos float64) {
	return math.Sincos(a.UnwrapRadians())
}

// Asin returns the angle whose sine is s
func Asin(s float64) Angle { return Radians(math.Asin(s)) }

// Acos returns the angle whose cosine is c
func Acos(c float64) Angle { return Radians(math.Acos(c)) }

// Atan returns the angle in [-pi/2, pi/2] whose tangent is t
func Atan(t float64) Angle { return Radians(math.Atan(t)) }

// Atan2 returns the angle in (-pi, pi] between the positive x-axis and the
// ray from the origin to (x, y). Note the argument order. The origin maps to 0.
func Atan2(x, y float64) Angle { return Radians(math.Atan2(y, x)) }

// Add sums two angles. Mixed units are combined in radians.
func (a Angle) Add(other Angle) Angle {
	if a.unit == other.unit {
		return Angle{unit: a.unit, value: a.value + other.value}
	}
	return Radians(a.UnwrapRadians() + other.UnwrapRadians())
}

// Sub subtracts other from a. Mixed units are combined in radians.
func (a Angle) Sub(other Angle) Angle {
	return a.Add(other.Neg())
}

// Mul scales the angle, keeping its unit
func (a Angle) Mul(scalar float64) Angle {
	return Angle{unit: a.unit, value: a.value * scalar}
}

// Div divides the angle, keeping its unit
func (a Angle) Div(scalar float64) Angle {
	return Angle{unit: a.unit, value: a.value / scalar}
}

// Neg negates the angle, keeping its unit
func (a Angle) Neg() Angle {
	return Angle{unit: a.unit, value: -a.value}
}

func (a Angle) String() string {
	return fmt.Sprintf("%g%s", a.value, a.unit)
}
