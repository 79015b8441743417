package core

import (
	"fmt"
	"image/color"
	"iter"
	"math"
)

// Color is an RGB intensity with every channel in [0, 1].
// All constructors and mutators clamp, which is what keeps stray light
// contributions from growing without bound.
type Color struct {
	r, g, b float64
}

var (
	Black = Color{}
	White = Color{1, 1, 1}
)

// NewColor creates a color, clamping each channel to [0, 1]
func NewColor(r, g, b float64) Color {
	return Color{r: clamp01(r), g: clamp01(g), b: clamp01(b)}
}

// ColorFromVec3 maps X, Y, Z onto red, green, blue
func ColorFromVec3(v Vec3) Color {
	return NewColor(v.X, v.Y, v.Z)
}

// ColorFromStd converts any image/color value, dropping alpha
func ColorFromStd(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return NewColor(float64(r)/0xffff, float64(g)/0xffff, float64(b)/0xffff)
}

// RandomColor draws each channel uniformly from [min, max), then clamps
func RandomColor(sampler Sampler, min, max float64) Color {
	return ColorFromVec3(RandomVec3(sampler, min, max))
}

func (c Color) R() float64 { return c.r }
func (c Color) G() float64 { return c.g }
func (c Color) B() float64 { return c.b }

func (c *Color) SetRed(r float64)   { c.r = clamp01(r) }
func (c *Color) SetGreen(g float64) { c.g = clamp01(g) }
func (c *Color) SetBlue(b float64)  { c.b = clamp01(b) }

// Vec3 returns the channels as a vector
func (c Color) Vec3() Vec3 {
	return Vec3{c.r, c.g, c.b}
}

// Interpolate blends linearly from c (t <= 0) to other (t >= 1)
func (c Color) Interpolate(other Color, t float64) Color {
	t = clamp01(t)
	return NewColor(
		(1-t)*c.r+t*other.r,
		(1-t)*c.g+t*other.g,
		(1-t)*c.b+t*other.b,
	)
}

// Attenuate multiplies corresponding channels
func (c Color) Attenuate(other Color) Color {
	return NewColor(c.r*other.r, c.g*other.g, c.b*other.b)
}

// Scale multiplies every channel by s
func (c Color) Scale(s float64) Color {
	return NewColor(c.r*s, c.g*s, c.b*s)
}

// Divide divides every channel by s
func (c Color) Divide(s float64) Color {
	return c.Scale(1 / s)
}

// GammaCorrect raises each channel to 1/gamma
func (c Color) GammaCorrect(gamma float64) Color {
	inv := 1 / gamma
	return NewColor(math.Pow(c.r, inv), math.Pow(c.g, inv), math.Pow(c.b, inv))
}

// Bytes maps each channel to [0, 255] as floor(c * 255.999), so 1.0 becomes 255
func (c Color) Bytes() [3]uint8 {
	return [3]uint8{toByte(c.r), toByte(c.g), toByte(c.b)}
}

// String formats the color as a PPM pixel triple, e.g. "255 128 0"
func (c Color) String() string {
	b := c.Bytes()
	return fmt.Sprintf("%d %d %d", b[0], b[1], b[2])
}

// RGBA implements image/color.Color. The color is fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return uint32(c.r*0xffff + 0.5), uint32(c.g*0xffff + 0.5), uint32(c.b*0xffff + 0.5), 0xffff
}

func toByte(v float64) uint8 {
	return uint8(math.Floor(v * 255.999))
}

func clamp01(v float64) float64 {
	// NaN falls through to 0
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SampleSum accumulates stochastic color samples. Sums can be combined in
// any order, so partial sums from parallel workers reduce to the same mean.
type SampleSum struct {
	Sum   Vec3
	Count int
}

// Add accumulates one sample
func (s *SampleSum) Add(c Color) {
	s.Sum = s.Sum.Add(c.Vec3())
	s.Count++
}

// Combine returns the sum of two partial accumulations
func (s SampleSum) Combine(other SampleSum) SampleSum {
	return SampleSum{Sum: s.Sum.Add(other.Sum), Count: s.Count + other.Count}
}

// Mean returns the per-channel average, or black with no samples
func (s SampleSum) Mean() Color {
	if s.Count == 0 {
		return Black
	}
	return ColorFromVec3(s.Sum.Divide(float64(s.Count)))
}

// MergeSamples averages a finite sequence of samples into one color
func MergeSamples(samples iter.Seq[Color]) Color {
	var sum SampleSum
	for c := range samples {
		sum.Add(c)
	}
	return sum.Mean()
}
