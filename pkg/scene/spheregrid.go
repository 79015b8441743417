package scene

import (
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue
func oklchToRGB(l, c float64, h core.Angle) core.Color {
	sin, cos := h.SinCos()

	// Convert from OKLCH to OKLAB
	a := c * cos
	b := c * sin

	// First convert to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	// Cube the values
	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// Convert LMS to linear RGB; NewColor clamps to [0, 1]
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	return core.NewColor(r, g, blue)
}

// NewSphereGridScene creates a grid of rainbow-colored metallic spheres
func NewSphereGridScene() *Scene {
	world := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))),
	)

	gridSize := 10

	// Target area: roughly 9x9 units centred on x = z = 4.5
	targetArea := 9.0
	spacing := targetArea / float64(gridSize-1)
	sphereRadius := math.Max(0.02, math.Min(0.35, spacing*0.35))

	// OKLCH parameters for color variation
	baseLightness := 0.65
	minChroma := 0.05
	maxChroma := 0.25

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5
			position := core.NewVec3(x, sphereRadius, z)

			// Hue varies across X, chroma across Z
			hue := core.Degrees(float64(i) / float64(gridSize-1) * 360.0)
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			roughness := 0.05 + 0.1*float64((i+j)%3)/2.0
			metal := material.NewMetal(oklchToRGB(lightness, chroma, hue), roughness)

			world.Add(geometry.NewSphere(position, sphereRadius, metal))
		}
	}

	return &Scene{
		Name: "sphere-grid",
		Orientation: renderer.Orientation{
			Origin: core.NewVec3(4.5, 6, 18),
			LookAt: core.NewVec3(4.5, 0.8, 4.5),
			Up:     core.NewVec3(0, 1, 0),
		},
		Structure: renderer.Structure{
			VerticalFOV:   core.Degrees(40),
			ApertureWidth: 0.02,
			FocusDistance: 0,
		},
		World: world,
		Config: renderer.Config{
			Width:           800,
			Height:          450,
			SamplesPerPixel: 100,
			MaxDepth:        40,
			Gamma:           2,
			Seed:            42,
		},
	}
}
