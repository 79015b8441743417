package scene

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// NewTwoSpheresScene creates a red and a blue diffuse sphere filling the
// left and right halves of the frame
func NewTwoSpheresScene() *Scene {
	world := geometry.NewList(
		geometry.NewSphere(core.NewVec3(-1.05, 0, -2), 1, material.NewLambertian(Named("firebrick"))),
		geometry.NewSphere(core.NewVec3(1.05, 0, -2), 1, material.NewLambertian(Named("royalblue"))),
	)

	return &Scene{
		Name: "two-spheres",
		Orientation: renderer.Orientation{
			Origin: core.NewVec3(0, 0, 0),
			LookAt: core.NewVec3(0, 0, -1),
			Up:     core.NewVec3(0, 1, 0),
		},
		Structure: renderer.Structure{
			VerticalFOV:   core.Degrees(90),
			FocusDistance: 1,
		},
		World: world,
		Config: renderer.Config{
			Width:           400,
			Height:          225,
			SamplesPerPixel: 100,
			MaxDepth:        50,
			Gamma:           2,
			Seed:            42,
		},
	}
}
