package scene

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// NewShowcaseScene creates one sphere of each material on a large ground
// sphere, seen through a wide aperture
func NewShowcaseScene() *Scene {
	ground := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewColor(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(Named("goldenrod"), 0.1)

	world := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	)

	return &Scene{
		Name: "showcase",
		Orientation: renderer.Orientation{
			Origin: core.NewVec3(3, 3, 2),
			LookAt: core.NewVec3(0, 0, -1),
			Up:     core.NewVec3(0, 1, 0),
		},
		Structure: renderer.Structure{
			VerticalFOV:   core.Degrees(20),
			ApertureWidth: 2.0,
			FocusDistance: 0, // Auto-calculate focus distance
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
