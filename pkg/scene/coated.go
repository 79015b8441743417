package scene

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// NewCoatedScene creates spheres of composite materials: a clear-coated red
// sphere between silver and gold metal, plus satin and tinted glass
func NewCoatedScene() *Scene {
	// Create materials
	lambertianGreen := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0).Scale(0.6))
	lambertianRed := material.NewLambertian(core.NewColor(0.65, 0.25, 0.2))
	metalSilver := material.NewMetal(Named("silver"), 0.0)
	metalGold := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 0.3)
	materialGlass := material.NewDielectric(1.5)

	// Glass coating over a diffuse base
	coatedRed := material.NewLayered(materialGlass, lambertianRed)
	// Mostly diffuse with an occasional mirror bounce
	satin := material.NewMix(material.NewLambertian(Named("steelblue")), metalSilver, 0.25)
	tintedGlass := material.NewTintedDielectric(Named("lightcyan"), 1.5)

	world := geometry.NewList(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), lambertianGreen),
		geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, coatedRed),
		geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver),
		geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold),
		geometry.NewSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, tintedGlass),
		geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25, satin),
	)

	return &Scene{
		Name: "coated",
		Orientation: renderer.Orientation{
			Origin: core.NewVec3(0, 0.75, 2), // Camera higher and farther back
			LookAt: core.NewVec3(0, 0.5, -1), // Look at the sphere center
			Up:     core.NewVec3(0, 1, 0),
		},
		Structure: renderer.Structure{
			VerticalFOV:   core.Degrees(40),
			ApertureWidth: 0.05,
			FocusDistance: 0, // Auto-calculate focus distance
		},
		World: world,
		Config: renderer.Config{
			Width:           400,
			Height:          225,
			SamplesPerPixel: 200,
			MaxDepth:        50,
			Gamma:           2,
			Seed:            42,
		},
	}
}
