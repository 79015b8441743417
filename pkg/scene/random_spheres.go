package scene

import (
	"fmt"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

const (
	diffuseMaterial = iota
	metalMaterial
	glassMaterial
)

// materialIndex maps a uniform draw onto 80% diffuse, 15% metal, 5% glass
func materialIndex(draw float64) int {
	switch {
	case draw < 0.8:
		return diffuseMaterial
	case draw < 0.95:
		return metalMaterial
	default:
		return glassMaterial
	}
}

// NewRandomSpheresScene creates a field of small random spheres around three
// large ones. The same seed always produces the same scene.
func NewRandomSpheresScene(seed int64) *Scene {
	sampler := core.NewSeededSampler(seed)

	world := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(Named("gray"))),
	)

	keepClear := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			index := materialIndex(sampler.Get1D())
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())
			if center.Subtract(keepClear).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch index {
			case diffuseMaterial:
				albedo := core.RandomColor(sampler, 0, 1).Attenuate(core.RandomColor(sampler, 0, 1))
				mat = material.NewLambertian(albedo)
			case metalMaterial:
				albedo := core.RandomColor(sampler, 0.5, 1)
				mat = material.NewMetal(albedo, 0.5*sampler.Get1D())
			case glassMaterial:
				mat = material.NewDielectric(1.5)
			default:
				panic(fmt.Sprintf("scene: unknown material index %d", index))
			}
			world.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewColor(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewColor(0.7, 0.6, 0.5), 0)))

	return &Scene{
		Name: "random-spheres",
		Orientation: renderer.Orientation{
			Origin: core.NewVec3(13, 2, 3),
			LookAt: core.NewVec3(0, 0, 0),
			Up:     core.NewVec3(0, 1, 0),
		},
		Structure: renderer.Structure{
			VerticalFOV:   core.Degrees(20),
			ApertureWidth: 0.1,
			FocusDistance: 10,
		},
		World: world,
		Config: renderer.Config{
			Width:           600,
			Height:          400,
			SamplesPerPixel: 50,
			MaxDepth:        50,
			Gamma:           2,
			Seed:            seed,
		},
	}
}
