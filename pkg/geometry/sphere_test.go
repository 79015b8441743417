package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

var testInterval = core.NewInterval(0.001, 1000.0)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	// passes at distance 2 from the center
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, testInterval)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_ThroughCenter(t *testing.T) {
	const radius, distance = 1.5, 4.0
	sphere := NewSphere(core.NewVec3(0, 0, 0), radius, nil)
	ray := core.NewRay(core.NewVec3(0, 0, distance), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, testInterval)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-(distance-radius)) > 1e-9 {
		t.Errorf("Expected near hit at t=%f, got t=%f", distance-radius, hit.T)
	}

	// Excluding the near root leaves the far one
	far, isHit := sphere.Hit(ray, core.NewInterval(distance-radius+0.1, 1000))
	if !isHit {
		t.Fatal("Expected far hit, but got miss")
	}
	if math.Abs(far.T-(distance+radius)) > 1e-9 {
		t.Errorf("Expected far hit at t=%f, got t=%f", distance+radius, far.T)
	}
}

func TestSphere_Hit_OutwardNormal(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit keeps the outward normal",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, testInterval)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace(ray) != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace(ray))
			}
			if !hit.Normal.Equals(tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_GlancingHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, testInterval)
	if !isHit {
		t.Fatal("Expected glancing hit, but got miss")
	}

	if !hit.Point.Equals(core.NewVec3(1, 0, 0), 1e-9) {
		t.Errorf("Expected hit point (1, 0, 0), got %v", hit.Point)
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Test tMax bound
	hit, isHit := sphere.Hit(ray, core.NewInterval(0.001, 0.5))
	if isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}

	// Test tMin bound
	hit, isHit = sphere.Hit(ray, core.NewInterval(3.5, 1000.0))
	if isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}

	// Bounds are inclusive
	hit, isHit = sphere.Hit(ray, core.NewInterval(1.0, 1.0))
	if !isHit || hit.T != 1.0 {
		t.Errorf("Expected inclusive hit at t=1, got %v %v", hit, isHit)
	}
}

func TestSphere_CarriesMaterial(t *testing.T) {
	mat := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, mat)

	hit, isHit := sphere.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), testInterval)
	if !isHit {
		t.Fatal("Expected hit")
	}
	if hit.Material != mat {
		t.Error("Hit record should reference the sphere's shared material")
	}
}

func TestNewSphere_NegativeRadius(t *testing.T) {
	if r := NewSphere(core.Vec3{}, -2, nil).Radius; r != 0 {
		t.Errorf("Expected negative radius clamped to 0, got %f", r)
	}
}

func TestSphere_Equal(t *testing.T) {
	redDiffuse := material.NewLambertian(core.NewColor(1, 0, 0))
	blueDiffuse := material.NewLambertian(core.NewColor(0, 0, 1))
	mirror := material.NewMetal(core.White, 0)

	base := NewSphere(core.NewVec3(1, 2, 3), 1, redDiffuse)

	tests := []struct {
		name     string
		other    *Sphere
		expected bool
	}{
		{"same", NewSphere(core.NewVec3(1, 2, 3), 1, redDiffuse), true},
		{"same material kind, different albedo", NewSphere(core.NewVec3(1, 2, 3), 1, blueDiffuse), true},
		{"different material kind", NewSphere(core.NewVec3(1, 2, 3), 1, mirror), false},
		{"different center", NewSphere(core.NewVec3(1, 2, 4), 1, redDiffuse), false},
		{"different radius", NewSphere(core.NewVec3(1, 2, 3), 2, redDiffuse), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Equal(tt.other); got != tt.expected {
				t.Errorf("Expected %t, got %t", tt.expected, got)
			}
		})
	}
}
