package integrator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/material"
)

// MockMaterial implements material.Material for testing
type MockMaterial struct {
	scatterFn func(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool)
	calls     int
}

func (m *MockMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	m.calls++
	return m.scatterFn(rayIn, hit, sampler)
}

func (m *MockMaterial) Name() string { return "mock" }

// MockShape implements geometry.Hittable for testing
type MockShape struct {
	hitFn func(ray core.Ray, valid core.Interval) (*material.HitRecord, bool)
}

func (m MockShape) Hit(ray core.Ray, valid core.Interval) (*material.HitRecord, bool) {
	return m.hitFn(ray, valid)
}

func newSampler() core.Sampler {
	return core.NewRandomSampler(rand.New(rand.NewSource(42)))
}

func TestPathTracingDepthTermination(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewColor(0.7, 0.3, 0.3)))
	world := geometry.NewList(sphere)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	integrator := NewPathTracingIntegrator(nil)

	if c := integrator.RayColor(ray, world, newSampler(), 0); c != core.Black {
		t.Errorf("Expected black color for depth 0, got %v", c.Vec3())
	}

	if c := integrator.RayColor(ray, world, newSampler(), 3); c == core.Black {
		t.Error("Expected non-black color for positive depth")
	}
}

func TestPathTracingBounceBudget(t *testing.T) {
	// A material that always scatters straight back into the same surface
	mirror := &MockMaterial{
		scatterFn: func(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
			return material.ScatterResult{Attenuation: core.White, Scattered: core.NewRay(hit.Point, rayIn.Direction)}, true
		},
	}
	world := MockShape{hitFn: func(ray core.Ray, valid core.Interval) (*material.HitRecord, bool) {
		return &material.HitRecord{Point: ray.At(1), Normal: core.NewVec3(0, 0, 1), T: 1, Material: mirror}, true
	}}

	c := NewPathTracingIntegrator(nil).RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), world, newSampler(), 7)
	if c != core.Black {
		t.Errorf("An endless bounce chain should end black, got %v", c.Vec3())
	}
	if mirror.calls != 7 {
		t.Errorf("Expected exactly 7 scatter calls, got %d", mirror.calls)
	}
}

func TestPathTracingBackground(t *testing.T) {
	integrator := NewPathTracingIntegrator(nil)
	empty := geometry.NewList()

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Color
	}{
		{"straight up is sky blue", core.NewVec3(0, 1, 0), core.NewColor(0.5, 0.7, 1.0)},
		{"straight down is white", core.NewVec3(0, -1, 0), core.White},
		{"horizon is the midpoint", core.NewVec3(0, 0, -5), core.NewColor(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := integrator.RayColor(core.NewRay(core.Vec3{}, tt.direction), empty, newSampler(), 10)
			if !got.Vec3().Equals(tt.expected.Vec3(), 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected.Vec3(), got.Vec3())
			}
		})
	}
}

func TestPathTracingCustomBackground(t *testing.T) {
	bg := GradientBackground{Top: core.NewColor(1, 0, 0), Bottom: core.NewColor(1, 0, 0)}
	got := NewPathTracingIntegrator(bg).RayColor(core.NewRay(core.Vec3{}, core.NewVec3(1, 2, 3)), geometry.NewList(), newSampler(), 1)
	if got != core.NewColor(1, 0, 0) {
		t.Errorf("Expected uniform red background, got %v", got.Vec3())
	}
}

func TestPathTracingAttenuation(t *testing.T) {
	albedo := core.NewColor(0.5, 0.25, 1)
	// scatter once, straight up into the sky
	once := &MockMaterial{
		scatterFn: func(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
			return material.ScatterResult{Attenuation: albedo, Scattered: core.NewRay(hit.Point, core.NewVec3(0, 1, 0))}, true
		},
	}
	world := MockShape{hitFn: func(ray core.Ray, valid core.Interval) (*material.HitRecord, bool) {
		if ray.Direction.Y > 0 {
			return nil, false
		}
		return &material.HitRecord{Point: ray.At(1), Normal: core.NewVec3(0, 1, 0), T: 1, Material: once}, true
	}}

	got := NewPathTracingIntegrator(nil).RayColor(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0)), world, newSampler(), 5)
	expected := albedo.Attenuate(core.NewColor(0.5, 0.7, 1.0))
	if !got.Vec3().Equals(expected.Vec3(), 1e-12) {
		t.Errorf("Expected albedo × sky %v, got %v", expected.Vec3(), got.Vec3())
	}
}

func TestPathTracingAbsorption(t *testing.T) {
	absorber := &MockMaterial{
		scatterFn: func(core.Ray, material.HitRecord, core.Sampler) (material.ScatterResult, bool) {
			return material.ScatterResult{}, false
		},
	}
	world := geometry.NewList(geometry.NewSphere(core.NewVec3(0, 0, -2), 1, absorber))

	got := NewPathTracingIntegrator(nil).RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), world, newSampler(), 5)
	if got != core.Black {
		t.Errorf("Absorbed ray should be black, got %v", got.Vec3())
	}
}

func TestPathTracingShadowAcneEpsilon(t *testing.T) {
	var seen core.Interval
	world := MockShape{hitFn: func(ray core.Ray, valid core.Interval) (*material.HitRecord, bool) {
		seen = valid
		return nil, false
	}}

	NewPathTracingIntegrator(nil).RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), world, newSampler(), 1)
	if seen.Min != 0.001 || !math.IsInf(seen.Max, 1) {
		t.Errorf("Expected hit interval [0.001, +Inf], got %+v", seen)
	}
}
