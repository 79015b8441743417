package renderer

import (
	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// Orientation places the camera in the world
type Orientation struct {
	Origin core.Point3 // Eye position
	LookAt core.Point3 // Point the camera looks toward
	Up     core.Vec3   // World up direction, need not be perpendicular to the view
}

// Structure describes the lens and film of the camera
type Structure struct {
	VerticalFOV   core.Angle // Vertical field of view
	AspectRatio   float64    // Width / height
	ApertureWidth float64    // Lens diameter, 0 for a pinhole
	FocusDistance float64    // Distance to the plane of perfect focus, <= 0 means |Origin - LookAt|
}

// Camera generates rays for rendering
type Camera struct {
	origin          core.Point3
	lowerLeftCorner core.Point3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Camera basis
	lensRadius      float64
}

// NewCamera creates a thin-lens camera. It is immutable once built.
func NewCamera(orientation Orientation, structure Structure) *Camera {
	h := structure.VerticalFOV.Div(2).Tan()
	viewportHeight := 2.0 * h
	viewportWidth := structure.AspectRatio * viewportHeight

	focusDistance := structure.FocusDistance
	if focusDistance <= 0 {
		focusDistance = orientation.Origin.Subtract(orientation.LookAt).Length()
	}

	w := orientation.Origin.Subtract(orientation.LookAt).Normalize()
	u := orientation.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(focusDistance * viewportWidth)
	vertical := v.Multiply(focusDistance * viewportHeight)
	lowerLeftCorner := orientation.Origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          orientation.Origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      structure.ApertureWidth / 2,
	}
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1.
// (0, 0) is the lower-left corner of the viewport.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}

// Origin returns the eye position
func (c *Camera) Origin() core.Point3 { return c.origin }

// Forward returns the unit view direction
func (c *Camera) Forward() core.Vec3 { return c.w.Negate() }

// LensRadius returns half the aperture width
func (c *Camera) LensRadius() float64 { return c.lensRadius }
