package scene

import (
	"fmt"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name        string
	Orientation renderer.Orientation // Camera placement
	Structure   renderer.Structure   // Lens; AspectRatio is derived from the render size
	World       *geometry.List       // Objects in the scene, read-only once built
	Config      renderer.Config      // Default render settings
}

// Camera builds the scene camera for an image of config's size
func (s *Scene) Camera(config renderer.Config) *renderer.Camera {
	structure := s.Structure
	structure.AspectRatio = float64(config.Width) / float64(config.Height)
	return renderer.NewCamera(s.Orientation, structure)
}

// NewRaytracer merges overrides onto the scene defaults and prepares a renderer.
// Large scenes are traced through a BVH.
func (s *Scene) NewRaytracer(overrides renderer.Config, logger core.Logger) (*renderer.Raytracer, error) {
	config := renderer.MergeConfig(s.Config, overrides)
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("scene %s: %w", s.Name, err)
	}
	return renderer.NewRaytracer(s.Camera(config), geometry.Accelerate(s.World), nil, config, logger), nil
}

// GetPrimitiveCount returns the number of objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}
