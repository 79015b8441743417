package scene

import (
	"fmt"

	"golang.org/x/image/colornames"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// Named returns the SVG 1.1 color with the given name. Scenes are built from
// literals, so an unknown name is a programming error and panics.
func Named(name string) core.Color {
	c, ok := colornames.Map[name]
	if !ok {
		panic(fmt.Sprintf("scene: unknown color name %q", name))
	}
	return core.ColorFromStd(c)
}
