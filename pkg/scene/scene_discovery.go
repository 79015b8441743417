package scene

import (
	"fmt"
	"slices"
	"strings"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name accepted by Create
	DisplayName string
	Description string
	Seeded      bool // Whether the seed changes the scene itself
}

type builder struct {
	info  SceneInfo
	build func(seed int64) *Scene
}

var builtInScenes = []builder{
	{
		info:  SceneInfo{ID: "two-spheres", Description: "Red and blue diffuse spheres side by side"},
		build: func(int64) *Scene { return NewTwoSpheresScene() },
	},
	{
		info:  SceneInfo{ID: "showcase", Description: "Diffuse, glass and metal spheres with depth of field"},
		build: func(int64) *Scene { return NewShowcaseScene() },
	},
	{
		info:  SceneInfo{ID: "random-spheres", Description: "Field of random small spheres around three large ones", Seeded: true},
		build: NewRandomSpheresScene,
	},
	{
		info:  SceneInfo{ID: "coated", Description: "Clear-coated, satin and tinted glass spheres"},
		build: func(int64) *Scene { return NewCoatedScene() },
	},
	{
		info:  SceneInfo{ID: "sphere-grid", Description: "10x10 grid of rainbow-colored metallic spheres"},
		build: func(int64) *Scene { return NewSphereGridScene() },
	},
}

// Create builds the named scene. seed only affects seeded scenes.
func Create(name string, seed int64) (*Scene, error) {
	for _, b := range builtInScenes {
		if b.info.ID == name {
			return b.build(seed), nil
		}
	}
	return nil, fmt.Errorf("unknown scene %q (available: %s)", name, strings.Join(Names(), ", "))
}

// Names returns the IDs of all built-in scenes in sorted order
func Names() []string {
	names := make([]string, 0, len(builtInScenes))
	for _, b := range builtInScenes {
		names = append(names, b.info.ID)
	}
	slices.Sort(names)
	return names
}

// ListScenes returns every built-in scene's metadata sorted by display name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtInScenes))
	for _, b := range builtInScenes {
		info := b.info
		info.DisplayName = titleCase(info.ID)
		scenes = append(scenes, info)
	}
	slices.SortFunc(scenes, func(a, b SceneInfo) int {
		return strings.Compare(a.DisplayName, b.DisplayName)
	})
	return scenes
}

// titleCase converts a filename-style string to title case
// e.g., "two-spheres" -> "Two Spheres"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
