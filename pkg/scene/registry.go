package scene

import (
	"fmt"
	"sort"

	"github.com/mveron/gotracer/pkg/renderer"
)

// BuilderFunc constructs a scene and its matching camera for the given
// output aspect ratio.
type BuilderFunc func(aspectRatio float64) (*Scene, *renderer.Camera)

var registry = map[string]BuilderFunc{
	"three-spheres":  NewThreeSphereScene,
	"random-spheres": NewRandomScene,
	"earth":          NewEarthScene,
	"simple-light":   NewLightScene,
	"cornell-box":    NewCornellScene,
	"cornell-smoke":  NewCornellSmokeScene,
}

// Names returns the registered scene names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName looks up a scene builder by its registered name.
func ByName(name string) (BuilderFunc, error) {
	builder, exists := registry[name]
	if !exists {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	return builder, nil
}
