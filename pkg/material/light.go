package material

import (
	"math/rand"

	"github.com/mveron/gotracer/pkg/core"
)

// Light is a pure emitter: it never scatters and radiates its texture's color
// regardless of incidence.
type Light struct {
	Emit core.Texture
}

// NewLight creates a light emitting a solid color
func NewLight(color core.Vec3) *Light {
	return &Light{Emit: NewSolidColor(color)}
}

// NewTexturedLight creates a light emitting a texture-sampled radiance
func NewTexturedLight(emit core.Texture) *Light {
	return &Light{Emit: emit}
}

// Scatter implements the Material interface; lights absorb all incoming rays
func (l *Light) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emitted implements the Emitter interface
func (l *Light) Emitted(u, v float64, point core.Vec3) core.Vec3 {
	return l.Emit.ColorAt(u, v, point)
}
