package material

import (
	"math/rand"

	"github.com/mveron/gotracer/pkg/core"
)

// Isotropic scatters uniformly in a random direction over the whole sphere.
// It is the phase function of constant-density media.
type Isotropic struct {
	Albedo core.Texture
}

// NewIsotropic creates an isotropic material with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic material with a texture
func NewTexturedIsotropic(albedo core.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter implements the Material interface for isotropic scattering
func (i *Isotropic) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Scattered:   core.Ray{Origin: hit.Point, Direction: core.RandomInUnitSphere(random), Time: rayIn.Time},
		Attenuation: i.Albedo.ColorAt(hit.U, hit.V, hit.Point),
	}, true
}
