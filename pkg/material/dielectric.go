package material

import (
	"math"
	"math/rand"

	"github.com/mveron/gotracer/pkg/core"
)

// Refractive indices of common dielectric media.
const (
	waterRefractiveIndex   = 1.333
	diamondRefractiveIndex = 2.417
)

// Dielectric represents a transparent material like glass that both reflects
// and refracts. Attenuation is always white: a clear dielectric absorbs
// nothing.
type Dielectric struct {
	RefractiveIndex float64
}

// NewDielectric creates a new dielectric material. Panics on a refractive
// index below 1.
func NewDielectric(refractiveIndex float64) *Dielectric {
	if refractiveIndex < 1.0 {
		panic("material: refractive index must be >= 1")
	}
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// NewWater creates a dielectric with the refractive index of water
func NewWater() *Dielectric {
	return NewDielectric(waterRefractiveIndex)
}

// NewDiamond creates a dielectric with the refractive index of diamond
func NewDiamond() *Dielectric {
	return NewDielectric(diamondRefractiveIndex)
}

// Scatter implements the Material interface for dielectric scattering. The
// ray reflects on total internal reflection or with Schlick probability, and
// refracts otherwise.
func (d *Dielectric) Scatter(rayIn core.Ray, hit *core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	var refractionRatio float64
	if hit.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex // Entering the material
	} else {
		refractionRatio = d.RefractiveIndex // Exiting the material
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || core.Schlick(cosTheta, refractionRatio) > random.Float64() {
		direction = core.Reflect(unitDirection, hit.Normal)
	} else {
		direction = core.Refract(unitDirection, hit.Normal, refractionRatio)
	}

	return core.ScatterResult{
		Scattered:   core.Ray{Origin: hit.Point, Direction: direction, Time: rayIn.Time},
		Attenuation: core.NewVec3(1.0, 1.0, 1.0),
	}, true
}
