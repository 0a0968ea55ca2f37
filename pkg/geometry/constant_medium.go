package geometry

import (
	"math"
	"math/rand"

	"github.com/mveron/gotracer/pkg/core"
)

// ConstantMedium models a volume of constant density inside a boundary shape,
// like fog or smoke. A ray entering the boundary scatters after a random
// free-flight distance drawn from the medium's density; if that distance
// exceeds the ray's path through the volume, the ray passes through.
type ConstantMedium struct {
	Boundary      core.Hitable
	PhaseFunction core.Material
	negInvDensity float64
}

// NewConstantMedium creates a medium bounded by the given shape. Panics on a
// non-positive density.
func NewConstantMedium(boundary core.Hitable, density float64, phaseFunction core.Material) *ConstantMedium {
	if density <= 0 {
		panic("geometry: constant medium density must be positive")
	}
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: phaseFunction,
		negInvDensity: -1.0 / density,
	}
}

// Hit finds the ray's entry and exit crossings of the boundary, then draws a
// free-flight distance -ln(rand)/density along the inside segment.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	hit1, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), random)
	if !ok {
		return nil, false
	}
	hit2, ok := m.Boundary.Hit(ray, hit1.T+0.0001, math.Inf(1), random)
	if !ok {
		return nil, false
	}

	t1 := math.Max(hit1.T, tMin)
	t2 := math.Min(hit2.T, tMax)
	if t1 >= t2 {
		return nil, false
	}
	t1 = math.Max(t1, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := m.negInvDensity * math.Log(random.Float64())
	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &core.HitRecord{
		T:     t,
		Point: ray.At(t),
		// Arbitrary: normals are meaningless inside a uniform medium and
		// the isotropic phase function never reads them
		Normal:    core.NewVec3(1, 0, 0),
		FrontFace: true,
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}
