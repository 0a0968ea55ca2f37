package core

import "math/rand"

// Hitable is anything a ray can intersect and that can be bounded in space.
// Hit returns the closest intersection with t in (tMin, tMax), if any. The
// random source is used by stochastic hitables (participating media); pure
// geometry ignores it. BoundingBox returns a box valid for all ray times in
// [time0, time1], or false for an unbounded hitable.
type Hitable interface {
	Hit(ray Ray, tMin, tMax float64, random *rand.Rand) (*HitRecord, bool)
	BoundingBox(time0, time1 float64) (AABB, bool)
}

// Material decides how rays scatter off a surface.
type Material interface {
	// Scatter computes the scattered ray and attenuation for an incident
	// ray, or false if the ray is absorbed.
	Scatter(rayIn Ray, hit *HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// Emitter is implemented by materials that emit light. Materials that don't
// implement it emit nothing.
type Emitter interface {
	Emitted(u, v float64, point Vec3) Vec3
}

// Texture maps a surface position to a color.
type Texture interface {
	ColorAt(u, v float64, point Vec3) Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray  // The scattered ray
	Attenuation Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection. It is valid
// only for the duration of one intersection query and borrows the material of
// the hit object.
type HitRecord struct {
	T         float64  // Parameter t along the ray
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, oriented against the incoming ray
	U, V      float64  // Texture coordinates in [0,1]²
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal orients the normal against the incoming ray and records
// whether the front face was hit. After it runs, dot(ray.Direction, Normal)
// is always negative.
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// HitableList is a collection of hitables searched linearly for the closest hit.
type HitableList []Hitable

// Hit returns the closest intersection across all hitables in the list
func (l HitableList) Hit(ray Ray, tMin, tMax float64, random *rand.Rand) (*HitRecord, bool) {
	var closestHit *HitRecord
	closestSoFar := tMax

	for _, hitable := range l {
		if hit, isHit := hitable.Hit(ray, tMin, closestSoFar, random); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all member boxes, or false if the list is
// empty or any member is unbounded
func (l HitableList) BoundingBox(time0, time1 float64) (AABB, bool) {
	if len(l) == 0 {
		return AABB{}, false
	}

	box, ok := l[0].BoundingBox(time0, time1)
	if !ok {
		return AABB{}, false
	}
	for _, hitable := range l[1:] {
		next, ok := hitable.BoundingBox(time0, time1)
		if !ok {
			return AABB{}, false
		}
		box = SurroundingBox(box, next)
	}

	return box, true
}

// Background produces the color for rays that escape the scene.
type Background interface {
	// Color evaluates the background for a vertical interpolation
	// parameter t in [0,1], derived from the ray direction.
	Color(t float64) Vec3
}

// SolidBackground is a constant background color.
type SolidBackground struct {
	C Vec3
}

// Color implements the Background interface
func (b SolidBackground) Color(t float64) Vec3 {
	return b.C
}

// GradientBackground interpolates vertically between a bottom and a top color.
type GradientBackground struct {
	Top    Vec3
	Bottom Vec3
}

// Color implements the Background interface
func (b GradientBackground) Color(t float64) Vec3 {
	return b.Top.Multiply(t).Add(b.Bottom.Multiply(1.0 - t))
}
