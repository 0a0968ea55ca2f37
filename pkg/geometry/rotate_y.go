package geometry

import (
	"math"
	"math/rand"

	"github.com/mveron/gotracer/pkg/core"
)

// RotateY rotates an inner hitable about the Y axis by a fixed angle. Rays are
// rotated into object space before delegating; hit points and normals are
// rotated back. The bounding box is precomputed at construction from the eight
// rotated corners of the inner box.
type RotateY struct {
	Inner    core.Hitable
	sinTheta float64
	cosTheta float64
	box      core.AABB
	hasBox   bool
}

// NewRotateY wraps a hitable with a rotation of angle degrees about Y
func NewRotateY(inner core.Hitable, angle float64) *RotateY {
	theta := angle * math.Pi / 180.0
	r := &RotateY{
		Inner:    inner,
		sinTheta: math.Sin(theta),
		cosTheta: math.Cos(theta),
	}

	box, ok := inner.BoundingBox(0, 1)
	r.hasBox = ok
	if !ok {
		return r
	}

	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*box.Max.X + float64(1-i)*box.Min.X
				y := float64(j)*box.Max.Y + float64(1-j)*box.Min.Y
				z := float64(k)*box.Max.Z + float64(1-k)*box.Min.Z

				newX := r.cosTheta*x + r.sinTheta*z
				newZ := -r.sinTheta*x + r.cosTheta*z

				min.X = math.Min(min.X, newX)
				min.Y = math.Min(min.Y, y)
				min.Z = math.Min(min.Z, newZ)
				max.X = math.Max(max.X, newX)
				max.Y = math.Max(max.Y, y)
				max.Z = math.Max(max.Z, newZ)
			}
		}
	}
	r.box = core.NewAABB(min, max)

	return r
}

// toObject rotates a vector from world space into object space (by -angle)
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X-r.sinTheta*v.Z,
		v.Y,
		r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// toWorld rotates a vector from object space back into world space (by +angle)
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(
		r.cosTheta*v.X+r.sinTheta*v.Z,
		v.Y,
		-r.sinTheta*v.X+r.cosTheta*v.Z,
	)
}

// Hit rotates the ray into object space, delegates, then rotates the hit
// point and normal back. Rotation preserves the ray/normal angle, so the
// front-face flag from the inner hit stays valid.
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	rotated := core.Ray{
		Origin:    r.toObject(ray.Origin),
		Direction: r.toObject(ray.Direction),
		Time:      ray.Time,
	}

	hit, ok := r.Inner.Hit(rotated, tMin, tMax, random)
	if !ok {
		return nil, false
	}
	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)

	return hit, true
}

// BoundingBox returns the precomputed rotated box
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.box, r.hasBox
}
