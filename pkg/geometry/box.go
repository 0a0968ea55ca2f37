package geometry

import (
	"math/rand"

	"github.com/mveron/gotracer/pkg/core"
)

// Box is an axis-aligned box composed of six rectangles, one per face.
type Box struct {
	Min, Max core.Vec3
	faces    core.HitableList
}

// NewBox creates a box with opposite corners min and max, all faces sharing
// one material
func NewBox(min, max core.Vec3, material core.Material) *Box {
	return &Box{
		Min: min,
		Max: max,
		faces: core.HitableList{
			NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, material),
			NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, material),
			NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, material),
			NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, material),
			NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, material),
			NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, material),
		},
	}
}

// Hit returns the closest intersection across the six faces
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	return b.faces.Hit(ray, tMin, tMax, random)
}

// BoundingBox returns the box spanned by the two corners
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
