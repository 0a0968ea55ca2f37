package geometry

import (
	"math/rand"

	"github.com/mveron/gotracer/pkg/core"
)

// MovingSphere is a sphere whose center moves linearly from Center0 at Time0
// to Center1 at Time1, producing motion blur when sampled at varying ray times.
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         core.Material
}

// NewMovingSphere creates a new moving sphere. Panics on a non-positive radius
// or an empty time interval.
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, material core.Material) *MovingSphere {
	if radius <= 0 {
		panic("geometry: sphere radius must be positive")
	}
	if time1 <= time0 {
		panic("geometry: moving sphere needs a non-empty time interval")
	}
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: material,
	}
}

// Center returns the sphere center at the given time
func (s *MovingSphere) Center(time float64) core.Vec3 {
	frac := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(frac))
}

// Hit tests the static sphere equation against the center evaluated at the
// ray's own time stamp
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	return sphereHit(ray, s.Center(ray.Time), s.Radius, s.Material, tMin, tMax)
}

// BoundingBox returns the union of the boxes at the start and end of the
// time interval
func (s *MovingSphere) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	box0 := core.NewAABB(
		s.Center(time0).Subtract(radius),
		s.Center(time0).Add(radius),
	)
	box1 := core.NewAABB(
		s.Center(time1).Subtract(radius),
		s.Center(time1).Add(radius),
	)
	return core.SurroundingBox(box0, box1), true
}
