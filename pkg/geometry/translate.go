package geometry

import (
	"math/rand"

	"github.com/mveron/gotracer/pkg/core"
)

// Translate shifts an inner hitable by a fixed offset. Rays are moved into
// object space before delegating and hit points moved back afterwards.
type Translate struct {
	Inner  core.Hitable
	Offset core.Vec3
}

// NewTranslate wraps a hitable with a translation
func NewTranslate(inner core.Hitable, offset core.Vec3) *Translate {
	return &Translate{Inner: inner, Offset: offset}
}

// Hit delegates with the ray origin shifted by -Offset and shifts the
// resulting hit point by +Offset
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, random *rand.Rand) (*core.HitRecord, bool) {
	translated := core.Ray{
		Origin:    ray.Origin.Subtract(t.Offset),
		Direction: ray.Direction,
		Time:      ray.Time,
	}

	hit, ok := t.Inner.Hit(translated, tMin, tMax, random)
	if !ok {
		return nil, false
	}
	hit.Point = hit.Point.Add(t.Offset)

	return hit, true
}

// BoundingBox returns the inner box shifted by the offset
func (t *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := t.Inner.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return core.NewAABB(box.Min.Add(t.Offset), box.Max.Add(t.Offset)), true
}
