package renderer

import (
	"math"
	"math/rand"

	"github.com/mveron/gotracer/pkg/core"
)

// Camera generates primary rays through a thin lens. It is positioned by a
// look-from/look-at pair with a vertical field of view and produces rays for
// normalized image-plane coordinates (s, t) in [0,1]².
type Camera struct {
	lookFrom    core.Vec3
	lookAt      core.Vec3
	vup         core.Vec3
	vfov        float64 // Vertical field of view, degrees
	aspectRatio float64
	aperture    float64
	focusDist   float64
	time0       float64
	time1       float64

	// Derived
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
}

// NewCamera creates a camera at lookFrom pointed at lookAt. The focus
// distance defaults to the look-from/look-at distance and the aperture to
// zero (pinhole). Panics on coincident look points or non-positive
// vfov/aspect ratio.
func NewCamera(lookFrom, lookAt core.Vec3, vfov, aspectRatio float64) *Camera {
	if lookFrom.Subtract(lookAt).NearZero() {
		panic("renderer: camera lookFrom and lookAt must differ")
	}
	if vfov <= 0 {
		panic("renderer: camera vertical field of view must be positive")
	}
	if aspectRatio <= 0 {
		panic("renderer: camera aspect ratio must be positive")
	}

	c := &Camera{
		lookFrom:    lookFrom,
		lookAt:      lookAt,
		vup:         core.NewVec3(0, 1, 0),
		vfov:        vfov,
		aspectRatio: aspectRatio,
		focusDist:   lookFrom.Subtract(lookAt).Length(),
	}
	c.recompute()
	return c
}

// WithVUp overrides the camera's up direction. Panics on a near-zero vector.
func (c *Camera) WithVUp(vup core.Vec3) *Camera {
	if vup.NearZero() {
		panic("renderer: camera up vector must be non-zero")
	}
	c.vup = vup
	c.recompute()
	return c
}

// WithAperture sets the lens aperture for depth of field. Panics on a
// negative aperture.
func (c *Camera) WithAperture(aperture float64) *Camera {
	if aperture < 0 {
		panic("renderer: camera aperture must be non-negative")
	}
	c.aperture = aperture
	c.recompute()
	return c
}

// WithFocusDist sets the focus distance. Panics on a non-positive distance.
func (c *Camera) WithFocusDist(focusDist float64) *Camera {
	if focusDist <= 0 {
		panic("renderer: camera focus distance must be positive")
	}
	c.focusDist = focusDist
	c.recompute()
	return c
}

// WithTimeInterval sets the shutter interval sampled for motion blur
func (c *Camera) WithTimeInterval(time0, time1 float64) *Camera {
	if time1 < time0 {
		panic("renderer: camera time interval must be ordered")
	}
	c.time0, c.time1 = time0, time1
	return c
}

func (c *Camera) recompute() {
	theta := c.vfov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2)
	viewportHeight := 2.0 * halfHeight
	viewportWidth := c.aspectRatio * viewportHeight

	c.w = c.lookFrom.Subtract(c.lookAt).Normalize()
	c.u = c.vup.Cross(c.w).Normalize()
	c.v = c.w.Cross(c.u)

	c.origin = c.lookFrom
	c.horizontal = c.u.Multiply(viewportWidth * c.focusDist)
	c.vertical = c.v.Multiply(viewportHeight * c.focusDist)
	c.lowerLeftCorner = c.origin.
		Subtract(c.horizontal.Multiply(0.5)).
		Subtract(c.vertical.Multiply(0.5)).
		Subtract(c.w.Multiply(c.focusDist))
	c.lensRadius = c.aperture / 2
}

// GetRay generates a ray through normalized image coordinates (s, t), with
// thin-lens jitter for depth of field and a time sample inside the shutter
// interval
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	time := c.time0
	if c.time1 > c.time0 {
		time = c.time0 + random.Float64()*(c.time1-c.time0)
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	return core.NewRay(c.origin.Add(offset), direction, time)
}
