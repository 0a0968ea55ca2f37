package scene

import (
	"math"
	"math/rand"

	"github.com/mveron/gotracer/pkg/core"
	"github.com/mveron/gotracer/pkg/geometry"
	"github.com/mveron/gotracer/pkg/material"
	"github.com/mveron/gotracer/pkg/renderer"
)

// Layout seed for the random sphere grid, so the scene is the same on every
// run.
const randomSceneSeed = 42

// NewThreeSphereScene builds a small scene with a diffuse, a metal and a
// glass sphere over a checkered ground, under a gradient sky
func NewThreeSphereScene(aspectRatio float64) (*Scene, *renderer.Camera) {
	camera := renderer.NewCamera(
		core.NewVec3(4, 2, 4),
		core.NewVec3(0, 0, -1),
		20,
		aspectRatio,
	)

	sky := core.GradientBackground{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1, 1, 1),
	}

	sc := NewBuilder(sky).
		Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5,
			material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))).
		Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100,
			material.NewTexturedLambertian(material.NewCheckerFromColors(
				core.NewVec3(1, 1, 1),
				core.NewVec3(0.5, 0.1, 0.8),
			)))).
		Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5,
			material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0))).
		Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5,
			material.NewDielectric(1.5))).
		Build()

	return sc, camera
}

// NewRandomScene builds the classic random sphere field: three hero spheres
// surrounded by a 22x22 grid of small diffuse (some moving), metal and glass
// spheres
func NewRandomScene(aspectRatio float64) (*Scene, *renderer.Camera) {
	camera := renderer.NewCamera(
		core.NewVec3(13, 2, 3),
		core.NewVec3(0, 0, 0),
		20,
		aspectRatio,
	).
		WithAperture(0.1).
		WithFocusDist(10).
		WithTimeInterval(0, 1)

	sky := core.GradientBackground{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1, 1, 1),
	}

	random := rand.New(rand.NewSource(randomSceneSeed))
	builder := NewBuilder(sky).
		Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000,
			material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() < 0.9 {
				continue
			}

			chooseMat := random.Float64()
			switch {
			case chooseMat < 0.8:
				albedo := core.NewVec3(
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
				)
				center1 := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
				builder.Add(geometry.NewMovingSphere(center, center1, 0, 1, 0.2,
					material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.NewVec3(
					0.5+0.5*random.Float64(),
					0.5+0.5*random.Float64(),
					0.5+0.5*random.Float64(),
				)
				fuzz := 0.5 * random.Float64()
				builder.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				builder.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	builder.
		Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5))).
		Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1,
			material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))).
		Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1,
			material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)))

	return builder.Build(), camera
}

// NewEarthScene builds a single image-mapped sphere, falling back to a marble
// noise texture when the map cannot be loaded
func NewEarthScene(aspectRatio float64) (*Scene, *renderer.Camera) {
	camera := renderer.NewCamera(
		core.NewVec3(13, 2, 3),
		core.NewVec3(0, 0, 0),
		20,
		aspectRatio,
	)

	sky := core.GradientBackground{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1, 1, 1),
	}

	var surface core.Texture
	if tex, err := material.LoadImageTexture("earthmap.jpg"); err == nil {
		surface = tex
	} else {
		surface = material.NewNoise(math.Pi, rand.New(rand.NewSource(randomSceneSeed)))
	}

	sc := NewBuilder(sky).
		Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2,
			material.NewTexturedLambertian(surface))).
		Build()

	return sc, camera
}
