package scene

import (
	"math/rand"

	"github.com/mveron/gotracer/pkg/core"
	"github.com/mveron/gotracer/pkg/geometry"
	"github.com/mveron/gotracer/pkg/material"
	"github.com/mveron/gotracer/pkg/renderer"
)

// NewLightScene builds two marble noise spheres lit only by a rectangular
// panel and an emissive sphere against a black sky
func NewLightScene(aspectRatio float64) (*Scene, *renderer.Camera) {
	camera := renderer.NewCamera(
		core.NewVec3(26, 3, 6),
		core.NewVec3(0, 2, 0),
		20,
		aspectRatio,
	)

	random := rand.New(rand.NewSource(randomSceneSeed))
	marble := material.NewNoise(4, random)

	sc := NewBuilder(core.SolidBackground{C: core.NewVec3(0, 0, 0)}).
		Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000,
			material.NewTexturedLambertian(marble))).
		Add(geometry.NewSphere(core.NewVec3(0, 2, 0), 2,
			material.NewTexturedLambertian(marble))).
		Add(geometry.NewXYRect(3, 5, 1, 3, -2,
			material.NewLight(core.NewVec3(4, 4, 4)))).
		Add(geometry.NewSphere(core.NewVec3(0, 7, 0), 2,
			material.NewLight(core.NewVec3(4, 4, 4)))).
		Build()

	return sc, camera
}
