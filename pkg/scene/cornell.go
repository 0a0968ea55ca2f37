package scene

import (
	"github.com/mveron/gotracer/pkg/core"
	"github.com/mveron/gotracer/pkg/geometry"
	"github.com/mveron/gotracer/pkg/material"
	"github.com/mveron/gotracer/pkg/renderer"
)

func cornellCamera(aspectRatio float64) *renderer.Camera {
	return renderer.NewCamera(
		core.NewVec3(278, 278, -800),
		core.NewVec3(278, 278, 0),
		40,
		aspectRatio,
	)
}

// NewCornellScene builds the Cornell box: two rotated boxes inside a red,
// green and white room lit by an area light in the ceiling
func NewCornellScene(aspectRatio float64) (*Scene, *renderer.Camera) {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewLight(core.NewVec3(15, 15, 15))

	box1 := geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white),
			15,
		),
		core.NewVec3(265, 0, 295),
	)
	box2 := geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white),
			-18,
		),
		core.NewVec3(130, 0, 65),
	)

	sc := NewBuilder(core.SolidBackground{C: core.NewVec3(0, 0, 0)}).
		Add(geometry.NewYZRect(0, 555, 0, 555, 555, green)).
		Add(geometry.NewYZRect(0, 555, 0, 555, 0, red)).
		Add(geometry.NewXZRect(213, 343, 227, 332, 554, light)).
		Add(geometry.NewXZRect(0, 555, 0, 555, 0, white)).
		Add(geometry.NewXZRect(0, 555, 0, 555, 555, white)).
		Add(geometry.NewXYRect(0, 555, 0, 555, 555, white)).
		Add(box1).
		Add(box2).
		Build()

	return sc, cornellCamera(aspectRatio)
}

// NewCornellSmokeScene is the Cornell box with the two boxes replaced by
// volumes of white and black smoke
func NewCornellSmokeScene(aspectRatio float64) (*Scene, *renderer.Camera) {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewLight(core.NewVec3(7, 7, 7))

	box1 := geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white),
			15,
		),
		core.NewVec3(265, 0, 295),
	)
	box2 := geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white),
			-18,
		),
		core.NewVec3(130, 0, 65),
	)

	sc := NewBuilder(core.SolidBackground{C: core.NewVec3(0, 0, 0)}).
		Add(geometry.NewYZRect(0, 555, 0, 555, 555, green)).
		Add(geometry.NewYZRect(0, 555, 0, 555, 0, red)).
		Add(geometry.NewXZRect(113, 443, 127, 432, 554, light)).
		Add(geometry.NewXZRect(0, 555, 0, 555, 0, white)).
		Add(geometry.NewXZRect(0, 555, 0, 555, 555, white)).
		Add(geometry.NewXYRect(0, 555, 0, 555, 555, white)).
		Add(geometry.NewConstantMedium(box1, 0.01,
			material.NewIsotropic(core.NewVec3(0, 0, 0)))).
		Add(geometry.NewConstantMedium(box2, 0.01,
			material.NewIsotropic(core.NewVec3(1, 1, 1)))).
		Build()

	return sc, cornellCamera(aspectRatio)
}
