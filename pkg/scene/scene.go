package scene

import (
	"math/rand"
	"time"

	"github.com/mveron/gotracer/pkg/core"
)

// Scene is an immutable collection of hitables behind a BVH, plus a
// background for rays that escape. Build one with a Builder.
type Scene struct {
	bvh        *core.BVHNode
	background core.Background
}

// BVH returns the scene's intersection structure
func (s *Scene) BVH() core.Hitable {
	return s.bvh
}

// Background returns the scene's background
func (s *Scene) Background() core.Background {
	return s.background
}

// Builder accumulates hitables and finalizes them into a Scene. The BVH is
// built once, over the configured time interval, when Build is called.
type Builder struct {
	objects    core.HitableList
	background core.Background
	time0      float64
	time1      float64
}

// NewBuilder creates a scene builder with the given background. The default
// time interval is [0,1].
func NewBuilder(background core.Background) *Builder {
	if background == nil {
		panic("scene: background is required")
	}
	return &Builder{background: background, time0: 0, time1: 1}
}

// Add appends a hitable to the scene
func (b *Builder) Add(hitable core.Hitable) *Builder {
	b.objects = append(b.objects, hitable)
	return b
}

// WithTimeInterval sets the time interval the BVH must bound, for scenes
// with moving objects
func (b *Builder) WithTimeInterval(time0, time1 float64) *Builder {
	b.time0, b.time1 = time0, time1
	return b
}

// Build finalizes the scene. An empty builder yields a scene where every ray
// sees the background.
func (b *Builder) Build() *Scene {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Scene{
		bvh:        core.NewBVH(b.objects, b.time0, b.time1, random),
		background: b.background,
	}
}
