package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mveron/gotracer/pkg/core"
	"github.com/mveron/gotracer/pkg/material"
)

func TestConstantMedium_DenseAlwaysScatters(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, -5), 1, nil)
	phase := material.NewIsotropic(core.NewVec3(1, 1, 1))
	medium := NewConstantMedium(boundary, 1e9, phase)
	random := rand.New(rand.NewSource(1))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)
	for i := 0; i < 50; i++ {
		hit, ok := medium.Hit(ray, 0.001, math.Inf(1), random)
		if !ok {
			t.Fatal("Expected a dense medium to always scatter")
		}
		// Scatter point is just past the entry crossing at t=4
		if hit.T < 4 || hit.T > 4+1e-6 {
			t.Fatalf("Expected scatter at the boundary entry, got t=%v", hit.T)
		}
		if hit.Material != phase {
			t.Fatal("Expected the phase function as hit material")
		}
	}
}

func TestConstantMedium_ThinPassesThrough(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, -5), 1, nil)
	medium := NewConstantMedium(boundary, 1e-9, material.NewIsotropic(core.NewVec3(1, 1, 1)))
	random := rand.New(rand.NewSource(1))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)
	for i := 0; i < 50; i++ {
		if _, ok := medium.Hit(ray, 0.001, math.Inf(1), random); ok {
			t.Fatal("Expected a near-vacuum medium to pass rays through")
		}
	}
}

func TestConstantMedium_MissesBoundary(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, -5), 1, nil)
	medium := NewConstantMedium(boundary, 1e9, material.NewIsotropic(core.NewVec3(1, 1, 1)))
	random := rand.New(rand.NewSource(1))

	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, 0, -1), 0)
	if _, ok := medium.Hit(ray, 0.001, math.Inf(1), random); ok {
		t.Error("Expected no scatter when the ray misses the boundary")
	}
}

func TestConstantMedium_FromInside(t *testing.T) {
	// Rays starting inside the volume still scatter; the entry crossing is
	// clamped to the ray origin
	boundary := NewSphere(core.NewVec3(0, 0, 0), 2, nil)
	medium := NewConstantMedium(boundary, 1e9, material.NewIsotropic(core.NewVec3(1, 1, 1)))
	random := rand.New(rand.NewSource(1))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)
	hit, ok := medium.Hit(ray, 0.001, math.Inf(1), random)
	if !ok {
		t.Fatal("Expected scatter from inside the volume")
	}
	if hit.T > 0.001+1e-6 {
		t.Errorf("Expected scatter near the origin, got t=%v", hit.T)
	}
}

func TestNewConstantMedium_PanicsOnBadDensity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for non-positive density")
		}
	}()
	NewConstantMedium(NewSphere(core.NewVec3(0, 0, 0), 1, nil), 0, material.NewIsotropic(core.NewVec3(1, 1, 1)))
}
