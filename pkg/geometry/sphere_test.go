package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/mveron/gotracer/pkg/core"
	"github.com/mveron/gotracer/pkg/material"
)

func testMaterial() core.Material {
	return material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
}

func TestSphere_Hit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -3), 1, testMaterial())
	random := rand.New(rand.NewSource(1))

	tests := []struct {
		name      string
		ray       core.Ray
		expectHit bool
		expectedT float64
	}{
		{
			name:      "Through center",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0),
			expectHit: true,
			expectedT: 2,
		},
		{
			name:      "Tangent grazing top",
			ray:       core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 0, -1), 0),
			expectHit: true,
			expectedT: 3,
		},
		{
			name:      "Clear miss",
			ray:       core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, 0, -1), 0),
			expectHit: false,
		},
		{
			name:      "Pointing away",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 0),
			expectHit: false,
		},
		{
			name:      "From inside picks far root",
			ray:       core.NewRay(core.NewVec3(0, 0, -3), core.NewVec3(0, 0, -1), 0),
			expectHit: true,
			expectedT: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := sphere.Hit(tt.ray, 0.001, math.Inf(1), random)
			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, ok)
			}
			if ok && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%v, got %v", tt.expectedT, hit.T)
			}
		})
	}
}

func TestSphere_HitRespectsRange(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -3), 1, testMaterial())
	random := rand.New(rand.NewSource(1))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)

	// Both roots at t=2 and t=4; limiting tMax below the near root should
	// report a miss, limiting tMin above it should pick the far root
	if _, ok := sphere.Hit(ray, 0.001, 1.5, random); ok {
		t.Error("Expected no hit with tMax before the sphere")
	}
	hit, ok := sphere.Hit(ray, 3, math.Inf(1), random)
	if !ok {
		t.Fatal("Expected far root hit")
	}
	if math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected t=4, got %v", hit.T)
	}
}

func TestSphere_NormalOrientation(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -3), 1, testMaterial())
	random := rand.New(rand.NewSource(1))

	// Outside hit: normal faces the ray origin
	hit, ok := sphere.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0), 0.001, math.Inf(1), random)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if !hit.FrontFace {
		t.Error("Expected front face hit from outside")
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("Expected normal (0,0,1), got %v", hit.Normal)
	}

	// Inside hit: normal is flipped to point against the ray
	hit, ok = sphere.Hit(core.NewRay(core.NewVec3(0, 0, -3), core.NewVec3(0, 0, -1), 0), 0.001, math.Inf(1), random)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if hit.FrontFace {
		t.Error("Expected back face hit from inside")
	}
	if hit.Normal.Subtract(core.NewVec3(0, 0, 1)).Length() > 1e-9 {
		t.Errorf("Expected flipped normal (0,0,1), got %v", hit.Normal)
	}
}

func TestSphereUV(t *testing.T) {
	tests := []struct {
		name  string
		point core.Vec3
		u, v  float64
	}{
		{name: "+X", point: core.NewVec3(1, 0, 0), u: 0.5, v: 0.5},
		{name: "-X", point: core.NewVec3(-1, 0, 0), u: 1, v: 0.5},
		{name: "+Y pole", point: core.NewVec3(0, 1, 0), u: 0.5, v: 1},
		{name: "-Y pole", point: core.NewVec3(0, -1, 0), u: 0.5, v: 0},
		{name: "+Z", point: core.NewVec3(0, 0, 1), u: 0.25, v: 0.5},
		{name: "-Z", point: core.NewVec3(0, 0, -1), u: 0.75, v: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := sphereUV(tt.point)
			if math.Abs(u-tt.u) > 1e-9 || math.Abs(v-tt.v) > 1e-9 {
				t.Errorf("Expected (%v,%v), got (%v,%v)", tt.u, tt.v, u, v)
			}
		})
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2, testMaterial())
	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected a bounding box")
	}
	expected := core.NewAABB(core.NewVec3(-1, 0, 1), core.NewVec3(3, 4, 5))
	if box != expected {
		t.Errorf("Expected %v, got %v", expected, box)
	}
}

func TestNewSphere_PanicsOnBadRadius(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for non-positive radius")
		}
	}()
	NewSphere(core.NewVec3(0, 0, 0), 0, testMaterial())
}
