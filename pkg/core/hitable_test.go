package core

import (
	"math"
	"math/rand"
	"testing"
)

// stubHitable reports a hit at a fixed t on any ray inside (tMin, tMax).
type stubHitable struct {
	t   float64
	box AABB
}

func (s stubHitable) Hit(ray Ray, tMin, tMax float64, random *rand.Rand) (*HitRecord, bool) {
	if s.t <= tMin || s.t >= tMax {
		return nil, false
	}
	return &HitRecord{T: s.t, Point: ray.At(s.t)}, true
}

func (s stubHitable) BoundingBox(time0, time1 float64) (AABB, bool) {
	return s.box, true
}

func TestHitableList_ClosestHit(t *testing.T) {
	list := HitableList{
		stubHitable{t: 5},
		stubHitable{t: 2},
		stubHitable{t: 8},
	}
	random := rand.New(rand.NewSource(1))
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, 1), 0)

	hit, ok := list.Hit(ray, 0.001, math.Inf(1), random)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if hit.T != 2 {
		t.Errorf("Expected closest hit at t=2, got %v", hit.T)
	}
}

func TestHitableList_Empty(t *testing.T) {
	random := rand.New(rand.NewSource(1))
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, 1), 0)

	if _, ok := (HitableList{}).Hit(ray, 0.001, math.Inf(1), random); ok {
		t.Error("Expected no hit from empty list")
	}
	if _, ok := (HitableList{}).BoundingBox(0, 1); ok {
		t.Error("Expected no bounding box from empty list")
	}
}

func TestHitableList_BoundingBox(t *testing.T) {
	list := HitableList{
		stubHitable{t: 1, box: NewAABB(NewVec3(-1, -1, -1), NewVec3(0, 0, 0))},
		stubHitable{t: 1, box: NewAABB(NewVec3(0, 0, 0), NewVec3(2, 3, 4))},
	}
	box, ok := list.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected a bounding box")
	}
	expected := NewAABB(NewVec3(-1, -1, -1), NewVec3(2, 3, 4))
	if box != expected {
		t.Errorf("Expected %v, got %v", expected, box)
	}
}

func TestGradientBackground(t *testing.T) {
	bg := GradientBackground{
		Top:    NewVec3(0.5, 0.7, 1.0),
		Bottom: NewVec3(1, 1, 1),
	}

	if got := bg.Color(0); !vecsClose(got, NewVec3(1, 1, 1), tolerance) {
		t.Errorf("Expected bottom color at t=0, got %v", got)
	}
	if got := bg.Color(1); !vecsClose(got, NewVec3(0.5, 0.7, 1.0), tolerance) {
		t.Errorf("Expected top color at t=1, got %v", got)
	}
	if got := bg.Color(0.5); !vecsClose(got, NewVec3(0.75, 0.85, 1.0), tolerance) {
		t.Errorf("Expected midpoint blend at t=0.5, got %v", got)
	}
}

func TestSolidBackground(t *testing.T) {
	bg := SolidBackground{C: NewVec3(0.2, 0.4, 0.6)}
	for _, tv := range []float64{0, 0.3, 1} {
		if got := bg.Color(tv); got != bg.C {
			t.Errorf("Expected constant color at t=%v, got %v", tv, got)
		}
	}
}

func TestSetFaceNormal(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, 1), 0)
	outward := NewVec3(0, 0, -1)

	var hit HitRecord
	hit.SetFaceNormal(ray, outward)
	if !hit.FrontFace {
		t.Error("Expected front face hit")
	}
	if hit.Normal != outward {
		t.Errorf("Expected normal %v, got %v", outward, hit.Normal)
	}

	hit.SetFaceNormal(ray, NewVec3(0, 0, 1))
	if hit.FrontFace {
		t.Error("Expected back face hit")
	}
	if hit.Normal != (NewVec3(0, 0, -1)) {
		t.Errorf("Expected flipped normal, got %v", hit.Normal)
	}
}
