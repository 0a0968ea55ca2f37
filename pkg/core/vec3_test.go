package core

import (
	"math"
	"math/rand"
	"testing"
)

const tolerance = 1e-9

func vecsClose(a, b Vec3, tol float64) bool {
	return a.Subtract(b).Length() <= tol
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Add(b); !vecsClose(got, NewVec3(5, -3, 9), tolerance) {
		t.Errorf("Add: expected (5,-3,9), got %v", got)
	}
	if got := a.Subtract(b); !vecsClose(got, NewVec3(-3, 7, -3), tolerance) {
		t.Errorf("Subtract: expected (-3,7,-3), got %v", got)
	}
	if got := a.Multiply(2); !vecsClose(got, NewVec3(2, 4, 6), tolerance) {
		t.Errorf("Multiply: expected (2,4,6), got %v", got)
	}
	if got := a.MultiplyVec(b); !vecsClose(got, NewVec3(4, -10, 18), tolerance) {
		t.Errorf("MultiplyVec: expected (4,-10,18), got %v", got)
	}
	if got := a.Dot(b); math.Abs(got-12) > tolerance {
		t.Errorf("Dot: expected 12, got %v", got)
	}
}

func TestVec3_Cross(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected Vec3
	}{
		{
			name:     "X cross Y is Z",
			a:        NewVec3(1, 0, 0),
			b:        NewVec3(0, 1, 0),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "Y cross Z is X",
			a:        NewVec3(0, 1, 0),
			b:        NewVec3(0, 0, 1),
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "Parallel vectors",
			a:        NewVec3(2, 2, 2),
			b:        NewVec3(1, 1, 1),
			expected: NewVec3(0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cross(tt.b); !vecsClose(got, tt.expected, tolerance) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1) > tolerance {
		t.Errorf("Expected unit length, got %v", v.Length())
	}
	if !vecsClose(v, NewVec3(0.6, 0.8, 0), tolerance) {
		t.Errorf("Expected (0.6,0.8,0), got %v", v)
	}

	zero := NewVec3(0, 0, 0).Normalize()
	if !vecsClose(zero, NewVec3(0, 0, 0), tolerance) {
		t.Errorf("Normalizing zero should return zero, got %v", zero)
	}
}

func TestVec3_Axis(t *testing.T) {
	v := NewVec3(1, 2, 3)
	for axis, expected := range []float64{1, 2, 3} {
		if got := v.Axis(axis); got != expected {
			t.Errorf("Axis(%d): expected %v, got %v", axis, expected, got)
		}
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-7, 0, 0).NearZero() {
		t.Error("Expected 1e-7 component to not be near zero")
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1)
	if !vecsClose(v, NewVec3(0, 0.5, 1), tolerance) {
		t.Errorf("Expected (0,0.5,1), got %v", v)
	}
}

func TestVec3_GammaCorrect(t *testing.T) {
	v := NewVec3(0.25, 1, 0).GammaCorrect(2)
	if !vecsClose(v, NewVec3(0.5, 1, 0), tolerance) {
		t.Errorf("Expected (0.5,1,0), got %v", v)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -1), 0)
	if got := ray.At(2.5); !vecsClose(got, NewVec3(1, 2, 0.5), tolerance) {
		t.Errorf("Expected (1,2,0.5), got %v", got)
	}
}

func TestNewRay_PanicsOnZeroDirection(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for zero direction")
		}
	}()
	NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, 0), 0)
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name     string
		v, n     Vec3
		expected Vec3
	}{
		{
			name:     "45 degree incidence",
			v:        NewVec3(1, -1, 0),
			n:        NewVec3(0, 1, 0),
			expected: NewVec3(1, 1, 0),
		},
		{
			name:     "Head-on incidence",
			v:        NewVec3(0, -1, 0),
			n:        NewVec3(0, 1, 0),
			expected: NewVec3(0, 1, 0),
		},
		{
			name:     "Grazing along surface",
			v:        NewVec3(1, 0, 0),
			n:        NewVec3(0, 1, 0),
			expected: NewVec3(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reflect(tt.v, tt.n); !vecsClose(got, tt.expected, tolerance) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestReflect_Law(t *testing.T) {
	// dot(reflect(d,n), n) == -dot(d, n) and the length is preserved
	random := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		d := RandomInUnitSphere(random).Multiply(3)
		n := RandomUnitVector(random)
		r := Reflect(d, n)

		if math.Abs(r.Dot(n)+d.Dot(n)) > 1e-9 {
			t.Fatalf("Expected mirrored normal component for d=%v n=%v", d, n)
		}
		if math.Abs(r.Length()-d.Length()) > 1e-9 {
			t.Fatalf("Expected preserved length for d=%v n=%v", d, n)
		}
	}
}

func TestRefract_StraightThrough(t *testing.T) {
	// Head-on rays pass through undeviated regardless of the index ratio
	uv := NewVec3(0, -1, 0)
	n := NewVec3(0, 1, 0)
	got := Refract(uv, n, 1.5)
	if !vecsClose(got, uv, 1e-6) {
		t.Errorf("Expected %v, got %v", uv, got)
	}
}

func TestRefract_SnellsLaw(t *testing.T) {
	// 45 degree incidence entering a denser medium bends toward the normal
	uv := NewVec3(1, -1, 0).Normalize()
	n := NewVec3(0, 1, 0)
	ratio := 1.0 / 1.5
	got := Refract(uv, n, ratio)

	sinIncident := math.Sqrt(2) / 2
	sinRefracted := math.Abs(got.Normalize().X)
	if math.Abs(sinRefracted-ratio*sinIncident) > 1e-9 {
		t.Errorf("Snell's law violated: sin_t = %v, expected %v", sinRefracted, ratio*sinIncident)
	}
}

func TestSchlick(t *testing.T) {
	// Head-on reflectance for glass is ((1-1.5)/(1+1.5))^2 = 0.04
	if got := Schlick(1, 1.5); math.Abs(got-0.04) > 1e-9 {
		t.Errorf("Expected 0.04, got %v", got)
	}
	// Grazing incidence approaches total reflection
	if got := Schlick(0, 1.5); math.Abs(got-1) > 1e-9 {
		t.Errorf("Expected 1, got %v", got)
	}
}

func TestRandomSamplers(t *testing.T) {
	random := rand.New(rand.NewSource(7))

	for i := 0; i < 100; i++ {
		if p := RandomInUnitSphere(random); p.LengthSquared() >= 1 {
			t.Fatalf("Point %v outside unit sphere", p)
		}
		if u := RandomUnitVector(random); math.Abs(u.Length()-1) > tolerance {
			t.Fatalf("Vector %v is not unit length", u)
		}
		d := RandomInUnitDisk(random)
		if d.Z != 0 || d.LengthSquared() >= 1 {
			t.Fatalf("Point %v outside unit disk", d)
		}
	}
}
