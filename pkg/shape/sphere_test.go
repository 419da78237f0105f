package shape

import (
	"math"
	"testing"

	"github.com/tobyv/go-whitted-raytracer/pkg/material"
	mathpkg "github.com/tobyv/go-whitted-raytracer/pkg/math"
)

func defaultSphere(t *testing.T) *Shape {
	t.Helper()
	s, err := NewSphere(mathpkg.Identity(), material.Default())
	if err != nil {
		t.Fatalf("NewSphere() returned error: %v", err)
	}
	return s
}

func TestSphereIntersect(t *testing.T) {
	tests := []struct {
		name      string
		origin    mathpkg.Point
		direction mathpkg.Vector
		expected  []float64
	}{
		{
			name:      "through the center",
			origin:    mathpkg.NewPoint(0, 0, -5),
			direction: mathpkg.NewVector(0, 0, 1),
			expected:  []float64{4, 6},
		},
		{
			name:      "tangent counts as two equal roots",
			origin:    mathpkg.NewPoint(0, 1, -5),
			direction: mathpkg.NewVector(0, 0, 1),
			expected:  []float64{5, 5},
		},
		{
			name:      "miss",
			origin:    mathpkg.NewPoint(0, 2, -5),
			direction: mathpkg.NewVector(0, 0, 1),
			expected:  nil,
		},
		{
			name:      "origin inside the sphere",
			origin:    mathpkg.Origin(),
			direction: mathpkg.NewVector(0, 0, 1),
			expected:  []float64{-1, 1},
		},
		{
			name:      "sphere behind the ray",
			origin:    mathpkg.NewPoint(0, 0, 5),
			direction: mathpkg.NewVector(0, 0, 1),
			expected:  []float64{-6, -4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := defaultSphere(t)
			xs := s.Intersect(mathpkg.NewRay(tt.origin, tt.direction))

			if len(xs) != len(tt.expected) {
				t.Fatalf("got %d intersections, expected %d", len(xs), len(tt.expected))
			}
			for i, expected := range tt.expected {
				if !mathpkg.Eq(xs[i].T, expected) {
					t.Errorf("t[%d] = %v, expected %v", i, xs[i].T, expected)
				}
				if xs[i].Shape != s {
					t.Errorf("intersection %d does not reference the sphere", i)
				}
			}
		})
	}
}

func TestSphereIntersectTransformed(t *testing.T) {
	ray := mathpkg.NewRay(mathpkg.NewPoint(0, 0, -5), mathpkg.NewVector(0, 0, 1))

	scaled, err := NewSphere(mathpkg.Scale(2, 2, 2), material.Default())
	if err != nil {
		t.Fatalf("NewSphere() returned error: %v", err)
	}
	xs := scaled.Intersect(ray)
	if len(xs) != 2 || !mathpkg.Eq(xs[0].T, 3) || !mathpkg.Eq(xs[1].T, 7) {
		t.Errorf("scaled sphere intersections = %v, expected t=3 and t=7", xs)
	}

	translated, err := NewSphere(mathpkg.Translate(5, 0, 0), material.Default())
	if err != nil {
		t.Fatalf("NewSphere() returned error: %v", err)
	}
	if xs := translated.Intersect(ray); len(xs) != 0 {
		t.Errorf("translated sphere intersections = %v, expected none", xs)
	}
}

func TestSphereRejectsSingularTransform(t *testing.T) {
	if _, err := NewSphere(mathpkg.Scale(0, 0, 0), material.Default()); err == nil {
		t.Error("expected error for singular transform, got nil")
	}
}

func TestSphereNormal(t *testing.T) {
	sqrt3div3 := math.Sqrt(3) / 3

	tests := []struct {
		name     string
		point    mathpkg.Point
		expected mathpkg.Vector
	}{
		{"on the x axis", mathpkg.NewPoint(1, 0, 0), mathpkg.NewVector(1, 0, 0)},
		{"on the y axis", mathpkg.NewPoint(0, 1, 0), mathpkg.NewVector(0, 1, 0)},
		{"on the z axis", mathpkg.NewPoint(0, 0, 1), mathpkg.NewVector(0, 0, 1)},
		{"nonaxial", mathpkg.NewPoint(sqrt3div3, sqrt3div3, sqrt3div3), mathpkg.NewVector(sqrt3div3, sqrt3div3, sqrt3div3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := defaultSphere(t)
			got := s.NormalAt(tt.point, Intersection{})
			if !got.Eq(tt.expected) {
				t.Errorf("normal = %v, expected %v", got, tt.expected)
			}
			if !got.Eq(got.Normalize()) {
				t.Errorf("normal %v is not normalized", got)
			}
		})
	}
}

func TestSphereNormalTransformed(t *testing.T) {
	translated, err := NewSphere(mathpkg.Translate(0, 1, 0), material.Default())
	if err != nil {
		t.Fatalf("NewSphere() returned error: %v", err)
	}
	got := translated.NormalAt(mathpkg.NewPoint(0, 1.70711, -0.70711), Intersection{})
	if !vecNear(got, mathpkg.NewVector(0, 0.70711, -0.70711), 1e-5) {
		t.Errorf("normal = %v, expected (0, 0.70711, -0.70711)", got)
	}

	transformed, err := NewSphere(mathpkg.Scale(1, 0.5, 1).Multiply(mathpkg.RotateZ(math.Pi/5)), material.Default())
	if err != nil {
		t.Fatalf("NewSphere() returned error: %v", err)
	}
	sqrt2div2 := math.Sqrt2 / 2
	got = transformed.NormalAt(mathpkg.NewPoint(0, sqrt2div2, -sqrt2div2), Intersection{})
	if !vecNear(got, mathpkg.NewVector(0, 0.97014, -0.24254), 1e-5) {
		t.Errorf("normal = %v, expected (0, 0.97014, -0.24254)", got)
	}
}

// vecNear compares vectors with an explicit absolute tolerance, for expected
// values quoted to a fixed number of decimals
func vecNear(a, b mathpkg.Vector, tol float64) bool {
	return math.Abs(a.X-b.X) < tol && math.Abs(a.Y-b.Y) < tol && math.Abs(a.Z-b.Z) < tol
}

func TestGlassSphere(t *testing.T) {
	s, err := NewGlassSphere(mathpkg.Identity())
	if err != nil {
		t.Fatalf("NewGlassSphere() returned error: %v", err)
	}
	m := s.Material()
	if m.Transparency != 1.0 {
		t.Errorf("transparency = %v, expected 1.0", m.Transparency)
	}
	if m.RefractiveIndex != 1.5 {
		t.Errorf("refractive index = %v, expected 1.5", m.RefractiveIndex)
	}
}
