package shape

import (
	"math"
	"testing"

	"github.com/tobyv/go-whitted-raytracer/pkg/material"
	mathpkg "github.com/tobyv/go-whitted-raytracer/pkg/math"
)

func defaultTriangle(t *testing.T) *Shape {
	t.Helper()
	tri, err := NewTriangle(
		mathpkg.NewPoint(0, 1, 0),
		mathpkg.NewPoint(-1, 0, 0),
		mathpkg.NewPoint(1, 0, 0),
		mathpkg.Identity(), material.Default(),
	)
	if err != nil {
		t.Fatalf("NewTriangle() returned error: %v", err)
	}
	return tri
}

func defaultSmoothTriangle(t *testing.T) *Shape {
	t.Helper()
	tri, err := NewSmoothTriangle(
		mathpkg.NewPoint(0, 1, 0),
		mathpkg.NewPoint(-1, 0, 0),
		mathpkg.NewPoint(1, 0, 0),
		mathpkg.NewVector(0, 1, 0),
		mathpkg.NewVector(-1, 0, 0),
		mathpkg.NewVector(1, 0, 0),
		mathpkg.Identity(), material.Default(),
	)
	if err != nil {
		t.Fatalf("NewSmoothTriangle() returned error: %v", err)
	}
	return tri
}

func TestTriangleNormalIsConstant(t *testing.T) {
	tri := defaultTriangle(t)
	expected := mathpkg.NewVector(0, 0, -1)

	points := []mathpkg.Point{
		mathpkg.NewPoint(0, 0.5, 0),
		mathpkg.NewPoint(-0.5, 0.75, 0),
		mathpkg.NewPoint(0.5, 0.25, 0),
	}
	for _, p := range points {
		if got := tri.NormalAt(p, Intersection{}); !got.Eq(expected) {
			t.Errorf("normal at %v = %v, expected %v", p, got, expected)
		}
	}
}

func TestTriangleMiss(t *testing.T) {
	tests := []struct {
		name      string
		origin    mathpkg.Point
		direction mathpkg.Vector
	}{
		{"parallel ray", mathpkg.NewPoint(0, -1, -2), mathpkg.NewVector(0, 1, 0)},
		{"beyond the p1-p3 edge", mathpkg.NewPoint(1, 1, -2), mathpkg.NewVector(0, 0, 1)},
		{"beyond the p1-p2 edge", mathpkg.NewPoint(-1, 1, -2), mathpkg.NewVector(0, 0, 1)},
		{"beyond the p2-p3 edge", mathpkg.NewPoint(0, -1, -2), mathpkg.NewVector(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tri := defaultTriangle(t)
			if xs := tri.Intersect(mathpkg.NewRay(tt.origin, tt.direction)); len(xs) != 0 {
				t.Errorf("got %d intersections, expected none", len(xs))
			}
		})
	}
}

func TestTriangleHit(t *testing.T) {
	tri := defaultTriangle(t)
	ray := mathpkg.NewRay(mathpkg.NewPoint(0, 0.5, -2), mathpkg.NewVector(0, 0, 1))

	xs := tri.Intersect(ray)
	if len(xs) != 1 {
		t.Fatalf("got %d intersections, expected 1", len(xs))
	}
	if math.Abs(xs[0].T-2) > 1e-9 {
		t.Errorf("t = %v, expected 2", xs[0].T)
	}
}

func TestSmoothTriangleHitCarriesUV(t *testing.T) {
	tri := defaultSmoothTriangle(t)
	ray := mathpkg.NewRay(mathpkg.NewPoint(-0.2, 0.3, -2), mathpkg.NewVector(0, 0, 1))

	xs := tri.Intersect(ray)
	if len(xs) != 1 {
		t.Fatalf("got %d intersections, expected 1", len(xs))
	}
	if math.Abs(xs[0].U-0.45) > 1e-5 || math.Abs(xs[0].V-0.25) > 1e-5 {
		t.Errorf("u, v = %v, %v, expected 0.45, 0.25", xs[0].U, xs[0].V)
	}
}

func TestSmoothTriangleInterpolatedNormal(t *testing.T) {
	tri := defaultSmoothTriangle(t)
	hit := Intersection{T: 1, Shape: tri, U: 0.45, V: 0.25}

	got := tri.NormalAt(mathpkg.Origin(), hit)
	expected := mathpkg.NewVector(-0.5547, 0.83205, 0)
	if !vecNear(got, expected, 1e-5) {
		t.Errorf("interpolated normal = %v, expected %v", got, expected)
	}
}
