package shape

import (
	"math"
	"testing"

	mathpkg "github.com/tobyv/go-whitted-raytracer/pkg/math"
)

func TestAABBAddPointAndUnion(t *testing.T) {
	box := EmptyAABB().
		AddPoint(mathpkg.NewPoint(-5, 2, 0)).
		AddPoint(mathpkg.NewPoint(7, 0, -3))

	if box.Min != mathpkg.NewPoint(-5, 0, -3) || box.Max != mathpkg.NewPoint(7, 2, 0) {
		t.Fatalf("box = %v, expected min (-5, 0, -3) max (7, 2, 0)", box)
	}

	other := NewAABB(mathpkg.NewPoint(8, -7, -2), mathpkg.NewPoint(14, 2, 8))
	merged := box.Union(other)
	if merged.Min != mathpkg.NewPoint(-5, -7, -3) || merged.Max != mathpkg.NewPoint(14, 2, 8) {
		t.Fatalf("union = %v, expected min (-5, -7, -3) max (14, 2, 8)", merged)
	}
}

func TestAABBLongestAxis(t *testing.T) {
	tests := []struct {
		min, max mathpkg.Point
		axis     int
	}{
		{mathpkg.NewPoint(-1, 0, 0), mathpkg.NewPoint(5, 1, 1), 0},
		{mathpkg.NewPoint(0, -2, 0), mathpkg.NewPoint(1, 9, 1), 1},
		{mathpkg.NewPoint(0, 0, 0), mathpkg.NewPoint(1, 1, 4), 2},
	}

	for _, tt := range tests {
		if got := NewAABB(tt.min, tt.max).LongestAxis(); got != tt.axis {
			t.Errorf("LongestAxis(%v, %v) = %d, expected %d", tt.min, tt.max, got, tt.axis)
		}
	}
}

func TestAABBTransform(t *testing.T) {
	box := NewAABB(mathpkg.NewPoint(-1, -1, -1), mathpkg.NewPoint(1, 1, 1))
	m := mathpkg.RotateX(math.Pi / 4).Multiply(mathpkg.RotateY(math.Pi / 4))

	got := box.Transform(m)
	want := math.Sqrt2
	for _, v := range []float64{-got.Min.X, -got.Min.Y, -got.Min.Z, got.Max.X, got.Max.Y, got.Max.Z} {
		if math.Abs(v-want) > 1e-4 {
			t.Fatalf("transformed box = %v, expected extents near ±%v", got, want)
		}
	}
}

func TestAABBTransformInfinite(t *testing.T) {
	inf := math.Inf(1)
	box := NewAABB(mathpkg.NewPoint(-inf, 0, -inf), mathpkg.NewPoint(inf, 0, inf))

	got := box.Transform(mathpkg.RotateZ(math.Pi / 3))
	if !got.IsInfinite() {
		t.Fatalf("transformed box = %v, expected an unbounded box", got)
	}
	for _, v := range []float64{got.Min.X, got.Min.Y, got.Min.Z, got.Max.X, got.Max.Y, got.Max.Z} {
		if math.IsNaN(v) {
			t.Fatalf("transformed box contains NaN: %v", got)
		}
	}
}

func TestAABBIntersectedBy(t *testing.T) {
	box := NewAABB(mathpkg.NewPoint(-1, -1, -1), mathpkg.NewPoint(1, 1, 1))

	tests := []struct {
		name      string
		origin    mathpkg.Point
		direction mathpkg.Vector
		hit       bool
	}{
		{"head on", mathpkg.NewPoint(0, 0, -5), mathpkg.NewVector(0, 0, 1), true},
		{"from inside", mathpkg.Origin(), mathpkg.NewVector(0, 1, 0), true},
		{"pointing away", mathpkg.NewPoint(0, 0, -5), mathpkg.NewVector(0, 0, -1), false},
		{"parallel outside the slab", mathpkg.NewPoint(0, 2, -5), mathpkg.NewVector(0, 0, 1), false},
		{"parallel inside the slab", mathpkg.NewPoint(0, 0.5, -5), mathpkg.NewVector(0, 0, 1), true},
		{"diagonal miss", mathpkg.NewPoint(2, 2, -5), mathpkg.NewVector(0, 0, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.IntersectedBy(mathpkg.NewRay(tt.origin, tt.direction)); got != tt.hit {
				t.Errorf("IntersectedBy() = %v, expected %v", got, tt.hit)
			}
		})
	}
}
