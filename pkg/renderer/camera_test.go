package renderer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mathpkg "github.com/tobyv/go-whitted-raytracer/pkg/math"
)

func TestCameraPixelSize(t *testing.T) {
	tests := []struct {
		name         string
		hsize, vsize int
		expected     float64
	}{
		{"landscape", 200, 125, 0.01},
		{"portrait", 125, 200, 0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCamera(tt.hsize, tt.vsize, math.Pi/2, mathpkg.Identity())
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, c.PixelSize(), 1e-9)
		})
	}
}

func TestCameraRejectsBadInput(t *testing.T) {
	_, err := NewCamera(0, 100, math.Pi/2, mathpkg.Identity())
	assert.Error(t, err)

	_, err = NewCamera(100, 100, math.Pi/2, mathpkg.Scale(1, 0, 1))
	assert.ErrorIs(t, err, mathpkg.ErrSingularMatrix)
}

func TestCameraRayForPixel(t *testing.T) {
	t.Run("through the center of the canvas", func(t *testing.T) {
		c, err := NewCamera(201, 101, math.Pi/2, mathpkg.Identity())
		require.NoError(t, err)

		ray := c.RayForPixel(100, 50)
		assert.True(t, ray.Origin.Eq(mathpkg.Origin()))
		assertVecNear(t, mathpkg.NewVector(0, 0, -1), ray.Direction)
	})

	t.Run("through a corner of the canvas", func(t *testing.T) {
		c, err := NewCamera(201, 101, math.Pi/2, mathpkg.Identity())
		require.NoError(t, err)

		ray := c.RayForPixel(0, 0)
		assert.True(t, ray.Origin.Eq(mathpkg.Origin()))
		assertVecNear(t, mathpkg.NewVector(0.66519, 0.33259, -0.66851), ray.Direction)
	})

	t.Run("with a transformed camera", func(t *testing.T) {
		transform := mathpkg.RotateY(math.Pi / 4).Multiply(mathpkg.Translate(0, -2, 5))
		c, err := NewCamera(201, 101, math.Pi/2, transform)
		require.NoError(t, err)

		half := math.Sqrt2 / 2
		ray := c.RayForPixel(100, 50)
		assert.True(t, pointNear(ray.Origin, mathpkg.NewPoint(0, 2, -5), 1e-9))
		assertVecNear(t, mathpkg.NewVector(half, 0, -half), ray.Direction)
	})
}

func assertVecNear(t *testing.T, want, got mathpkg.Vector) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-4)
	assert.InDelta(t, want.Y, got.Y, 1e-4)
	assert.InDelta(t, want.Z, got.Z, 1e-4)
}

func pointNear(a, b mathpkg.Point, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}
