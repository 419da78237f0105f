package material

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mathpkg "github.com/tobyv/go-whitted-raytracer/pkg/math"
)

func TestStripePattern(t *testing.T) {
	p, err := NewStripePattern(White(), Black(), mathpkg.Identity())
	require.NoError(t, err)

	// Constant in y and z
	assert.True(t, p.At(mathpkg.NewPoint(0, 1, 0)).Eq(White()))
	assert.True(t, p.At(mathpkg.NewPoint(0, 0, 2)).Eq(White()))

	// Alternates in x
	assert.True(t, p.At(mathpkg.NewPoint(0, 0, 0)).Eq(White()))
	assert.True(t, p.At(mathpkg.NewPoint(0.9, 0, 0)).Eq(White()))
	assert.True(t, p.At(mathpkg.NewPoint(1, 0, 0)).Eq(Black()))
	assert.True(t, p.At(mathpkg.NewPoint(-0.1, 0, 0)).Eq(Black()))
	assert.True(t, p.At(mathpkg.NewPoint(-1.1, 0, 0)).Eq(White()))
}

func TestStripePatternWithTransform(t *testing.T) {
	p, err := NewStripePattern(White(), Black(), mathpkg.Scale(2, 2, 2))
	require.NoError(t, err)

	assert.True(t, p.At(mathpkg.NewPoint(1.5, 0, 0)).Eq(White()))
	assert.True(t, p.At(mathpkg.NewPoint(2.5, 0, 0)).Eq(Black()))
}

func TestGradientPattern(t *testing.T) {
	p, err := NewGradientPattern(White(), Black(), mathpkg.Identity())
	require.NoError(t, err)

	assert.True(t, p.At(mathpkg.NewPoint(0, 0, 0)).Eq(White()))
	assert.True(t, p.At(mathpkg.NewPoint(0.25, 0, 0)).Eq(NewColor(0.75, 0.75, 0.75)))
	assert.True(t, p.At(mathpkg.NewPoint(0.5, 0, 0)).Eq(NewColor(0.5, 0.5, 0.5)))
	assert.True(t, p.At(mathpkg.NewPoint(0.75, 0, 0)).Eq(NewColor(0.25, 0.25, 0.25)))
}

func TestRingPattern(t *testing.T) {
	p, err := NewRingPattern(White(), Black(), mathpkg.Identity())
	require.NoError(t, err)

	assert.True(t, p.At(mathpkg.NewPoint(0, 0, 0)).Eq(White()))
	assert.True(t, p.At(mathpkg.NewPoint(1, 0, 0)).Eq(Black()))
	assert.True(t, p.At(mathpkg.NewPoint(0, 0, 1)).Eq(Black()))
	// Just past sqrt(2)/2 in both x and z
	assert.True(t, p.At(mathpkg.NewPoint(0.708, 0, 0.708)).Eq(Black()))
}

func TestCheckerPattern(t *testing.T) {
	p, err := NewCheckerPattern(White(), Black(), mathpkg.Identity())
	require.NoError(t, err)

	// Repeats in each dimension
	assert.True(t, p.At(mathpkg.NewPoint(0, 0, 0)).Eq(White()))
	assert.True(t, p.At(mathpkg.NewPoint(0.99, 0, 0)).Eq(White()))
	assert.True(t, p.At(mathpkg.NewPoint(1.01, 0, 0)).Eq(Black()))
	assert.True(t, p.At(mathpkg.NewPoint(0, 0.99, 0)).Eq(White()))
	assert.True(t, p.At(mathpkg.NewPoint(0, 1.01, 0)).Eq(Black()))
	assert.True(t, p.At(mathpkg.NewPoint(0, 0, 0.99)).Eq(White()))
	assert.True(t, p.At(mathpkg.NewPoint(0, 0, 1.01)).Eq(Black()))
}

func TestBlendPattern(t *testing.T) {
	red := NewSolidPattern(NewColor(1, 0, 0))
	blue := NewSolidPattern(NewColor(0, 0, 1))

	p, err := NewBlendPattern(red, blue, mathpkg.Identity())
	require.NoError(t, err)

	assert.True(t, p.At(mathpkg.NewPoint(3, -2, 0.5)).Eq(NewColor(0.5, 0, 0.5)))
}

func TestPatternRejectsSingularTransform(t *testing.T) {
	_, err := NewStripePattern(White(), Black(), mathpkg.Scale(0, 1, 1))
	assert.ErrorIs(t, err, mathpkg.ErrSingularMatrix)
}

func TestRadialGradientPattern(t *testing.T) {
	p, err := NewRadialGradientPattern(White(), Black(), mathpkg.Identity())
	require.NoError(t, err)

	assert.True(t, p.At(mathpkg.Origin()).Eq(White()))

	got := p.At(mathpkg.NewPoint(0.25, 0, 0.25))
	assert.InDelta(t, 0.646447, got.R, 1e-5)
	assert.InDelta(t, 0.646447, got.G, 1e-5)
	assert.InDelta(t, 0.646447, got.B, 1e-5)

	// Interpolation repeats every unit of radial distance
	got = p.At(mathpkg.NewPoint(1.5, 0, 1.5))
	assert.InDelta(t, 0.87868, got.R, 1e-5)

	// Constant in y
	assert.True(t, p.At(mathpkg.NewPoint(0.25, 7, 0.25)).Eq(p.At(mathpkg.NewPoint(0.25, 0, 0.25))))
}

func TestPerlinPattern(t *testing.T) {
	p, err := NewPerlinPattern(White(), 0.4, 12, mathpkg.Identity())
	require.NoError(t, err)

	// The noise field vanishes on the integer lattice, where the shifted
	// value is exactly one half
	got := p.At(mathpkg.Origin())
	assert.InDelta(t, 0.5, got.R, 1e-9)
	assert.InDelta(t, 0.5, got.G, 1e-9)
	assert.InDelta(t, 0.5, got.B, 1e-9)

	// Same seed, same field
	q, err := NewPerlinPattern(White(), 0.4, 12, mathpkg.Identity())
	require.NoError(t, err)
	pt := mathpkg.NewPoint(0.3, 1.7, -2.2)
	assert.True(t, p.At(pt).Eq(q.At(pt)))

	// Values stay scalings of the base color inside 0..1
	for _, pt := range []mathpkg.Point{
		{X: 0.1, Y: 0.2, Z: 0.3},
		{X: -4.7, Y: 2.3, Z: 9.1},
		{X: 100.5, Y: -0.25, Z: 3.75},
	} {
		c := p.At(pt)
		assert.GreaterOrEqual(t, c.R, 0.0)
		assert.LessOrEqual(t, c.R, 1.0)
		assert.Equal(t, c.R, c.G)
		assert.Equal(t, c.R, c.B)
	}
}

func TestUVCheckerPattern(t *testing.T) {
	p, err := NewUVCheckerPattern(16, 8, Black(), White(), mathpkg.Identity())
	require.NoError(t, err)

	tests := []struct {
		point    mathpkg.Point
		expected Color
	}{
		{point: mathpkg.NewPoint(0.4315, 0.4670, 0.7719), expected: White()},
		{point: mathpkg.NewPoint(-0.9654, 0.2552, -0.0534), expected: Black()},
		{point: mathpkg.NewPoint(0.1039, 0.7090, 0.6975), expected: White()},
		{point: mathpkg.NewPoint(-0.4986, -0.7856, -0.3663), expected: Black()},
		{point: mathpkg.NewPoint(-0.0317, -0.9395, 0.3411), expected: Black()},
		{point: mathpkg.NewPoint(0.4809, -0.7721, 0.4154), expected: Black()},
		{point: mathpkg.NewPoint(0.0285, -0.9612, -0.2745), expected: Black()},
		{point: mathpkg.NewPoint(-0.5734, -0.2162, -0.7903), expected: White()},
		{point: mathpkg.NewPoint(0.7688, -0.1470, 0.6223), expected: Black()},
		{point: mathpkg.NewPoint(-0.7652, 0.2175, 0.6060), expected: Black()},
	}
	for _, tt := range tests {
		assert.True(t, p.At(tt.point).Eq(tt.expected),
			"At(%v) = %v, want %v", tt.point, p.At(tt.point), tt.expected)
	}
}

func TestSphericalMap(t *testing.T) {
	sqrt2div2 := math.Sqrt2 / 2

	tests := []struct {
		point mathpkg.Point
		u, v  float64
	}{
		{point: mathpkg.NewPoint(0, 0, -1), u: 0, v: 0.5},
		{point: mathpkg.NewPoint(1, 0, 0), u: 0.25, v: 0.5},
		{point: mathpkg.NewPoint(0, 0, 1), u: 0.5, v: 0.5},
		{point: mathpkg.NewPoint(-1, 0, 0), u: 0.75, v: 0.5},
		{point: mathpkg.NewPoint(0, 1, 0), u: 0.5, v: 1},
		{point: mathpkg.NewPoint(0, -1, 0), u: 0.5, v: 0},
		{point: mathpkg.NewPoint(sqrt2div2, sqrt2div2, 0), u: 0.25, v: 0.75},
	}
	for _, tt := range tests {
		u, v := sphericalMap(tt.point)
		assert.InDelta(t, tt.u, u, 1e-9)
		assert.InDelta(t, tt.v, v, 1e-9)
	}
}
