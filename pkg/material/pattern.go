package material

import (
	"math"

	mathpkg "github.com/tobyv/go-whitted-raytracer/pkg/math"
)

// PatternKind identifies the procedural pattern variant
type PatternKind int

const (
	PatternSolid PatternKind = iota
	PatternStripe
	PatternGradient
	PatternRadialGradient
	PatternRing
	PatternChecker
	PatternBlend
	PatternPerlin
	PatternUVChecker
)

// Pattern maps an object-space point to a color. Every pattern owns its own
// transform whose precomputed inverse carries the point from object space to
// pattern space before evaluation. The Blend variant averages two nested
// patterns, each evaluated through its own transform.
type Pattern struct {
	kind          PatternKind
	transform     mathpkg.Matrix
	inverse       mathpkg.Matrix
	a, b          Color
	subA, subB    *Pattern
	noise         *mathpkg.PerlinNoise
	scale         float64
	width, height int
}

func newPattern(kind PatternKind, transform mathpkg.Matrix) (*Pattern, error) {
	inverse, err := transform.Inverse()
	if err != nil {
		return nil, err
	}
	return &Pattern{kind: kind, transform: transform, inverse: inverse}, nil
}

// NewSolidPattern creates a pattern that is the same color everywhere
func NewSolidPattern(c Color) *Pattern {
	p, _ := newPattern(PatternSolid, mathpkg.Identity())
	p.a = c
	return p
}

// NewStripePattern creates a pattern alternating two colors along the x axis
func NewStripePattern(a, b Color, transform mathpkg.Matrix) (*Pattern, error) {
	p, err := newPattern(PatternStripe, transform)
	if err != nil {
		return nil, err
	}
	p.a, p.b = a, b
	return p, nil
}

// NewGradientPattern creates a pattern blending linearly from a to b along
// the x axis
func NewGradientPattern(a, b Color, transform mathpkg.Matrix) (*Pattern, error) {
	p, err := newPattern(PatternGradient, transform)
	if err != nil {
		return nil, err
	}
	p.a, p.b = a, b
	return p, nil
}

// NewRadialGradientPattern creates a pattern blending from a to b with
// radial distance from the y axis, repeating every unit
func NewRadialGradientPattern(a, b Color, transform mathpkg.Matrix) (*Pattern, error) {
	p, err := newPattern(PatternRadialGradient, transform)
	if err != nil {
		return nil, err
	}
	p.a, p.b = a, b
	return p, nil
}

// NewRingPattern creates a pattern of concentric rings in the xz plane
func NewRingPattern(a, b Color, transform mathpkg.Matrix) (*Pattern, error) {
	p, err := newPattern(PatternRing, transform)
	if err != nil {
		return nil, err
	}
	p.a, p.b = a, b
	return p, nil
}

// NewCheckerPattern creates a 3D checkerboard pattern
func NewCheckerPattern(a, b Color, transform mathpkg.Matrix) (*Pattern, error) {
	p, err := newPattern(PatternChecker, transform)
	if err != nil {
		return nil, err
	}
	p.a, p.b = a, b
	return p, nil
}

// NewBlendPattern creates a pattern averaging two nested patterns
func NewBlendPattern(a, b *Pattern, transform mathpkg.Matrix) (*Pattern, error) {
	p, err := newPattern(PatternBlend, transform)
	if err != nil {
		return nil, err
	}
	p.subA, p.subB = a, b
	return p, nil
}

// NewPerlinPattern creates a pattern scaling the color by Perlin noise
// sampled at scale times the pattern-space point. The seed fixes the noise
// field so renders stay reproducible.
func NewPerlinPattern(c Color, scale float64, seed int64, transform mathpkg.Matrix) (*Pattern, error) {
	p, err := newPattern(PatternPerlin, transform)
	if err != nil {
		return nil, err
	}
	p.a = c
	p.scale = scale
	p.noise = mathpkg.NewPerlinNoise(seed)
	return p, nil
}

// NewUVCheckerPattern creates a checkerboard in texture space, mapped onto
// the unit sphere with a spherical mapping. width and height count the
// squares along u and v.
func NewUVCheckerPattern(width, height int, a, b Color, transform mathpkg.Matrix) (*Pattern, error) {
	p, err := newPattern(PatternUVChecker, transform)
	if err != nil {
		return nil, err
	}
	p.a, p.b = a, b
	p.width, p.height = width, height
	return p, nil
}

// Transform returns the pattern's transform matrix
func (p *Pattern) Transform() mathpkg.Matrix {
	return p.transform
}

// At returns the pattern color at a point given in object space
func (p *Pattern) At(objectPoint mathpkg.Point) Color {
	point := p.inverse.MultiplyPoint(objectPoint)

	switch p.kind {
	case PatternSolid:
		return p.a
	case PatternStripe:
		if int(math.Floor(point.X))%2 == 0 {
			return p.a
		}
		return p.b
	case PatternGradient:
		fraction := point.X - math.Floor(point.X)
		return p.a.Add(p.b.Sub(p.a).Scale(fraction))
	case PatternRadialGradient:
		distance := math.Hypot(point.X, point.Z)
		fraction := distance - math.Floor(distance)
		return p.a.Add(p.b.Sub(p.a).Scale(fraction))
	case PatternRing:
		distance := math.Sqrt(point.X*point.X + point.Z*point.Z)
		if int(math.Floor(distance))%2 == 0 {
			return p.a
		}
		return p.b
	case PatternChecker:
		sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
		if int(sum)%2 == 0 {
			return p.a
		}
		return p.b
	case PatternBlend:
		return p.subA.At(point).Add(p.subB.At(point)).Scale(0.5)
	case PatternPerlin:
		scaled := mathpkg.NewPoint(point.X*p.scale, point.Y*p.scale, point.Z*p.scale)
		return p.a.Scale(p.noise.Noise(scaled))
	case PatternUVChecker:
		u, v := sphericalMap(point)
		if (int(math.Floor(u*float64(p.width)))+int(math.Floor(v*float64(p.height))))%2 == 0 {
			return p.a
		}
		return p.b
	}

	return Black()
}

// sphericalMap projects a point onto the unit sphere and returns its
// texture coordinates, both in 0..1. u wraps around the y axis starting at
// -z; v runs from the south pole to the north pole.
func sphericalMap(point mathpkg.Point) (u, v float64) {
	theta := math.Atan2(point.X, point.Z)
	radius := math.Sqrt(point.X*point.X + point.Y*point.Y + point.Z*point.Z)
	phi := math.Acos(point.Y / radius)

	rawU := theta / (2 * math.Pi)
	u = 1 - (rawU + 0.5)
	v = 1 - phi/math.Pi
	return u, v
}
