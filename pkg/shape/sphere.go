package shape

import (
	"math"

	"github.com/tobyv/go-whitted-raytracer/pkg/material"
	mathpkg "github.com/tobyv/go-whitted-raytracer/pkg/math"
)

// NewSphere creates a unit sphere centered on the origin, positioned by the
// given transform
func NewSphere(transform mathpkg.Matrix, m material.Material) (*Shape, error) {
	s, err := newShape(KindSphere, transform, m)
	if err != nil {
		return nil, err
	}
	s.bounds = s.localBounds().Transform(transform)
	return s, nil
}

// NewGlassSphere creates a unit sphere with a glass material, positioned by
// the given transform
func NewGlassSphere(transform mathpkg.Matrix) (*Shape, error) {
	return NewSphere(transform, material.Glass())
}

// sphereIntersect solves the quadratic from the ray-unit-sphere equation.
// A tangent ray yields two equal roots.
func (s *Shape) sphereIntersect(ray mathpkg.Ray) Intersections {
	sphereToRay := ray.Origin.Sub(mathpkg.Origin())

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	return Intersections{
		{T: t1, Shape: s},
		{T: t2, Shape: s},
	}
}

func (s *Shape) sphereNormal(point mathpkg.Point) mathpkg.Vector {
	return point.Sub(mathpkg.Origin())
}
