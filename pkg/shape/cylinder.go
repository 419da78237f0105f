package shape

import (
	"math"

	"github.com/tobyv/go-whitted-raytracer/pkg/material"
	mathpkg "github.com/tobyv/go-whitted-raytracer/pkg/math"
)

// NewCylinder creates a radius-1 cylinder on the y axis truncated to
// minimum < y < maximum. A closed cylinder is capped on both ends. Pass
// infinities for an unbounded cylinder.
func NewCylinder(minimum, maximum float64, closed bool, transform mathpkg.Matrix, m material.Material) (*Shape, error) {
	s, err := newShape(KindCylinder, transform, m)
	if err != nil {
		return nil, err
	}
	s.minimum = minimum
	s.maximum = maximum
	s.closed = closed
	s.bounds = s.localBounds().Transform(transform)
	return s, nil
}

// cylinderIntersect solves the quadratic in x and z for the side walls,
// then adds cap hits for closed cylinders. A ray parallel to the y axis
// (quadratic coefficient near zero) can only hit the caps.
func (s *Shape) cylinderIntersect(ray mathpkg.Ray) Intersections {
	var xs Intersections

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z

	if mathpkg.NearZero(a) {
		return s.cylinderIntersectCaps(ray, xs)
	}

	b := 2 * (ray.Origin.X*ray.Direction.X + ray.Origin.Z*ray.Direction.Z)
	c := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)

	y0 := ray.Origin.Y + t0*ray.Direction.Y
	if s.minimum < y0 && y0 < s.maximum {
		xs = append(xs, Intersection{T: t0, Shape: s})
	}

	y1 := ray.Origin.Y + t1*ray.Direction.Y
	if s.minimum < y1 && y1 < s.maximum {
		xs = append(xs, Intersection{T: t1, Shape: s})
	}

	return s.cylinderIntersectCaps(ray, xs)
}

func (s *Shape) cylinderIntersectCaps(ray mathpkg.Ray, xs Intersections) Intersections {
	if !s.closed || mathpkg.NearZero(ray.Direction.Y) {
		return xs
	}

	checkCap := func(t float64) bool {
		x := ray.Origin.X + t*ray.Direction.X
		z := ray.Origin.Z + t*ray.Direction.Z
		return x*x+z*z <= 1
	}

	t := (s.minimum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(t) {
		xs = append(xs, Intersection{T: t, Shape: s})
	}

	t = (s.maximum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(t) {
		xs = append(xs, Intersection{T: t, Shape: s})
	}

	return xs
}

func (s *Shape) cylinderNormal(point mathpkg.Point) mathpkg.Vector {
	distance := point.X*point.X + point.Z*point.Z

	if distance < 1 && point.Y >= s.maximum-mathpkg.Epsilon {
		return mathpkg.NewVector(0, 1, 0)
	}
	if distance < 1 && point.Y <= s.minimum+mathpkg.Epsilon {
		return mathpkg.NewVector(0, -1, 0)
	}

	return mathpkg.NewVector(point.X, 0, point.Z)
}

func (s *Shape) cylinderBounds() AABB {
	return NewAABB(
		mathpkg.NewPoint(-1, s.minimum, -1),
		mathpkg.NewPoint(1, s.maximum, 1),
	)
}
