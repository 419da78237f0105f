package shape

import (
	"math"

	"github.com/tobyv/go-whitted-raytracer/pkg/material"
	mathpkg "github.com/tobyv/go-whitted-raytracer/pkg/math"
)

// NewCone creates a double-napped cone centered on the origin, opening along
// the y axis and truncated to minimum < y < maximum. A closed cone is capped
// on both ends.
func NewCone(minimum, maximum float64, closed bool, transform mathpkg.Matrix, m material.Material) (*Shape, error) {
	s, err := newShape(KindCone, transform, m)
	if err != nil {
		return nil, err
	}
	s.minimum = minimum
	s.maximum = maximum
	s.closed = closed
	s.bounds = s.localBounds().Transform(transform)
	return s, nil
}

// coneIntersect solves the cone quadratic. When the quadratic coefficient
// vanishes the ray is parallel to one half of the cone and the equation
// degenerates to a linear one with a single root.
func (s *Shape) coneIntersect(ray mathpkg.Ray) Intersections {
	var xs Intersections

	a := ray.Direction.X*ray.Direction.X - ray.Direction.Y*ray.Direction.Y + ray.Direction.Z*ray.Direction.Z
	b := 2 * (ray.Origin.X*ray.Direction.X - ray.Origin.Y*ray.Direction.Y + ray.Origin.Z*ray.Direction.Z)
	c := ray.Origin.X*ray.Origin.X - ray.Origin.Y*ray.Origin.Y + ray.Origin.Z*ray.Origin.Z

	if mathpkg.NearZero(a) {
		if !mathpkg.NearZero(b) {
			t := -c / (2 * b)
			y := ray.Origin.Y + t*ray.Direction.Y
			if s.minimum < y && y < s.maximum {
				xs = append(xs, Intersection{T: t, Shape: s})
			}
		}
		return s.coneIntersectCaps(ray, xs)
	}

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

	return s.coneIntersectCaps(ray, xs)
}

// coneIntersectCaps adds hits against the end caps. Unlike a cylinder the
// cap radius at y equals |y|.
func (s *Shape) coneIntersectCaps(ray mathpkg.Ray, xs Intersections) Intersections {
	if !s.closed || mathpkg.NearZero(ray.Direction.Y) {
		return xs
	}

	checkCap := func(t, radius float64) bool {
		x := ray.Origin.X + t*ray.Direction.X
		z := ray.Origin.Z + t*ray.Direction.Z
		return x*x+z*z <= radius*radius
	}

	t := (s.minimum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(t, s.minimum) {
		xs = append(xs, Intersection{T: t, Shape: s})
	}

	t = (s.maximum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(t, s.maximum) {
		xs = append(xs, Intersection{T: t, Shape: s})
	}

	return xs
}

func (s *Shape) coneNormal(point mathpkg.Point) mathpkg.Vector {
	distance := point.X*point.X + point.Z*point.Z

	if distance < 1 && point.Y >= s.maximum-mathpkg.Epsilon {
		return mathpkg.NewVector(0, 1, 0)
	}
	if distance < 1 && point.Y <= s.minimum+mathpkg.Epsilon {
		return mathpkg.NewVector(0, -1, 0)
	}

	y := math.Sqrt(distance)
	if point.Y > 0 {
		y = -y
	}
	return mathpkg.NewVector(point.X, y, point.Z)
}

func (s *Shape) coneBounds() AABB {
	radius := math.Max(math.Abs(s.minimum), math.Abs(s.maximum))
	return NewAABB(
		mathpkg.NewPoint(-radius, s.minimum, -radius),
		mathpkg.NewPoint(radius, s.maximum, radius),
	)
}
