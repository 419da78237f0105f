package shape

import (
	"math"

	"github.com/tobyv/go-whitted-raytracer/pkg/material"
	mathpkg "github.com/tobyv/go-whitted-raytracer/pkg/math"
)

// NewPlane creates the xz plane (y = 0), positioned by the given transform
func NewPlane(transform mathpkg.Matrix, m material.Material) (*Shape, error) {
	s, err := newShape(KindPlane, transform, m)
	if err != nil {
		return nil, err
	}
	s.bounds = s.localBounds().Transform(transform)
	return s, nil
}

// planeIntersect returns the single hit with the y = 0 plane, or nothing
// when the ray is parallel to it (y direction within epsilon of zero)
func (s *Shape) planeIntersect(ray mathpkg.Ray) Intersections {
	if math.Abs(ray.Direction.Y) < mathpkg.Epsilon {
		return nil
	}

	t := -ray.Origin.Y / ray.Direction.Y
	return Intersections{{T: t, Shape: s}}
}

func (s *Shape) planeNormal(mathpkg.Point) mathpkg.Vector {
	return mathpkg.NewVector(0, 1, 0)
}

func (s *Shape) planeBounds() AABB {
	inf := math.Inf(1)
	return NewAABB(
		mathpkg.NewPoint(-inf, 0, -inf),
		mathpkg.NewPoint(inf, 0, inf),
	)
}
