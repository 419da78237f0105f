package shape

import (
	"github.com/tobyv/go-whitted-raytracer/pkg/material"
	mathpkg "github.com/tobyv/go-whitted-raytracer/pkg/math"
)

// NewTriangle creates a flat triangle from three vertices. The face normal
// and edge vectors are precomputed once.
func NewTriangle(p1, p2, p3 mathpkg.Point, transform mathpkg.Matrix, m material.Material) (*Shape, error) {
	s, err := newShape(KindTriangle, transform, m)
	if err != nil {
		return nil, err
	}
	s.p1, s.p2, s.p3 = p1, p2, p3
	s.e1 = p2.Sub(p1)
	s.e2 = p3.Sub(p1)
	s.normal = s.e2.Cross(s.e1).Normalize()
	s.bounds = s.localBounds().Transform(transform)
	return s, nil
}

// NewSmoothTriangle creates a triangle with per-vertex normals interpolated
// across the face by the barycentric coordinates of each hit
func NewSmoothTriangle(p1, p2, p3 mathpkg.Point, n1, n2, n3 mathpkg.Vector, transform mathpkg.Matrix, m material.Material) (*Shape, error) {
	s, err := NewTriangle(p1, p2, p3, transform, m)
	if err != nil {
		return nil, err
	}
	s.n1, s.n2, s.n3 = n1, n2, n3
	s.smooth = true
	return s, nil
}

// triangleIntersect runs the Moller-Trumbore algorithm. The hit carries the
// barycentric (u, v) coordinates for normal interpolation.
func (s *Shape) triangleIntersect(ray mathpkg.Ray) Intersections {
	dirCrossE2 := ray.Direction.Cross(s.e2)
	det := s.e1.Dot(dirCrossE2)

	// Ray parallel to the triangle plane
	if mathpkg.NearZero(det) {
		return nil
	}

	f := 1 / det
	p1ToOrigin := ray.Origin.Sub(s.p1)

	u := f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return nil
	}

	originCrossE1 := p1ToOrigin.Cross(s.e1)

	v := f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return nil
	}

	t := f * s.e2.Dot(originCrossE1)
	return Intersections{{T: t, Shape: s, U: u, V: v}}
}

func (s *Shape) triangleNormal(_ mathpkg.Point, hit Intersection) mathpkg.Vector {
	if s.smooth {
		return s.n2.Multiply(hit.U).
			Add(s.n3.Multiply(hit.V)).
			Add(s.n1.Multiply(1 - hit.U - hit.V))
	}
	return s.normal
}

func (s *Shape) triangleBounds() AABB {
	return EmptyAABB().AddPoint(s.p1).AddPoint(s.p2).AddPoint(s.p3)
}
