package shape

import (
	"fmt"

	"github.com/tobyv/go-whitted-raytracer/pkg/material"
	mathpkg "github.com/tobyv/go-whitted-raytracer/pkg/math"
)

// Kind identifies the shape variant
type Kind int

const (
	KindSphere Kind = iota
	KindPlane
	KindCube
	KindCylinder
	KindCone
	KindTriangle
	KindGroup
	KindCSG
)

// Shape is a tagged variant over every renderable shape. The shared fields
// (transform, precomputed inverse and inverse-transpose, material, cached
// bounding box) live here; the per-variant payload fields are only valid for
// their kind. Intersection and normal logic dispatch by exhaustive switch so
// the world-to-object plumbing exists exactly once.
//
// Ownership is strictly tree shaped: children never point back at parents.
// Group transforms are pushed down into children at construction, which
// makes shapes immutable once built.
type Shape struct {
	kind             Kind
	transform        mathpkg.Matrix
	inverse          mathpkg.Matrix
	inverseTranspose mathpkg.Matrix
	material         material.Material
	bounds           AABB

	// cylinder and cone extent
	minimum, maximum float64
	closed           bool

	// triangle
	p1, p2, p3 mathpkg.Point
	e1, e2     mathpkg.Vector
	normal     mathpkg.Vector
	n1, n2, n3 mathpkg.Vector
	smooth     bool

	// group
	children []*Shape

	// csg
	operation   Operation
	left, right *Shape
}

// newShape builds the shared base for a primitive. The transform inverse is
// computed once here; storing it is what keeps per-ray work cheap, so a
// singular transform is rejected at construction rather than discovered
// mid-render.
func newShape(kind Kind, transform mathpkg.Matrix, m material.Material) (*Shape, error) {
	inverse, err := transform.Inverse()
	if err != nil {
		return nil, fmt.Errorf("shape transform: %w", err)
	}

	return &Shape{
		kind:             kind,
		transform:        transform,
		inverse:          inverse,
		inverseTranspose: inverse.Transpose(),
		material:         m,
	}, nil
}

// Kind returns the shape variant tag
func (s *Shape) Kind() Kind {
	return s.kind
}

// Transform returns the shape's transform matrix
func (s *Shape) Transform() mathpkg.Matrix {
	return s.transform
}

// Material returns the shape's material
func (s *Shape) Material() material.Material {
	return s.material
}

// Bounds returns the cached parent-space bounding box computed at
// construction time
func (s *Shape) Bounds() AABB {
	return s.bounds
}

// Children returns a group's child shapes (nil for other kinds)
func (s *Shape) Children() []*Shape {
	return s.children
}

// Intersect tests the ray against this shape and returns every hit, in no
// particular order. Composite shapes test their cached bounding box first
// and skip the whole subtree on a miss.
func (s *Shape) Intersect(ray mathpkg.Ray) Intersections {
	switch s.kind {
	case KindGroup:
		return s.groupIntersect(ray)
	case KindCSG:
		return s.csgIntersect(ray)
	default:
		local := ray.Transform(s.inverse)
		return s.localIntersect(local)
	}
}

// localIntersect dispatches object-space intersection by variant
func (s *Shape) localIntersect(ray mathpkg.Ray) Intersections {
	switch s.kind {
	case KindSphere:
		return s.sphereIntersect(ray)
	case KindPlane:
		return s.planeIntersect(ray)
	case KindCube:
		return s.cubeIntersect(ray)
	case KindCylinder:
		return s.cylinderIntersect(ray)
	case KindCone:
		return s.coneIntersect(ray)
	case KindTriangle:
		return s.triangleIntersect(ray)
	}
	return nil
}

// NormalAt returns the world-space surface normal at a world-space point.
// The hit is needed for smooth triangles, whose normal interpolates the
// vertex normals by the hit's barycentric coordinates.
func (s *Shape) NormalAt(worldPoint mathpkg.Point, hit Intersection) mathpkg.Vector {
	localPoint := s.inverse.MultiplyPoint(worldPoint)
	localNormal := s.localNormal(localPoint, hit)
	worldNormal := s.inverseTranspose.MultiplyVector(localNormal)
	return worldNormal.Normalize()
}

// localNormal dispatches object-space normal computation by variant.
// Groups and CSG nodes never produce hits themselves, only their leaf
// primitives do, so they have no normal of their own.
func (s *Shape) localNormal(point mathpkg.Point, hit Intersection) mathpkg.Vector {
	switch s.kind {
	case KindSphere:
		return s.sphereNormal(point)
	case KindPlane:
		return s.planeNormal(point)
	case KindCube:
		return s.cubeNormal(point)
	case KindCylinder:
		return s.cylinderNormal(point)
	case KindCone:
		return s.coneNormal(point)
	case KindTriangle:
		return s.triangleNormal(point, hit)
	}
	return mathpkg.NewVector(0, 0, 0)
}

// ColorAt resolves the material color at a world-space point, carrying the
// point into object space for pattern evaluation
func (s *Shape) ColorAt(worldPoint mathpkg.Point) material.Color {
	objectPoint := s.inverse.MultiplyPoint(worldPoint)
	return s.material.ColorAt(objectPoint)
}

// Includes reports whether other is this shape or a descendant of it.
// CSG filtering uses this to decide which side of the tree a hit belongs to.
func (s *Shape) Includes(other *Shape) bool {
	switch s.kind {
	case KindGroup:
		for _, child := range s.children {
			if child.Includes(other) {
				return true
			}
		}
		return false
	case KindCSG:
		return s.left.Includes(other) || s.right.Includes(other)
	default:
		return s == other
	}
}

// applyTransform pushes a parent transform down into this shape. For
// primitives the transform composes into the shape's own; groups and CSG
// nodes forward it to their descendants and keep identity themselves.
// Bounding boxes are recomputed bottom-up on the way back.
func (s *Shape) applyTransform(t mathpkg.Matrix) error {
	switch s.kind {
	case KindGroup:
		bounds := EmptyAABB()
		for _, child := range s.children {
			if err := child.applyTransform(t); err != nil {
				return err
			}
			bounds = bounds.Union(child.bounds)
		}
		s.bounds = bounds
		return nil
	case KindCSG:
		if err := s.left.applyTransform(t); err != nil {
			return err
		}
		if err := s.right.applyTransform(t); err != nil {
			return err
		}
		s.bounds = s.left.bounds.Union(s.right.bounds)
		return nil
	default:
		s.transform = t.Multiply(s.transform)
		inverse, err := s.transform.Inverse()
		if err != nil {
			return fmt.Errorf("pushed-down transform: %w", err)
		}
		s.inverse = inverse
		s.inverseTranspose = inverse.Transpose()
		s.bounds = s.localBounds().Transform(s.transform)
		return nil
	}
}

// localBounds returns the object-space bounding box of a primitive
func (s *Shape) localBounds() AABB {
	switch s.kind {
	case KindSphere, KindCube:
		return NewAABB(mathpkg.NewPoint(-1, -1, -1), mathpkg.NewPoint(1, 1, 1))
	case KindPlane:
		return s.planeBounds()
	case KindCylinder:
		return s.cylinderBounds()
	case KindCone:
		return s.coneBounds()
	case KindTriangle:
		return s.triangleBounds()
	}
	return EmptyAABB()
}
