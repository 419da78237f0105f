package shape

import (
	"github.com/tobyv/go-whitted-raytracer/pkg/material"
	mathpkg "github.com/tobyv/go-whitted-raytracer/pkg/math"
)

// Operation identifies the boolean combination a CSG node applies to its
// two operands
type Operation int

const (
	OpUnion Operation = iota
	OpIntersection
	OpDifference
)

// NewCSG creates a constructive solid geometry node combining two shapes.
// Like groups, a CSG node holds no transform of its own; a transform meant
// for the whole node is pushed down into both operands.
func NewCSG(operation Operation, left, right *Shape) (*Shape, error) {
	s, err := newShape(KindCSG, mathpkg.Identity(), material.Default())
	if err != nil {
		return nil, err
	}
	s.operation = operation
	s.left = left
	s.right = right
	s.bounds = left.bounds.Union(right.bounds)
	return s, nil
}

// NewCSGTransformed creates a CSG node and pushes the given transform down
// into both operands
func NewCSGTransformed(operation Operation, left, right *Shape, transform mathpkg.Matrix) (*Shape, error) {
	s, err := NewCSG(operation, left, right)
	if err != nil {
		return nil, err
	}
	if err := s.applyTransform(transform); err != nil {
		return nil, err
	}
	return s, nil
}

// Left returns the CSG node's left operand
func (s *Shape) Left() *Shape {
	return s.left
}

// Right returns the CSG node's right operand
func (s *Shape) Right() *Shape {
	return s.right
}

// Operation returns the CSG node's boolean operation
func (s *Shape) Operation() Operation {
	return s.operation
}

// csgIntersect intersects both operands, merges and sorts their hits, then
// keeps only the hits on the surface of the combined solid
func (s *Shape) csgIntersect(ray mathpkg.Ray) Intersections {
	if !s.bounds.IntersectedBy(ray) {
		return nil
	}

	xs := s.left.Intersect(ray)
	xs = append(xs, s.right.Intersect(ray)...)
	if len(xs) == 0 {
		return nil
	}

	xs.Sort()
	return s.filterIntersections(xs)
}

// intersectionAllowed decides whether a boundary crossing is part of the
// combined solid's surface. leftHit says which operand the hit belongs to;
// inLeft and inRight say whether the ray is currently inside each operand,
// before this hit toggles the corresponding flag.
func intersectionAllowed(op Operation, leftHit, inLeft, inRight bool) bool {
	switch op {
	case OpUnion:
		return (leftHit && !inRight) || (!leftHit && !inLeft)
	case OpIntersection:
		return (leftHit && inRight) || (!leftHit && inLeft)
	case OpDifference:
		return (leftHit && !inRight) || (!leftHit && inLeft)
	}
	return false
}

// filterIntersections walks the sorted hits tracking which operands the ray
// is currently inside, keeping only the allowed crossings
func (s *Shape) filterIntersections(xs Intersections) Intersections {
	inLeft := false
	inRight := false

	var result Intersections
	for _, x := range xs {
		leftHit := s.left.Includes(x.Shape)

		if intersectionAllowed(s.operation, leftHit, inLeft, inRight) {
			result = append(result, x)
		}

		if leftHit {
			inLeft = !inLeft
		} else {
			inRight = !inRight
		}
	}

	return result
}
