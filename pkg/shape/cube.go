package shape

import (
	"math"

	"github.com/tobyv/go-whitted-raytracer/pkg/material"
	mathpkg "github.com/tobyv/go-whitted-raytracer/pkg/math"
)

// NewCube creates an axis-aligned cube spanning -1..1 on each axis,
// positioned by the given transform
func NewCube(transform mathpkg.Matrix, m material.Material) (*Shape, error) {
	s, err := newShape(KindCube, transform, m)
	if err != nil {
		return nil, err
	}
	s.bounds = s.localBounds().Transform(transform)
	return s, nil
}

// cubeIntersect runs the slab method over the three axis pairs, producing
// either no hits or an entry and exit t
func (s *Shape) cubeIntersect(ray mathpkg.Ray) Intersections {
	xtMin, xtMax, ok := checkAxis(ray.Origin.X, ray.Direction.X)
	if !ok {
		return nil
	}
	ytMin, ytMax, ok := checkAxis(ray.Origin.Y, ray.Direction.Y)
	if !ok {
		return nil
	}
	ztMin, ztMax, ok := checkAxis(ray.Origin.Z, ray.Direction.Z)
	if !ok {
		return nil
	}

	tMin := math.Max(xtMin, math.Max(ytMin, ztMin))
	tMax := math.Min(xtMax, math.Min(ytMax, ztMax))

	if tMin > tMax {
		return nil
	}

	return Intersections{
		{T: tMin, Shape: s},
		{T: tMax, Shape: s},
	}
}

// checkAxis intersects the ray with the -1..1 slab on a single axis. A ray
// parallel to the slab passes unconstrained if its origin is inside it.
func checkAxis(origin, direction float64) (tMin, tMax float64, ok bool) {
	if math.Abs(direction) < mathpkg.Epsilon {
		if origin < -1 || origin > 1 {
			return 0, 0, false
		}
		return math.Inf(-1), math.Inf(1), true
	}

	tMin = (-1 - origin) / direction
	tMax = (1 - origin) / direction
	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax, true
}

// cubeNormal selects the face normal from whichever component of the hit
// point has the largest magnitude
func (s *Shape) cubeNormal(point mathpkg.Point) mathpkg.Vector {
	absX := math.Abs(point.X)
	absY := math.Abs(point.Y)
	absZ := math.Abs(point.Z)

	if absX >= absY && absX >= absZ {
		return mathpkg.NewVector(point.X, 0, 0)
	}
	if absY >= absZ {
		return mathpkg.NewVector(0, point.Y, 0)
	}
	return mathpkg.NewVector(0, 0, point.Z)
}
