package shape

import (
	"math"

	mathpkg "github.com/tobyv/go-whitted-raytracer/pkg/math"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mathpkg.Point // Minimum corner
	Max mathpkg.Point // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max mathpkg.Point) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns an inverted box that unions correctly with anything
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: mathpkg.NewPoint(inf, inf, inf),
		Max: mathpkg.NewPoint(-inf, -inf, -inf),
	}
}

// AddPoint returns the box grown to contain the given point
func (a AABB) AddPoint(p mathpkg.Point) AABB {
	return AABB{
		Min: mathpkg.NewPoint(math.Min(a.Min.X, p.X), math.Min(a.Min.Y, p.Y), math.Min(a.Min.Z, p.Z)),
		Max: mathpkg.NewPoint(math.Max(a.Max.X, p.X), math.Max(a.Max.Y, p.Y), math.Max(a.Max.Z, p.Z)),
	}
}

// Union returns an AABB that bounds both this AABB and another
func (a AABB) Union(other AABB) AABB {
	return a.AddPoint(other.Min).AddPoint(other.Max)
}

// Center returns the center point of the AABB
func (a AABB) Center() mathpkg.Point {
	return mathpkg.NewPoint(
		(a.Min.X+a.Max.X)/2,
		(a.Min.Y+a.Max.Y)/2,
		(a.Min.Z+a.Max.Z)/2,
	)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent
func (a AABB) LongestAxis() int {
	sx := a.Max.X - a.Min.X
	sy := a.Max.Y - a.Min.Y
	sz := a.Max.Z - a.Min.Z
	if sx > sy && sx > sz {
		return 0
	}
	if sy > sz {
		return 1
	}
	return 2
}

// IsInfinite reports whether the box extends without bound on any axis
func (a AABB) IsInfinite() bool {
	return math.IsInf(a.Min.X, 0) || math.IsInf(a.Min.Y, 0) || math.IsInf(a.Min.Z, 0) ||
		math.IsInf(a.Max.X, 0) || math.IsInf(a.Max.Y, 0) || math.IsInf(a.Max.Z, 0)
}

// Transform returns the box enclosing all eight transformed corners. An
// unbounded box stays unbounded; multiplying infinite corners through a
// rotation would produce NaNs, so it is widened to cover everything instead.
func (a AABB) Transform(m mathpkg.Matrix) AABB {
	if a.IsInfinite() {
		inf := math.Inf(1)
		return AABB{
			Min: mathpkg.NewPoint(-inf, -inf, -inf),
			Max: mathpkg.NewPoint(inf, inf, inf),
		}
	}

	corners := [8]mathpkg.Point{
		a.Min,
		mathpkg.NewPoint(a.Min.X, a.Min.Y, a.Max.Z),
		mathpkg.NewPoint(a.Min.X, a.Max.Y, a.Min.Z),
		mathpkg.NewPoint(a.Min.X, a.Max.Y, a.Max.Z),
		mathpkg.NewPoint(a.Max.X, a.Min.Y, a.Min.Z),
		mathpkg.NewPoint(a.Max.X, a.Min.Y, a.Max.Z),
		mathpkg.NewPoint(a.Max.X, a.Max.Y, a.Min.Z),
		a.Max,
	}

	result := EmptyAABB()
	for _, corner := range corners {
		result = result.AddPoint(m.MultiplyPoint(corner))
	}
	return result
}

// IntersectedBy tests whether a ray hits this AABB using the slab method.
// Boxes entirely behind the ray origin do not count as hit.
func (a AABB) IntersectedBy(ray mathpkg.Ray) bool {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		var min, max, origin, direction float64

		switch axis {
		case 0:
			min, max = a.Min.X, a.Max.X
			origin, direction = ray.Origin.X, ray.Direction.X
		case 1:
			min, max = a.Min.Y, a.Max.Y
			origin, direction = ray.Origin.Y, ray.Direction.Y
		case 2:
			min, max = a.Min.Z, a.Max.Z
			origin, direction = ray.Origin.Z, ray.Direction.Z
		}

		// Ray parallel to this slab: hit only if the origin lies inside it
		if math.Abs(direction) < mathpkg.Epsilon {
			if origin < min || origin > max {
				return false
			}
			continue
		}

		t1 := (min - origin) / direction
		t2 := (max - origin) / direction
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)

		if tMin > tMax {
			return false
		}
	}

	return tMax >= 0
}
