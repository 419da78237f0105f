package world

import (
	"math"

	mathpkg "github.com/tobyv/go-whitted-raytracer/pkg/math"
	"github.com/tobyv/go-whitted-raytracer/pkg/shape"
)

// Computations holds everything shading needs about a single hit, derived
// once so the lighting, reflection and refraction paths all work from the
// same values.
type Computations struct {
	T     float64
	Shape *shape.Shape
	Point mathpkg.Point
	// OverPoint sits a hair above the surface along the normal and anchors
	// shadow and reflection rays so they cannot re-hit their own surface.
	// UnderPoint sits the same distance below and anchors refraction rays.
	OverPoint  mathpkg.Point
	UnderPoint mathpkg.Point
	Eye        mathpkg.Vector
	Normal     mathpkg.Vector
	Reflect    mathpkg.Vector
	Inside     bool
	// N1 and N2 are the refractive indices of the media the ray leaves and
	// enters at this hit.
	N1, N2 float64
}

// PrepareComputations derives the shading state for one hit. The full
// intersection list must be sorted by t; it is walked to reconstruct which
// objects contain the hit point, which determines N1 and N2.
func PrepareComputations(hit shape.Intersection, ray mathpkg.Ray, xs shape.Intersections) Computations {
	c := Computations{
		T:     hit.T,
		Shape: hit.Shape,
		Point: ray.Position(hit.T),
		Eye:   ray.Direction.Negate(),
		N1:    1.0,
		N2:    1.0,
	}

	c.Normal = hit.Shape.NormalAt(c.Point, hit)
	if c.Normal.Dot(c.Eye) < 0 {
		c.Inside = true
		c.Normal = c.Normal.Negate()
	}

	offset := c.Normal.Multiply(mathpkg.Epsilon)
	c.OverPoint = c.Point.Add(offset)
	c.UnderPoint = c.Point.Add(offset.Negate())
	c.Reflect = ray.Direction.Reflect(c.Normal)

	// Track the stack of objects the ray is currently inside of. The medium
	// before the hit is the innermost container when the hit is reached, and
	// the medium after is the innermost container once the hit object has
	// been toggled.
	var containers []*shape.Shape
	for _, x := range xs {
		if x == hit {
			if n := len(containers); n > 0 {
				c.N1 = containers[n-1].Material().RefractiveIndex
			}
		}

		found := -1
		for i, obj := range containers {
			if obj == x.Shape {
				found = i
				break
			}
		}
		if found >= 0 {
			containers = append(containers[:found], containers[found+1:]...)
		} else {
			containers = append(containers, x.Shape)
		}

		if x == hit {
			if n := len(containers); n > 0 {
				c.N2 = containers[n-1].Material().RefractiveIndex
			}
			break
		}
	}

	return c
}

// Schlick approximates the Fresnel reflectance at this hit: the fraction of
// light that reflects rather than refracts.
func (c Computations) Schlick() float64 {
	cos := c.Eye.Dot(c.Normal)

	if c.N1 > c.N2 {
		n := c.N1 / c.N2
		sin2T := n * n * (1.0 - cos*cos)
		if sin2T > 1.0 {
			return 1.0 // total internal reflection
		}
		cos = math.Sqrt(1.0 - sin2T)
	}

	r0 := (c.N1 - c.N2) / (c.N1 + c.N2)
	r0 *= r0
	return r0 + (1.0-r0)*math.Pow(1.0-cos, 5)
}
