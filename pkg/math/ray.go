package math

// Ray represents a ray with an origin and direction. Rays are immutable;
// Transform returns a new ray.
type Ray struct {
	Origin    Point
	Direction Vector
}

// NewRay creates a new ray
func NewRay(origin Point, direction Vector) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray
func (r Ray) Position(t float64) Point {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform returns the ray transformed by a matrix. The direction is
// deliberately not renormalized so that t values keep their meaning in the
// transformed space.
func (r Ray) Transform(m Matrix) Ray {
	return Ray{
		Origin:    m.MultiplyPoint(r.Origin),
		Direction: m.MultiplyVector(r.Direction),
	}
}
