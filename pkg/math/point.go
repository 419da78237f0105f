package math

// Point represents an affine position in 3D space. Points and vectors are
// distinct types: subtracting two points yields a vector, adding a vector to
// a point yields a point, and the operations that make no sense for positions
// (adding two points, scaling a point) simply do not exist.
type Point struct {
	X, Y, Z float64
}

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Origin returns the point at (0, 0, 0)
func Origin() Point {
	return Point{}
}

// Add returns the point displaced by a vector
func (p Point) Add(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the displacement vector from other to p
func (p Point) Sub(other Point) Vector {
	return Vector{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// SubVector returns the point displaced by the negation of a vector
func (p Point) SubVector(v Vector) Point {
	return Point{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Eq reports whether two points are approximately equal
func (p Point) Eq(other Point) bool {
	return Eq(p.X, other.X) && Eq(p.Y, other.Y) && Eq(p.Z, other.Z)
}
