package math

import "math"

// Vector represents a direction or displacement in 3D space
type Vector struct {
	X, Y, Z float64
}

// NewVector creates a new Vector
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns the difference of two vectors
func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vector) Multiply(scalar float64) Vector {
	return Vector{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Negate returns the vector pointing the opposite way
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Length returns the magnitude of the vector
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dot returns the dot product of two vectors
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Normalize returns a unit vector in the same direction
func (v Vector) Normalize() Vector {
	length := v.Length()
	if length == 0 {
		return Vector{}
	}
	return Vector{v.X / length, v.Y / length, v.Z / length}
}

// Reflect returns the vector reflected about a normal
func (v Vector) Reflect(normal Vector) Vector {
	return v.Sub(normal.Multiply(2 * v.Dot(normal)))
}

// Eq reports whether two vectors are approximately equal
func (v Vector) Eq(other Vector) bool {
	return Eq(v.X, other.X) && Eq(v.Y, other.Y) && Eq(v.Z, other.Z)
}
