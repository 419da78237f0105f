package math

import "math"

// Translate returns a translation matrix
func Translate(x, y, z float64) Matrix {
	m := Identity()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// Scale returns a scaling matrix
func Scale(x, y, z float64) Matrix {
	m := Identity()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// RotateX returns a rotation matrix about the x axis by r radians
func RotateX(r float64) Matrix {
	sin, cos := math.Sincos(r)
	m := Identity()
	m[1][1] = cos
	m[1][2] = -sin
	m[2][1] = sin
	m[2][2] = cos
	return m
}

// RotateY returns a rotation matrix about the y axis by r radians
func RotateY(r float64) Matrix {
	sin, cos := math.Sincos(r)
	m := Identity()
	m[0][0] = cos
	m[0][2] = sin
	m[2][0] = -sin
	m[2][2] = cos
	return m
}

// RotateZ returns a rotation matrix about the z axis by r radians
func RotateZ(r float64) Matrix {
	sin, cos := math.Sincos(r)
	m := Identity()
	m[0][0] = cos
	m[0][1] = -sin
	m[1][0] = sin
	m[1][1] = cos
	return m
}

// Shear returns a shearing matrix where each component moves in proportion
// to the other two
func Shear(xy, xz, yx, yz, zx, zy float64) Matrix {
	m := Identity()
	m[0][1] = xy
	m[0][2] = xz
	m[1][0] = yx
	m[1][2] = yz
	m[2][0] = zx
	m[2][1] = zy
	return m
}

// ViewTransform returns the world-to-camera transform for an eye at from,
// looking at to, with up indicating which way is up
func ViewTransform(from, to Point, up Vector) Matrix {
	forward := to.Sub(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := Matrix{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}

	return orientation.Multiply(Translate(-from.X, -from.Y, -from.Z))
}
