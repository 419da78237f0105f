package math

import "errors"

// ErrSingularMatrix is returned when a non-invertible transform is inverted.
// A singular transform is a scene construction error, never something the
// renderer silently works around.
var ErrSingularMatrix = errors.New("matrix is singular and cannot be inverted")

// Matrix represents a 4x4 affine transform in row-major order
type Matrix [4][4]float64

// Identity returns the identity matrix
func Identity() Matrix {
	return Matrix{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns the matrix product m * other
func (m Matrix) Multiply(other Matrix) Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return result
}

// MultiplyPoint applies the transform to a point (homogeneous w = 1)
func (m Matrix) MultiplyPoint(p Point) Point {
	return Point{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3],
		Z: m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3],
	}
}

// MultiplyVector applies the transform to a vector (homogeneous w = 0),
// so translation has no effect
func (m Matrix) MultiplyVector(v Vector) Vector {
	return Vector{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Transpose returns the matrix with rows and columns swapped
func (m Matrix) Transpose() Matrix {
	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

// Determinant returns the determinant of the matrix
func (m Matrix) Determinant() float64 {
	det := 0.0
	for col := 0; col < 4; col++ {
		det += m[0][col] * m.cofactor(0, col)
	}
	return det
}

// Inverse returns the inverse of the matrix, or ErrSingularMatrix if the
// determinant is zero
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if NearZero(det) {
		return Matrix{}, ErrSingularMatrix
	}

	var result Matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// Transposed assignment folds the adjugate transpose into the loop
			result[col][row] = m.cofactor(row, col) / det
		}
	}
	return result, nil
}

// Eq reports whether two matrices are approximately equal
func (m Matrix) Eq(other Matrix) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !Eq(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}

// submatrix returns the 3x3 matrix left after removing the given row and column
func (m Matrix) submatrix(row, col int) [3][3]float64 {
	var sub [3][3]float64
	sr := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		sc := 0
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			sub[sr][sc] = m[r][c]
			sc++
		}
		sr++
	}
	return sub
}

// cofactor returns the signed 3x3 minor for the given row and column
func (m Matrix) cofactor(row, col int) float64 {
	minor := det3(m.submatrix(row, col))
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// det3 returns the determinant of a 3x3 matrix
func det3(m [3][3]float64) float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}
