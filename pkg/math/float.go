package math

import "math"

// Epsilon is the absolute tolerance used when comparing a value against zero.
// Quadratic coefficients, ray direction components and barycentric edge cases
// all compare against zero with this tolerance.
const Epsilon = 1e-6

// NearZero reports whether a is within Epsilon of zero.
func NearZero(a float64) bool {
	return math.Abs(a) < Epsilon
}

// Eq reports whether two floats are approximately equal. Values close to zero
// are compared with an absolute tolerance, everything else with a relative
// difference. The two tolerances are deliberately distinct: the absolute
// check catches tiny numerators and the relative check scales with magnitude.
func Eq(a, b float64) bool {
	diff := math.Abs(a - b)
	if diff < Epsilon {
		return true
	}
	return diff < Epsilon*math.Max(math.Abs(a), math.Abs(b))
}
