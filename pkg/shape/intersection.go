package shape

import "sort"

// Intersection represents a single ray-shape hit at parameter T. U and V
// carry the barycentric surface coordinates for triangle hits and are zero
// for every other shape.
type Intersection struct {
	T     float64
	Shape *Shape
	U, V  float64
}

// Intersections is a collection of hits along one ray. It is not kept sorted
// at insertion; the nearest positive hit is found by a linear scan.
type Intersections []Intersection

// Hit returns the intersection with the smallest positive t value. The t > 0
// filter also discards NaN values, so the scan never has to order them.
func (xs Intersections) Hit() (Intersection, bool) {
	found := false
	var nearest Intersection

	for _, x := range xs {
		if x.T > 0 && (!found || x.T < nearest.T) {
			nearest = x
			found = true
		}
	}

	return nearest, found
}

// Sort orders the intersections by ascending t value
func (xs Intersections) Sort() {
	sort.Slice(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}
