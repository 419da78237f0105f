package math

import (
	"math"
	"math/rand"
)

const (
	permutationTableSize = 256
	permutationTableMask = permutationTableSize - 1
)

// Improved Perlin noise over a seeded permutation table. The same seed
// always yields the same noise field.
type PerlinNoise struct {
	permutations [permutationTableSize * 2]uint8
}

// NewPerlinNoise builds a noise generator whose gradient permutation table
// is shuffled by the given seed.
func NewPerlinNoise(seed int64) *PerlinNoise {
	rng := rand.New(rand.NewSource(seed))

	n := &PerlinNoise{}
	for i := 0; i < permutationTableSize; i++ {
		n.permutations[i] = uint8(i)
	}
	for i := permutationTableSize - 1; i > 0; i-- {
		j := rng.Intn(i)
		n.permutations[i], n.permutations[j] = n.permutations[j], n.permutations[i]
	}
	for i := 0; i < permutationTableSize; i++ {
		n.permutations[i+permutationTableSize] = n.permutations[i]
	}
	return n
}

// Noise returns the noise value at the point, shifted into the range 0..1
func (n *PerlinNoise) Noise(point Point) float64 {
	return (n.NoiseSigned(point) + 1) / 2
}

// NoiseSigned returns the noise value at the point in the range -1..1
func (n *PerlinNoise) NoiseSigned(point Point) float64 {
	// Raw noise spans -sqrt(3)/2 to sqrt(3)/2
	const factor = 0.8660254037844386
	return n.rawNoise(point) / factor
}

func (n *PerlinNoise) rawNoise(point Point) float64 {
	x0 := int(math.Floor(point.X)) & permutationTableMask
	y0 := int(math.Floor(point.Y)) & permutationTableMask
	z0 := int(math.Floor(point.Z)) & permutationTableMask

	x1 := (x0 + 1) & permutationTableMask
	y1 := (y0 + 1) & permutationTableMask
	z1 := (z0 + 1) & permutationTableMask

	x := point.X - math.Floor(point.X)
	y := point.Y - math.Floor(point.Y)
	z := point.Z - math.Floor(point.Z)

	fx := fade(x)
	fy := fade(y)
	fz := fade(z)

	return lerp(
		lerp(
			lerp(
				gradient(n.hash(x0, y0, z0), x, y, z),
				gradient(n.hash(x1, y0, z0), x-1, y, z),
				fx,
			),
			lerp(
				gradient(n.hash(x0, y1, z0), x, y-1, z),
				gradient(n.hash(x1, y1, z0), x-1, y-1, z),
				fx,
			),
			fy,
		),
		lerp(
			lerp(
				gradient(n.hash(x0, y0, z1), x, y, z-1),
				gradient(n.hash(x1, y0, z1), x-1, y, z-1),
				fx,
			),
			lerp(
				gradient(n.hash(x0, y1, z1), x, y-1, z-1),
				gradient(n.hash(x1, y1, z1), x-1, y-1, z-1),
				fx,
			),
			fy,
		),
		fz,
	)
}

func (n *PerlinNoise) hash(x, y, z int) uint8 {
	return n.permutations[int(n.permutations[int(n.permutations[x])+y])+z]
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func fade(t float64) float64 {
	return ((6*t-15)*t + 10) * t * t * t
}

func gradient(hash uint8, x, y, z float64) float64 {
	switch hash & 15 {
	case 0, 12:
		return x + y
	case 1, 13:
		return -x + y
	case 2:
		return x - y
	case 3:
		return -x - y
	case 4:
		return x + z
	case 5:
		return -x + z
	case 6:
		return x - z
	case 7:
		return -x - z
	case 8:
		return y + z
	case 9, 14:
		return -y + z
	case 10:
		return y - z
	default:
		return -y - z
	}
}
