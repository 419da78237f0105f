package material

import (
	mathpkg "github.com/tobyv/go-whitted-raytracer/pkg/math"
)

// Color represents an RGB color with unclamped float components. Values stay
// in linear 0.0-1.0 range by convention but intermediate shading results may
// exceed it; clamping happens at image-write time, not here.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black returns the zero color
func Black() Color {
	return Color{}
}

// White returns full-intensity white
func White() Color {
	return Color{1, 1, 1}
}

// Add returns the component-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Sub returns the component-wise difference of two colors
func (c Color) Sub(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Scale returns the color scaled by a scalar
func (c Color) Scale(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Multiply returns the Hadamard product of two colors
func (c Color) Multiply(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Clamp returns a color with components clamped to [0, 1]
func (c Color) Clamp() Color {
	return Color{
		R: max(0, min(1, c.R)),
		G: max(0, min(1, c.G)),
		B: max(0, min(1, c.B)),
	}
}

// Eq reports whether two colors are approximately equal
func (c Color) Eq(other Color) bool {
	return mathpkg.Eq(c.R, other.R) && mathpkg.Eq(c.G, other.G) && mathpkg.Eq(c.B, other.B)
}
