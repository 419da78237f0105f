package material

import (
	mathpkg "github.com/tobyv/go-whitted-raytracer/pkg/math"
)

// LightKind identifies the light source variant
type LightKind int

const (
	LightPoint LightKind = iota
	LightArea
)

// Light is a light source in the scene: either a point light or a
// rectangular area light. An area light is subdivided into a uSteps by
// vSteps grid of cells and shading samples the center of every cell, so soft
// shadows stay deterministic across renders.
type Light struct {
	kind      LightKind
	position  mathpkg.Point
	intensity Color

	corner mathpkg.Point
	uVec   mathpkg.Vector
	vVec   mathpkg.Vector
	uSteps int
	vSteps int
}

// NewPointLight creates a light source at a single point
func NewPointLight(position mathpkg.Point, intensity Color) Light {
	return Light{
		kind:      LightPoint,
		position:  position,
		intensity: intensity,
		uSteps:    1,
		vSteps:    1,
	}
}

// NewAreaLight creates a rectangular light spanning u and v from corner,
// sampled on a uSteps by vSteps grid. Its position is the rectangle center.
func NewAreaLight(corner mathpkg.Point, u mathpkg.Vector, uSteps int, v mathpkg.Vector, vSteps int, intensity Color) Light {
	uCell := u.Multiply(1 / float64(uSteps))
	vCell := v.Multiply(1 / float64(vSteps))

	return Light{
		kind:      LightArea,
		position:  corner.Add(u.Multiply(0.5)).Add(v.Multiply(0.5)),
		intensity: intensity,
		corner:    corner,
		uVec:      uCell,
		vVec:      vCell,
		uSteps:    uSteps,
		vSteps:    vSteps,
	}
}

// Kind returns the light variant
func (l Light) Kind() LightKind {
	return l.kind
}

// Position returns the point the light shines from. For an area light this
// is the center of the rectangle.
func (l Light) Position() mathpkg.Point {
	return l.position
}

// Intensity returns the light color
func (l Light) Intensity() Color {
	return l.intensity
}

// USteps returns the number of sample columns
func (l Light) USteps() int {
	return l.uSteps
}

// VSteps returns the number of sample rows
func (l Light) VSteps() int {
	return l.vSteps
}

// Samples returns the total number of shading samples the light contributes
func (l Light) Samples() int {
	return l.uSteps * l.vSteps
}

// PointOn returns the sample position for grid cell (u, v). A point light
// has a single cell and always returns its position.
func (l Light) PointOn(u, v int) mathpkg.Point {
	if l.kind == LightPoint {
		return l.position
	}
	return l.corner.
		Add(l.uVec.Multiply(float64(u) + 0.5)).
		Add(l.vVec.Multiply(float64(v) + 0.5))
}
