package world

import (
	"math"

	"github.com/tobyv/go-whitted-raytracer/pkg/material"
	mathpkg "github.com/tobyv/go-whitted-raytracer/pkg/math"
	"github.com/tobyv/go-whitted-raytracer/pkg/shape"
)

// World is the complete scene: top-level objects, light sources and the
// background color returned for rays that hit nothing.
type World struct {
	Objects    []*shape.Shape
	Lights     []material.Light
	Background material.Color
}

// New creates an empty world with a black background
func New() *World {
	return &World{Background: material.Black()}
}

// Intersect collects the intersections of the ray with every object and
// returns them sorted by t. Sorting here is what lets the refraction code
// reconstruct which media the ray passes through.
func (w *World) Intersect(ray mathpkg.Ray) shape.Intersections {
	var xs shape.Intersections
	for _, obj := range w.Objects {
		xs = append(xs, obj.Intersect(ray)...)
	}
	xs.Sort()
	return xs
}

// ColorAt traces the ray into the scene and returns its color. remaining
// bounds the recursion through reflection and refraction; at zero the
// contribution is black.
func (w *World) ColorAt(ray mathpkg.Ray, remaining int) material.Color {
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return w.Background
	}

	comps := PrepareComputations(hit, ray, xs)
	return w.ShadeHit(comps, remaining)
}

// ShadeHit computes the color at a precomputed hit: the Phong contribution
// of every light plus one reflected and one refracted bounce. When the
// surface is both reflective and transparent, the two are blended by the
// Fresnel reflectance.
func (w *World) ShadeHit(comps Computations, remaining int) material.Color {
	m := comps.Shape.Material()
	surfaceColor := comps.Shape.ColorAt(comps.OverPoint)

	surface := material.Black()
	for _, light := range w.Lights {
		intensity := w.IntensityAt(light, comps.OverPoint)
		surface = surface.Add(m.Lighting(light, comps.OverPoint, comps.Eye, comps.Normal, surfaceColor, intensity))
	}

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := comps.Schlick()
		return surface.
			Add(reflected.Scale(reflectance)).
			Add(refracted.Scale(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// IntensityAt returns the fraction of the light that reaches the point. A
// point light contributes all or nothing; an area light contributes the
// fraction of its grid cells whose centers are unobstructed.
func (w *World) IntensityAt(light material.Light, point mathpkg.Point) float64 {
	if light.Kind() == material.LightPoint {
		if w.IsShadowed(point, light.Position()) {
			return 0
		}
		return 1
	}

	total := 0.0
	for v := 0; v < light.VSteps(); v++ {
		for u := 0; u < light.USteps(); u++ {
			if !w.IsShadowed(point, light.PointOn(u, v)) {
				total++
			}
		}
	}
	return total / float64(light.Samples())
}

// IsShadowed reports whether anything blocks the segment between the point
// and the light position
func (w *World) IsShadowed(point, lightPosition mathpkg.Point) bool {
	toLight := lightPosition.Sub(point)
	distance := toLight.Length()

	ray := mathpkg.NewRay(point, toLight.Normalize())
	hit, ok := w.Intersect(ray).Hit()
	return ok && hit.T < distance
}

// ReflectedColor traces the reflection bounce off a reflective surface
func (w *World) ReflectedColor(comps Computations, remaining int) material.Color {
	reflective := comps.Shape.Material().Reflective
	if remaining <= 0 || reflective == 0 {
		return material.Black()
	}

	ray := mathpkg.NewRay(comps.OverPoint, comps.Reflect)
	return w.ColorAt(ray, remaining-1).Scale(reflective)
}

// RefractedColor traces the ray transmitted through a transparent surface,
// bending it per Snell's law. Total internal reflection yields black here;
// the reflected branch carries that energy instead.
func (w *World) RefractedColor(comps Computations, remaining int) material.Color {
	transparency := comps.Shape.Material().Transparency
	if remaining <= 0 || transparency == 0 {
		return material.Black()
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.Eye.Dot(comps.Normal)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return material.Black()
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.Normal.Multiply(nRatio*cosI - cosT).
		Sub(comps.Eye.Multiply(nRatio))

	ray := mathpkg.NewRay(comps.UnderPoint, direction)
	return w.ColorAt(ray, remaining-1).Scale(transparency)
}
