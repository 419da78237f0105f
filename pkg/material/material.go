package material

import (
	"math"

	mathpkg "github.com/tobyv/go-whitted-raytracer/pkg/math"
)

// Material represents the Phong reflectance parameters of a surface plus an
// optional procedural pattern. When Pattern is nil the flat Color is used.
type Material struct {
	Color           Color
	Pattern         *Pattern
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
}

// Default returns the standard matte white material
func Default() Material {
	return Material{
		Color:           White(),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		RefractiveIndex: 1.0,
	}
}

// Glass returns a transparent reflective material with the refractive index
// of glass
func Glass() Material {
	m := Default()
	m.Transparency = 1.0
	m.Reflective = 0.9
	m.RefractiveIndex = 1.5
	return m
}

// ColorAt returns the material color at a point given in object space
func (m Material) ColorAt(objectPoint mathpkg.Point) Color {
	if m.Pattern != nil {
		return m.Pattern.At(objectPoint)
	}
	return m.Color
}

// Lighting evaluates the Phong model for a single light. The surface color
// must already be resolved (flat color or pattern at the shaded point).
// intensity is the fraction of the light reaching the point, 0 to 1; a fully
// shadowed point receives only the ambient term. Diffuse and specular are
// averaged over the light's sample points, which for a point light reduces
// to the single-sample Phong form.
func (m Material) Lighting(light Light, point mathpkg.Point, eye, normal mathpkg.Vector, surface Color, intensity float64) Color {
	effective := surface.Multiply(light.Intensity())

	ambient := effective.Scale(m.Ambient)

	if intensity == 0 {
		return ambient
	}

	sum := Black()
	for v := 0; v < light.VSteps(); v++ {
		for u := 0; u < light.USteps(); u++ {
			lightVector := light.PointOn(u, v).Sub(point).Normalize()
			lightDotNormal := lightVector.Dot(normal)
			if lightDotNormal < 0 {
				// Light is on the other side of the surface
				continue
			}

			sum = sum.Add(effective.Scale(m.Diffuse * lightDotNormal))

			reflectVector := lightVector.Negate().Reflect(normal)
			reflectDotEye := reflectVector.Dot(eye)
			if reflectDotEye > 0 {
				factor := math.Pow(reflectDotEye, m.Shininess)
				sum = sum.Add(light.Intensity().Scale(m.Specular * factor))
			}
		}
	}

	averaged := sum.Scale(intensity / float64(light.Samples()))
	return ambient.Add(averaged)
}
