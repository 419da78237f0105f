// Package scene builds worlds and cameras from declarative TOML scene
// descriptions.
package scene

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/tobyv/go-whitted-raytracer/pkg/loaders"
	"github.com/tobyv/go-whitted-raytracer/pkg/material"
	mathpkg "github.com/tobyv/go-whitted-raytracer/pkg/math"
	"github.com/tobyv/go-whitted-raytracer/pkg/renderer"
	"github.com/tobyv/go-whitted-raytracer/pkg/shape"
	"github.com/tobyv/go-whitted-raytracer/pkg/world"
)

// ErrInvalidScene tags every scene validation failure
var ErrInvalidScene = errors.New("invalid scene definition")

// Description is a complete declarative scene: render settings, camera,
// lights and the object tree.
type Description struct {
	Render     RenderSettings `toml:"render"`
	Camera     CameraDef      `toml:"camera"`
	Background [3]float64     `toml:"background"`
	Lights     []LightDef     `toml:"lights"`
	Objects    []ObjectDef    `toml:"objects"`
}

// RenderSettings carries the image and renderer configuration. Zero values
// fall back to defaults in Build.
type RenderSettings struct {
	Width          int     `toml:"width"`
	Height         int     `toml:"height"`
	FOV            float64 `toml:"fov"` // degrees
	MaxDepth       int     `toml:"max_depth"`
	Workers        int     `toml:"workers"`
	Samples        int     `toml:"samples"`
	Seed           int64   `toml:"seed"`
	SplitThreshold int     `toml:"split_threshold"`
}

// CameraDef positions the camera with a from/to/up triple
type CameraDef struct {
	From [3]float64 `toml:"from"`
	To   [3]float64 `toml:"to"`
	Up   [3]float64 `toml:"up"`
}

// LightDef is a light source. Type defaults to "point"; an "area" light
// spans u and v from corner and is sampled on a u_steps by v_steps grid.
type LightDef struct {
	Type      string     `toml:"type"`
	Position  [3]float64 `toml:"position"`
	Intensity [3]float64 `toml:"intensity"`

	Corner [3]float64 `toml:"corner"`
	U      [3]float64 `toml:"u"`
	V      [3]float64 `toml:"v"`
	USteps int        `toml:"u_steps"`
	VSteps int        `toml:"v_steps"`
}

// ObjectDef describes one shape. Type selects the variant; the remaining
// fields apply to the variants that use them.
type ObjectDef struct {
	Type      string         `toml:"type"`
	Name      string         `toml:"name"`
	Transform []TransformDef `toml:"transform"`
	Material  *MaterialDef   `toml:"material"`

	// cylinder and cone
	Min    *float64 `toml:"min"`
	Max    *float64 `toml:"max"`
	Closed bool     `toml:"closed"`

	// group
	Children []ObjectDef `toml:"children"`

	// csg
	Operation string     `toml:"operation"`
	Left      *ObjectDef `toml:"left"`
	Right     *ObjectDef `toml:"right"`

	// obj mesh
	File string `toml:"file"`
}

// TransformDef is one transform step. Steps are applied in the order
// listed: the first step acts on the shape first. Rotation angles are in
// degrees.
type TransformDef struct {
	Op     string    `toml:"op"`
	Values []float64 `toml:"values"`
}

// MaterialDef overrides fields of the default material. Nil fields keep
// their defaults.
type MaterialDef struct {
	Color           *[3]float64 `toml:"color"`
	Pattern         *PatternDef `toml:"pattern"`
	Ambient         *float64    `toml:"ambient"`
	Diffuse         *float64    `toml:"diffuse"`
	Specular        *float64    `toml:"specular"`
	Shininess       *float64    `toml:"shininess"`
	Reflective      *float64    `toml:"reflective"`
	Transparency    *float64    `toml:"transparency"`
	RefractiveIndex *float64    `toml:"refractive_index"`
}

// PatternDef describes a procedural pattern. Blend patterns nest two
// sub-patterns instead of two colors.
type PatternDef struct {
	Type      string         `toml:"type"`
	A         [3]float64     `toml:"a"`
	B         [3]float64     `toml:"b"`
	SubA      *PatternDef    `toml:"sub_a"`
	SubB      *PatternDef    `toml:"sub_b"`
	Transform []TransformDef `toml:"transform"`

	// perlin
	Scale float64 `toml:"scale"`
	Seed  int64   `toml:"seed"`

	// uv-checker
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Load reads and parses a TOML scene file
func Load(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene file: %w", err)
	}

	desc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene file %s: %w", path, err)
	}
	return desc, nil
}

// Parse decodes a TOML scene description
func Parse(data []byte) (*Description, error) {
	var desc Description
	if err := toml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("decode TOML: %w", err)
	}
	return &desc, nil
}

// Build validates the description and constructs the world, camera and
// renderer configuration. Validation errors name the offending object and
// field.
func (d *Description) Build() (*world.World, *renderer.Camera, renderer.Config, error) {
	cfg := d.renderConfig()

	w := world.New()
	w.Background = toColor(d.Background)

	if len(d.Lights) == 0 {
		return nil, nil, cfg, fmt.Errorf("%w: scene has no lights", ErrInvalidScene)
	}
	for i, l := range d.Lights {
		light, err := buildLight(l)
		if err != nil {
			return nil, nil, cfg, fmt.Errorf("light %d: %w", i, err)
		}
		w.Lights = append(w.Lights, light)
	}

	threshold := d.Render.SplitThreshold
	if threshold == 0 {
		threshold = shape.DefaultSplitThreshold
	}
	for i, def := range d.Objects {
		s, err := buildObject(def, threshold)
		if err != nil {
			return nil, nil, cfg, fmt.Errorf("object %s: %w", objectName(def, i), err)
		}
		w.Objects = append(w.Objects, s)
	}

	width, height := d.Render.Width, d.Render.Height
	if width == 0 {
		width = 800
	}
	if height == 0 {
		height = 600
	}
	fov := d.Render.FOV
	if fov == 0 {
		fov = 60
	}

	view := mathpkg.ViewTransform(toPoint(d.Camera.From), toPoint(d.Camera.To), toVector(d.Camera.Up))
	cam, err := renderer.NewCamera(width, height, fov*math.Pi/180, view)
	if err != nil {
		return nil, nil, cfg, fmt.Errorf("camera: %w", err)
	}

	return w, cam, cfg, nil
}

func (d *Description) renderConfig() renderer.Config {
	cfg := renderer.DefaultConfig()
	if d.Render.MaxDepth > 0 {
		cfg.MaxDepth = d.Render.MaxDepth
	}
	if d.Render.Workers > 0 {
		cfg.Workers = d.Render.Workers
	}
	if d.Render.Samples > 0 {
		cfg.Samples = d.Render.Samples
	}
	if d.Render.Seed != 0 {
		cfg.Seed = d.Render.Seed
	}
	return cfg
}

func objectName(def ObjectDef, index int) string {
	if def.Name != "" {
		return fmt.Sprintf("%q", def.Name)
	}
	return fmt.Sprintf("#%d", index)
}

func buildObject(def ObjectDef, threshold int) (*shape.Shape, error) {
	transform, err := buildTransform(def.Transform)
	if err != nil {
		return nil, err
	}
	m, err := buildMaterial(def.Material)
	if err != nil {
		return nil, err
	}

	switch def.Type {
	case "sphere":
		return shape.NewSphere(transform, m)
	case "plane":
		return shape.NewPlane(transform, m)
	case "cube":
		return shape.NewCube(transform, m)
	case "cylinder", "cone":
		min, max := math.Inf(-1), math.Inf(1)
		if def.Min != nil {
			min = *def.Min
		}
		if def.Max != nil {
			max = *def.Max
		}
		if min >= max {
			return nil, fmt.Errorf("%w: field min: %v is not below max %v", ErrInvalidScene, min, max)
		}
		if def.Type == "cone" {
			return shape.NewCone(min, max, def.Closed, transform, m)
		}
		return shape.NewCylinder(min, max, def.Closed, transform, m)

	case "group":
		if len(def.Children) == 0 {
			return nil, fmt.Errorf("%w: field children: group is empty", ErrInvalidScene)
		}
		children := make([]*shape.Shape, 0, len(def.Children))
		for i, childDef := range def.Children {
			child, err := buildObject(childDef, threshold)
			if err != nil {
				return nil, fmt.Errorf("child %s: %w", objectName(childDef, i), err)
			}
			children = append(children, child)
		}
		return shape.NewGroupWithThreshold(transform, threshold, children)

	case "csg":
		op, err := csgOperation(def.Operation)
		if err != nil {
			return nil, err
		}
		if def.Left == nil || def.Right == nil {
			return nil, fmt.Errorf("%w: csg needs both left and right operands", ErrInvalidScene)
		}
		left, err := buildObject(*def.Left, threshold)
		if err != nil {
			return nil, fmt.Errorf("left operand: %w", err)
		}
		right, err := buildObject(*def.Right, threshold)
		if err != nil {
			return nil, fmt.Errorf("right operand: %w", err)
		}
		return shape.NewCSGTransformed(op, left, right, transform)

	case "obj":
		if def.File == "" {
			return nil, fmt.Errorf("%w: obj object needs a file", ErrInvalidScene)
		}
		data, err := loaders.LoadOBJ(def.File)
		if err != nil {
			return nil, err
		}
		return data.ToGroup(transform, m, threshold)

	case "":
		return nil, fmt.Errorf("%w: field type is required", ErrInvalidScene)
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidScene, def.Type)
	}
}

func csgOperation(name string) (shape.Operation, error) {
	switch name {
	case "union":
		return shape.OpUnion, nil
	case "intersection":
		return shape.OpIntersection, nil
	case "difference":
		return shape.OpDifference, nil
	default:
		return 0, fmt.Errorf("%w: unknown csg operation %q", ErrInvalidScene, name)
	}
}

// buildTransform composes the listed steps so that the first listed step is
// applied to the shape first
func buildTransform(defs []TransformDef) (mathpkg.Matrix, error) {
	result := mathpkg.Identity()
	for _, def := range defs {
		step, err := transformStep(def)
		if err != nil {
			return result, err
		}
		result = step.Multiply(result)
	}
	return result, nil
}

func transformStep(def TransformDef) (mathpkg.Matrix, error) {
	need := func(n int) error {
		if len(def.Values) != n {
			return fmt.Errorf("%w: transform %s: expected %d values, got %d",
				ErrInvalidScene, def.Op, n, len(def.Values))
		}
		return nil
	}

	switch def.Op {
	case "translate":
		if err := need(3); err != nil {
			return mathpkg.Identity(), err
		}
		return mathpkg.Translate(def.Values[0], def.Values[1], def.Values[2]), nil
	case "scale":
		if err := need(3); err != nil {
			return mathpkg.Identity(), err
		}
		return mathpkg.Scale(def.Values[0], def.Values[1], def.Values[2]), nil
	case "rotate-x":
		if err := need(1); err != nil {
			return mathpkg.Identity(), err
		}
		return mathpkg.RotateX(def.Values[0] * math.Pi / 180), nil
	case "rotate-y":
		if err := need(1); err != nil {
			return mathpkg.Identity(), err
		}
		return mathpkg.RotateY(def.Values[0] * math.Pi / 180), nil
	case "rotate-z":
		if err := need(1); err != nil {
			return mathpkg.Identity(), err
		}
		return mathpkg.RotateZ(def.Values[0] * math.Pi / 180), nil
	case "shear":
		if err := need(6); err != nil {
			return mathpkg.Identity(), err
		}
		v := def.Values
		return mathpkg.Shear(v[0], v[1], v[2], v[3], v[4], v[5]), nil
	default:
		return mathpkg.Identity(), fmt.Errorf("%w: unknown transform op %q", ErrInvalidScene, def.Op)
	}
}

func buildMaterial(def *MaterialDef) (material.Material, error) {
	m := material.Default()
	if def == nil {
		return m, nil
	}

	if def.Color != nil {
		m.Color = toColor(*def.Color)
	}
	if def.Pattern != nil {
		p, err := buildPattern(def.Pattern)
		if err != nil {
			return m, err
		}
		m.Pattern = p
	}
	if def.Ambient != nil {
		m.Ambient = *def.Ambient
	}
	if def.Diffuse != nil {
		m.Diffuse = *def.Diffuse
	}
	if def.Specular != nil {
		m.Specular = *def.Specular
	}
	if def.Shininess != nil {
		m.Shininess = *def.Shininess
	}
	if def.Reflective != nil {
		m.Reflective = *def.Reflective
	}
	if def.Transparency != nil {
		m.Transparency = *def.Transparency
	}
	if def.RefractiveIndex != nil {
		m.RefractiveIndex = *def.RefractiveIndex
	}
	return m, nil
}

func buildLight(def LightDef) (material.Light, error) {
	switch def.Type {
	case "", "point":
		return material.NewPointLight(toPoint(def.Position), toColor(def.Intensity)), nil
	case "area":
		if def.USteps < 1 || def.VSteps < 1 {
			return material.Light{}, fmt.Errorf("%w: area light needs u_steps and v_steps of at least 1", ErrInvalidScene)
		}
		return material.NewAreaLight(
			toPoint(def.Corner),
			toVector(def.U), def.USteps,
			toVector(def.V), def.VSteps,
			toColor(def.Intensity),
		), nil
	default:
		return material.Light{}, fmt.Errorf("%w: unknown light type %q", ErrInvalidScene, def.Type)
	}
}

func buildPattern(def *PatternDef) (*material.Pattern, error) {
	transform, err := buildTransform(def.Transform)
	if err != nil {
		return nil, err
	}
	a, b := toColor(def.A), toColor(def.B)

	switch def.Type {
	case "solid":
		return material.NewSolidPattern(a), nil
	case "stripe":
		return material.NewStripePattern(a, b, transform)
	case "gradient":
		return material.NewGradientPattern(a, b, transform)
	case "radial-gradient":
		return material.NewRadialGradientPattern(a, b, transform)
	case "ring":
		return material.NewRingPattern(a, b, transform)
	case "checker":
		return material.NewCheckerPattern(a, b, transform)
	case "blend":
		if def.SubA == nil || def.SubB == nil {
			return nil, fmt.Errorf("%w: blend pattern needs both sub_a and sub_b", ErrInvalidScene)
		}
		subA, err := buildPattern(def.SubA)
		if err != nil {
			return nil, err
		}
		subB, err := buildPattern(def.SubB)
		if err != nil {
			return nil, err
		}
		return material.NewBlendPattern(subA, subB, transform)
	case "perlin":
		scale := def.Scale
		if scale == 0 {
			scale = 1
		}
		return material.NewPerlinPattern(a, scale, def.Seed, transform)
	case "uv-checker":
		if def.Width < 1 || def.Height < 1 {
			return nil, fmt.Errorf("%w: uv-checker pattern needs width and height of at least 1", ErrInvalidScene)
		}
		return material.NewUVCheckerPattern(def.Width, def.Height, a, b, transform)
	default:
		return nil, fmt.Errorf("%w: unknown pattern type %q", ErrInvalidScene, def.Type)
	}
}

func toPoint(v [3]float64) mathpkg.Point {
	return mathpkg.NewPoint(v[0], v[1], v[2])
}

func toVector(v [3]float64) mathpkg.Vector {
	return mathpkg.NewVector(v[0], v[1], v[2])
}

func toColor(v [3]float64) material.Color {
	return material.Color{R: v[0], G: v[1], B: v[2]}
}
