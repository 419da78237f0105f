package scene

// Default returns the built-in demo scene rendered when no scene file is
// given: a checkered floor, a large glass sphere flanked by a matte and a
// mirrored one, and a single light from the upper left.
func Default() *Description {
	f := func(v float64) *float64 { return &v }

	return &Description{
		Render: RenderSettings{
			Width:    800,
			Height:   600,
			FOV:      60,
			MaxDepth: 5,
		},
		Camera: CameraDef{
			From: [3]float64{0, 1.5, -5},
			To:   [3]float64{0, 1, 0},
			Up:   [3]float64{0, 1, 0},
		},
		Background: [3]float64{0.05, 0.05, 0.08},
		Lights: []LightDef{
			{Position: [3]float64{-10, 10, -10}, Intensity: [3]float64{1, 1, 1}},
		},
		Objects: []ObjectDef{
			{
				Type: "plane",
				Name: "floor",
				Material: &MaterialDef{
					Pattern: &PatternDef{
						Type: "checker",
						A:    [3]float64{0.85, 0.85, 0.85},
						B:    [3]float64{0.25, 0.25, 0.25},
					},
					Specular:   f(0.1),
					Reflective: f(0.08),
				},
			},
			{
				Type: "sphere",
				Name: "glass ball",
				Transform: []TransformDef{
					{Op: "translate", Values: []float64{0, 1, 0}},
				},
				Material: &MaterialDef{
					Color:           &[3]float64{0.02, 0.02, 0.02},
					Ambient:         f(0.01),
					Diffuse:         f(0.05),
					Specular:        f(1),
					Shininess:       f(300),
					Reflective:      f(0.9),
					Transparency:    f(0.9),
					RefractiveIndex: f(1.5),
				},
			},
			{
				Type: "sphere",
				Name: "matte ball",
				Transform: []TransformDef{
					{Op: "scale", Values: []float64{0.6, 0.6, 0.6}},
					{Op: "translate", Values: []float64{-1.8, 0.6, 0.8}},
				},
				Material: &MaterialDef{
					Color:    &[3]float64{0.8, 0.25, 0.2},
					Specular: f(0.3),
				},
			},
			{
				Type: "sphere",
				Name: "mirror ball",
				Transform: []TransformDef{
					{Op: "scale", Values: []float64{0.7, 0.7, 0.7}},
					{Op: "translate", Values: []float64{1.9, 0.7, 1.2}},
				},
				Material: &MaterialDef{
					Color:      &[3]float64{0.1, 0.1, 0.12},
					Diffuse:    f(0.3),
					Specular:   f(1),
					Shininess:  f(250),
					Reflective: f(0.75),
				},
			},
		},
	}
}
