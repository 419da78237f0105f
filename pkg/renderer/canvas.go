package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/tobyv/go-whitted-raytracer/pkg/material"
)

// Canvas is the render target: a dense grid of linear float colors. Values
// are kept unclamped until export so accumulation never loses energy.
type Canvas struct {
	width  int
	height int
	pixels []material.Color
}

// NewCanvas creates a black canvas of the given size
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]material.Color, width*height),
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels
func (c *Canvas) Height() int { return c.height }

// At returns the color of the pixel at (x, y)
func (c *Canvas) At(x, y int) material.Color {
	return c.pixels[y*c.width+x]
}

// Set writes the color of the pixel at (x, y)
func (c *Canvas) Set(x, y int, col material.Color) {
	c.pixels[y*c.width+x] = col
}

// ToRGBA converts the canvas to an 8-bit image, clamping each channel to
// [0, 1] and rounding to the nearest level.
func (c *Canvas) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.At(x, y).Clamp()
			img.Set(x, y, color.RGBA{
				R: uint8(math.Round(p.R * 255)),
				G: uint8(math.Round(p.G * 255)),
				B: uint8(math.Round(p.B * 255)),
				A: 255,
			})
		}
	}
	return img
}
