package renderer

import (
	"fmt"
	"math"

	mathpkg "github.com/tobyv/go-whitted-raytracer/pkg/math"
)

// Camera maps pixel coordinates onto rays through a canvas one unit in front
// of the eye. The transform is the world-to-camera view matrix; rays are
// generated with its inverse.
type Camera struct {
	hsize, vsize int
	fov          float64
	transform    mathpkg.Matrix
	inverse      mathpkg.Matrix

	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera for a hsize x vsize image with the given field
// of view in radians. The half extents are derived so the wider image
// dimension always spans the full field of view.
func NewCamera(hsize, vsize int, fov float64, transform mathpkg.Matrix) (*Camera, error) {
	if hsize <= 0 || vsize <= 0 {
		return nil, fmt.Errorf("camera size %dx%d: dimensions must be positive", hsize, vsize)
	}

	inverse, err := transform.Inverse()
	if err != nil {
		return nil, fmt.Errorf("camera transform: %w", err)
	}

	halfView := math.Tan(fov / 2)
	aspect := float64(hsize) / float64(vsize)

	c := &Camera{
		hsize:     hsize,
		vsize:     vsize,
		fov:       fov,
		transform: transform,
		inverse:   inverse,
	}
	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = c.halfWidth * 2 / float64(hsize)

	return c, nil
}

// HSize returns the horizontal resolution in pixels
func (c *Camera) HSize() int { return c.hsize }

// VSize returns the vertical resolution in pixels
func (c *Camera) VSize() int { return c.vsize }

// PixelSize returns the world-space width of one pixel on the canvas
func (c *Camera) PixelSize() float64 { return c.pixelSize }

// Transform returns the camera's view transform
func (c *Camera) Transform() mathpkg.Matrix { return c.transform }

// RayForPixel returns the ray through the center of the given pixel
func (c *Camera) RayForPixel(px, py int) mathpkg.Ray {
	return c.RayForPixelOffset(px, py, 0.5, 0.5)
}

// RayForPixelOffset returns the ray through the pixel at a fractional offset
// within it, with (0.5, 0.5) being the center. Offsets other than the center
// are used for jittered anti-aliasing samples.
func (c *Camera) RayForPixelOffset(px, py int, dx, dy float64) mathpkg.Ray {
	xOffset := (float64(px) + dx) * c.pixelSize
	yOffset := (float64(py) + dy) * c.pixelSize

	// Canvas x grows left-to-right but camera space x grows the other way,
	// because the canvas sits at z = -1 of an untransformed camera.
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.inverse.MultiplyPoint(mathpkg.NewPoint(worldX, worldY, -1))
	origin := c.inverse.MultiplyPoint(mathpkg.Origin())
	direction := pixel.Sub(origin).Normalize()

	return mathpkg.NewRay(origin, direction)
}
