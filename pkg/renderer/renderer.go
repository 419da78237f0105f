package renderer

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/tobyv/go-whitted-raytracer/pkg/material"
	"github.com/tobyv/go-whitted-raytracer/pkg/world"
)

// Config controls one render pass
type Config struct {
	// MaxDepth bounds the reflection/refraction recursion
	MaxDepth int
	// Workers is the number of parallel render goroutines; zero or less
	// means one per CPU
	Workers int
	// Samples is the number of rays per pixel. One ray goes through the
	// pixel center; additional rays are jittered inside the pixel.
	Samples int
	// Seed drives the jitter sequence. Every pixel derives its own
	// generator from the seed and its coordinates, so output is identical
	// for any worker count.
	Seed int64
}

// DefaultConfig returns the renderer defaults
func DefaultConfig() Config {
	return Config{
		MaxDepth: 5,
		Workers:  0,
		Samples:  1,
		Seed:     42,
	}
}

// Progress reports how far a render has advanced
type Progress struct {
	RowsDone  int
	TotalRows int
}

// Renderer renders a world through a camera onto a canvas using a pool of
// row workers
type Renderer struct {
	config Config
}

// NewRenderer creates a renderer with the given configuration, filling in
// defaults for unset fields.
func NewRenderer(config Config) *Renderer {
	if config.MaxDepth <= 0 {
		config.MaxDepth = 5
	}
	if config.Samples <= 0 {
		config.Samples = 1
	}
	return &Renderer{config: config}
}

// Render traces every pixel of the camera's canvas, distributing rows
// across the worker pool. onProgress, if non-nil, is called after each
// completed row; calls are serialized but not ordered by row.
func (r *Renderer) Render(w *world.World, camera *Camera, onProgress func(Progress)) *Canvas {
	canvas := NewCanvas(camera.HSize(), camera.VSize())

	numWorkers := r.config.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	rows := make(chan int, camera.VSize())
	for y := 0; y < camera.VSize(); y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	var progressMu sync.Mutex
	rowsDone := 0

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				r.renderRow(w, camera, canvas, y)

				if onProgress != nil {
					progressMu.Lock()
					rowsDone++
					onProgress(Progress{RowsDone: rowsDone, TotalRows: camera.VSize()})
					progressMu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	return canvas
}

func (r *Renderer) renderRow(w *world.World, camera *Camera, canvas *Canvas, y int) {
	for x := 0; x < camera.HSize(); x++ {
		canvas.Set(x, y, r.renderPixel(w, camera, x, y))
	}
}

// renderPixel shades one pixel, averaging jittered samples when more than
// one is requested. A panic while shading (a degenerate scene can produce
// one deep in the math) is confined to the pixel, which falls back to the
// background color.
func (r *Renderer) renderPixel(w *world.World, camera *Camera, x, y int) (result material.Color) {
	defer func() {
		if recover() != nil {
			result = w.Background
		}
	}()

	color := w.ColorAt(camera.RayForPixel(x, y), r.config.MaxDepth)
	if r.config.Samples <= 1 {
		return color
	}

	// Jitter sequence depends only on the seed and the pixel coordinates,
	// never on which worker runs the pixel
	rng := rand.New(rand.NewSource(r.config.Seed + int64(y)*int64(camera.HSize()) + int64(x)))
	for s := 1; s < r.config.Samples; s++ {
		ray := camera.RayForPixelOffset(x, y, rng.Float64(), rng.Float64())
		color = color.Add(w.ColorAt(ray, r.config.MaxDepth))
	}
	return color.Scale(1 / float64(r.config.Samples))
}
