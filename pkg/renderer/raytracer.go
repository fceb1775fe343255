package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/logging"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        integrator.DefaultMaxDepth,
	}
}

// RenderConfig describes the output image and how rows are scheduled
type RenderConfig struct {
	Width      int
	Height     int
	Seed       int64
	NumWorkers int // Values <= 0 render sequentially
}

// Validate checks that the configuration describes a renderable image
func (c RenderConfig) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, c.Width, c.Height)
	}
	return nil
}

func (c RenderConfig) workers() int {
	if c.NumWorkers <= 0 {
		return 1
	}
	return c.NumWorkers
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetBackground() integrator.Background
	GetWorld() core.Hittable
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene    Scene
	config   RenderConfig
	sampling SamplingConfig
	logger   core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, config RenderConfig) *Raytracer {
	return &Raytracer{
		scene:    scene,
		config:   config,
		sampling: DefaultSamplingConfig(),
		logger:   logging.New("renderer"),
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.sampling = config
}

// SetLogger replaces the logger used to report progress
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// rowSeed derives the sampler seed for a row from the render seed.
func rowSeed(seed int64, row int) int64 {
	return seed*1000003 + int64(row)
}

func (rt *Raytracer) validate() error {
	if err := rt.config.Validate(); err != nil {
		return err
	}
	if rt.sampling.SamplesPerPixel <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSamples, rt.sampling.SamplesPerPixel)
	}
	if rt.scene == nil || rt.scene.GetCamera() == nil {
		return ErrNoCamera
	}
	if rt.scene.GetWorld() == nil {
		return ErrNoWorld
	}
	return nil
}

// Render traces every pixel of the image and returns the averaged linear colors.
// The result depends only on the scene, the sampling config and the seed.
func (rt *Raytracer) Render(ctx context.Context) (*Image, RenderStats, error) {
	if err := rt.validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("while preparing render: %w", err)
	}

	pt := integrator.NewPathTracingIntegrator(rt.sampling.MaxDepth, rt.scene.GetBackground())
	img := NewImage(rt.config.Width, rt.config.Height)

	rt.logger.Infof(
		"rendering %dx%d at %d spp (max depth %d) with %d worker(s)",
		rt.config.Width, rt.config.Height, rt.sampling.SamplesPerPixel, rt.sampling.MaxDepth, rt.config.workers(),
	)

	start := time.Now()
	workerStats, err := rt.renderRows(ctx, img, pt)
	if err != nil {
		return nil, RenderStats{}, err
	}

	stats := RenderStats{
		TotalPixels:     rt.config.Width * rt.config.Height,
		TotalSamples:    rt.config.Width * rt.config.Height * rt.sampling.SamplesPerPixel,
		SamplesPerPixel: rt.sampling.SamplesPerPixel,
		Workers:         workerStats,
		RenderTime:      time.Since(start),
	}
	rt.logger.Infof("rendered %d samples in %s", stats.TotalSamples, stats.RenderTime)

	return img, stats, nil
}

// renderRow fills one image row (row 0 is the top of the image)
func (rt *Raytracer) renderRow(img *Image, y int, integ integrator.Integrator) {
	sampler := core.NewSeededSampler(rowSeed(rt.config.Seed, y))
	camera := rt.scene.GetCamera()
	world := rt.scene.GetWorld()

	width := float64(rt.config.Width)
	height := float64(rt.config.Height)
	ns := rt.sampling.SamplesPerPixel
	j := rt.config.Height - 1 - y

	pixels := img.Row(y)
	for i := range pixels {
		colorAccum := core.Vec3{X: 0, Y: 0, Z: 0}

		for sample := 0; sample < ns; sample++ {
			u := (float64(i) + sampler.Get1D()) / width
			v := (float64(j) + sampler.Get1D()) / height

			ray := camera.GetRay(u, v, sampler)
			colorAccum = colorAccum.Add(integ.RayColor(ray, world, sampler))
		}

		pixels[i] = colorAccum.Divide(float64(ns))
	}
}
