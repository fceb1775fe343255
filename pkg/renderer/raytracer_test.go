package renderer

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{})   {}
func (nopLogger) Infof(string, ...interface{})    {}
func (nopLogger) Noticef(string, ...interface{})  {}
func (nopLogger) Warningf(string, ...interface{}) {}

// testScene is a minimal Scene for renderer tests
type testScene struct {
	camera     *Camera
	world      core.Hittable
	background integrator.Background
}

func (s *testScene) GetCamera() *Camera                   { return s.camera }
func (s *testScene) GetWorld() core.Hittable              { return s.world }
func (s *testScene) GetBackground() integrator.Background { return s.background }

func newTwoSphereScene(width, height int) *testScene {
	config := testCameraConfig()
	config.AspectRatio = float64(width) / float64(height)

	return &testScene{
		camera: NewCamera(config),
		world: geometry.NewHittableList(
			geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
			geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		),
		background: integrator.DefaultBackground(),
	}
}

func newTestRaytracer(scene Scene, config RenderConfig, spp int) *Raytracer {
	rt := NewRaytracer(scene, config)
	rt.SetSamplingConfig(SamplingConfig{SamplesPerPixel: spp, MaxDepth: 50})
	rt.SetLogger(nopLogger{})
	return rt
}

func renderPPM(t *testing.T, rt *Raytracer) []byte {
	t.Helper()
	img, _, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	var buf bytes.Buffer
	if err := WritePPM(&buf, img, 2); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}
	return buf.Bytes()
}

func TestDefaultSamplingConfig(t *testing.T) {
	config := DefaultSamplingConfig()
	if config.SamplesPerPixel != 100 {
		t.Errorf("Expected 100 samples per pixel, got %d", config.SamplesPerPixel)
	}
	if config.MaxDepth != 50 {
		t.Errorf("Expected max depth 50, got %d", config.MaxDepth)
	}
}

func TestRenderConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  RenderConfig
		wantErr bool
	}{
		{"valid", RenderConfig{Width: 4, Height: 2}, false},
		{"zero width", RenderConfig{Width: 0, Height: 2}, true},
		{"negative height", RenderConfig{Width: 4, Height: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("Expected ErrInvalidDimensions, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestRender_RejectsInvalidInput(t *testing.T) {
	scene := newTwoSphereScene(4, 2)

	tests := []struct {
		name     string
		scene    Scene
		config   RenderConfig
		spp      int
		expected error
	}{
		{"bad dimensions", scene, RenderConfig{Width: 0, Height: 2}, 1, ErrInvalidDimensions},
		{"no samples", scene, RenderConfig{Width: 4, Height: 2}, 0, ErrInvalidSamples},
		{"no camera", &testScene{world: scene.world}, RenderConfig{Width: 4, Height: 2}, 1, ErrNoCamera},
		{"no world", &testScene{camera: scene.camera}, RenderConfig{Width: 4, Height: 2}, 1, ErrNoWorld},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := newTestRaytracer(tt.scene, tt.config, tt.spp)
			_, _, err := rt.Render(context.Background())
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestRender_ImageLayout(t *testing.T) {
	// Empty world: every pixel is the background, brighter blue toward the top row
	scene := &testScene{
		camera:     NewCamera(testCameraConfig()),
		world:      geometry.NewHittableList(),
		background: integrator.DefaultBackground(),
	}
	rt := newTestRaytracer(scene, RenderConfig{Width: 8, Height: 4}, 4)

	img, stats, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if len(img.Pixels) != 32 {
		t.Fatalf("Expected 32 pixels, got %d", len(img.Pixels))
	}
	top := img.At(4, 0)
	bottom := img.At(4, 3)
	if top.X >= bottom.X {
		t.Errorf("Expected top row bluer than bottom row, got top=%v bottom=%v", top, bottom)
	}
	if stats.TotalPixels != 32 || stats.TotalSamples != 128 {
		t.Errorf("Expected 32 pixels and 128 samples, got %d and %d", stats.TotalPixels, stats.TotalSamples)
	}
}

func TestRender_Idempotent(t *testing.T) {
	scene := newTwoSphereScene(20, 10)
	config := RenderConfig{Width: 20, Height: 10, Seed: 42}

	first := renderPPM(t, newTestRaytracer(scene, config, 8))
	second := renderPPM(t, newTestRaytracer(scene, config, 8))

	if !bytes.Equal(first, second) {
		t.Error("Expected identical PPM output for identical inputs")
	}
}

func TestRender_SeedChangesOutput(t *testing.T) {
	scene := newTwoSphereScene(20, 10)

	a := renderPPM(t, newTestRaytracer(scene, RenderConfig{Width: 20, Height: 10, Seed: 1}, 4))
	b := renderPPM(t, newTestRaytracer(scene, RenderConfig{Width: 20, Height: 10, Seed: 2}, 4))

	if bytes.Equal(a, b) {
		t.Error("Expected different seeds to produce different noise")
	}
}

func TestRender_WorkerCountIndependent(t *testing.T) {
	scene := newTwoSphereScene(24, 12)

	sequential, _, err := newTestRaytracer(scene, RenderConfig{Width: 24, Height: 12, Seed: 42}, 4).Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for _, workers := range []int{2, 3, 8, 64} {
		rt := newTestRaytracer(scene, RenderConfig{Width: 24, Height: 12, Seed: 42, NumWorkers: workers}, 4)
		img, stats, err := rt.Render(context.Background())
		if err != nil {
			t.Fatalf("Render with %d workers failed: %v", workers, err)
		}

		if diff := cmp.Diff(sequential.Pixels, img.Pixels); diff != "" {
			t.Errorf("Pixels differ with %d workers (-sequential +parallel):\n%s", workers, diff)
		}

		rows := 0
		for _, ws := range stats.Workers {
			rows += ws.Rows
		}
		if rows != 12 {
			t.Errorf("Expected workers to render 12 rows in total, got %d", rows)
		}
	}
}

func TestRender_ConcurrentCalls(t *testing.T) {
	scene := newTwoSphereScene(20, 10)
	rt := newTestRaytracer(scene, RenderConfig{Width: 20, Height: 10, Seed: 42, NumWorkers: 2}, 4)

	want, _, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	images := make([]*Image, 4)
	errs := make([]error, len(images))
	var wg sync.WaitGroup
	for i := range images {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			images[i], _, errs[i] = rt.Render(context.Background())
		}(i)
	}
	wg.Wait()

	for i, img := range images {
		if errs[i] != nil {
			t.Fatalf("Render %d failed: %v", i, errs[i])
		}
		if diff := cmp.Diff(want.Pixels, img.Pixels); diff != "" {
			t.Errorf("Render %d differs (-want +got):\n%s", i, diff)
		}
	}
}

func TestRender_Cancelled(t *testing.T) {
	scene := newTwoSphereScene(20, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		rt := newTestRaytracer(scene, RenderConfig{Width: 20, Height: 10, NumWorkers: workers}, 2)
		_, _, err := rt.Render(ctx)
		if !errors.Is(err, ErrInterrupted) {
			t.Errorf("Expected ErrInterrupted with %d workers, got %v", workers, err)
		}
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected wrapped context.Canceled with %d workers, got %v", workers, err)
		}
	}
}

func TestRender_EndToEndDeterminism(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-size render in short mode")
	}

	scene := newTwoSphereScene(200, 100)
	config := RenderConfig{Width: 200, Height: 100, Seed: 42}

	first := renderPPM(t, newTestRaytracer(scene, config, 100))
	second := renderPPM(t, newTestRaytracer(scene, config, 100))

	if !bytes.HasPrefix(first, []byte("P3\n200 100\n255\n")) {
		t.Errorf("Expected PPM header for 200x100, got %q", first[:16])
	}
	if lines := bytes.Count(first, []byte("\n")); lines != 3+200*100 {
		t.Errorf("Expected %d lines, got %d", 3+200*100, lines)
	}
	if !bytes.Equal(first, second) {
		t.Error("Expected identical PPM output across runs")
	}
}
