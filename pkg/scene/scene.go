package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Description    string
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	World          *geometry.HittableList // Objects in the scene
	Background     integrator.Background
	Width          int // Recommended image width
	Height         int // Recommended image height
	SamplingConfig renderer.SamplingConfig
}

// New creates an empty scene with the default sky and sampling settings.
// The camera is built for the given image size; callers add objects to World.
func New(name string, cameraConfig renderer.CameraConfig, width, height int) *Scene {
	s := &Scene{
		Name:           name,
		CameraConfig:   cameraConfig,
		World:          geometry.NewHittableList(),
		Background:     integrator.DefaultBackground(),
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
	s.SetResolution(width, height)
	return s
}

// SetResolution changes the image size and rebuilds the camera to match its aspect ratio
func (s *Scene) SetResolution(width, height int) {
	s.Width = width
	s.Height = height
	if height > 0 {
		s.CameraConfig.AspectRatio = float64(width) / float64(height)
	}
	s.Camera = renderer.NewCamera(s.CameraConfig)
}

// AddSphere adds a sphere to the world
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat core.Material) {
	s.World.Add(geometry.NewSphere(center, radius, mat))
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetBackground returns the sky gradient seen by escaping rays
func (s *Scene) GetBackground() integrator.Background {
	return s.Background
}

// GetWorld returns the root of the scene graph
func (s *Scene) GetWorld() core.Hittable {
	if s.World == nil {
		return nil
	}
	return s.World
}
