package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewDefaultScene creates a diffuse sphere resting on a large ground sphere
func NewDefaultScene() *Scene {
	cameraConfig := renderer.CameraConfig{
		LookFrom: core.NewVec3(0, 0, 0),
		LookAt:   core.NewVec3(0, 0, -1),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     90,
	}

	s := New("default", cameraConfig, 200, 100)
	s.Description = "Lambertian sphere on a ground sphere"

	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.8, 0.3, 0.3)))
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))

	return s
}
