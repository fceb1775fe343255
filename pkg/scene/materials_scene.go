package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewMaterialsScene shows the three materials side by side, viewed through a
// narrow lens with defocus blur
func NewMaterialsScene() *Scene {
	lookFrom := core.NewVec3(3, 3, 2)
	lookAt := core.NewVec3(0, 0, -1)

	cameraConfig := renderer.CameraConfig{
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		Aperture:      2.0,
		FocusDistance: lookFrom.Subtract(lookAt).Length(),
	}

	s := New("materials", cameraConfig, 200, 100)
	s.Description = "Diffuse, fuzzy metal and hollow glass spheres with depth of field"

	glass := material.NewDielectric(1.5)

	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))
	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3))

	// Hollow glass bubble: the inner sphere has a negative radius so its normals point inward
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.5, glass)
	s.AddSphere(core.NewVec3(-1, 0, -1), -0.45, glass)

	return s
}
