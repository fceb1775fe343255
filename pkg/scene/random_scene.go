package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// RandomSceneSeed seeds the generator used by the built-in random scene
const RandomSceneSeed = 42

// NewRandomScene creates the large field of small random spheres around three
// feature spheres. The layout is fully determined by seed.
func NewRandomScene(seed int64) *Scene {
	cameraConfig := renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		Aperture:      0.1,
		FocusDistance: 10,
	}

	s := New("random", cameraConfig, 300, 200)
	s.Description = "Many small random spheres around glass, diffuse and metal feature spheres"
	s.SamplingConfig.SamplesPerPixel = 50

	random := rand.New(rand.NewSource(seed))

	s.AddSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	// Keep small spheres clear of the large metal sphere
	clearance := core.NewVec3(4, 0.2, 0)
	glass := material.NewDielectric(1.5)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Subtract(clearance).Length() <= 0.9 {
				continue
			}

			var mat core.Material
			switch {
			case chooseMat < 0.8:
				albedo := core.NewVec3(
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
				)
				mat = material.NewLambertian(albedo)
			case chooseMat < 0.95:
				albedo := core.NewVec3(
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
				)
				mat = material.NewMetal(albedo, 0.5*random.Float64())
			default:
				mat = glass
			}
			s.AddSphere(center, 0.2, mat)
		}
	}

	s.AddSphere(core.NewVec3(0, 1, 0), 1.0, glass)
	s.AddSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	s.AddSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0))

	return s
}
