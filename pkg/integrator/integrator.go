package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance arriving along ray from the given world
	RayColor(ray core.Ray, world core.Hittable, sampler core.Sampler) core.Vec3
}
