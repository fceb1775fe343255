package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DefaultMaxDepth is the bounce limit used when none is configured
const DefaultMaxDepth = 50

// ShadowEpsilon is the minimum t accepted for every ray, so a scattered ray
// does not re-hit the surface it leaves
const ShadowEpsilon = 0.001

// Background is a vertical gradient seen by rays that escape the scene
type Background struct {
	Top    core.Vec3 // Color looking straight up
	Bottom core.Vec3 // Color looking straight down
}

// DefaultBackground returns the white to sky-blue gradient
func DefaultBackground() Background {
	return Background{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Color returns the background color for a ray direction
func (b Background) Color(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)
	return b.Bottom.Lerp(b.Top, t)
}

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	MaxDepth   int
	Background Background
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int, background Background) *PathTracingIntegrator {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &PathTracingIntegrator{
		MaxDepth:   maxDepth,
		Background: background,
	}
}

// RayColor computes the color for a single camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world core.Hittable, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, world, sampler, 0)
}

// rayColor returns the radiance along r after depth bounces
func (pt *PathTracingIntegrator) rayColor(r core.Ray, world core.Hittable, sampler core.Sampler, depth int) core.Vec3 {
	hit, isHit := world.Hit(r, ShadowEpsilon, math.Inf(1))
	if !isHit {
		return pt.Background.Color(r)
	}

	// Past the bounce limit no more light is gathered
	if depth >= pt.MaxDepth {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, sampler)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	// Attenuation compounds along the path
	return scatter.Attenuation.MultiplyVec(pt.rayColor(scatter.Scattered, world, sampler, depth+1))
}
