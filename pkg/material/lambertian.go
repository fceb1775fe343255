package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	// Aim at a random point in the unit sphere tangent to the surface at the hit point
	target := hit.Point.Add(hit.Normal).Add(core.RandomInUnitSphere(sampler))
	scattered := core.NewRay(hit.Point, target.Subtract(hit.Point))

	return core.ScatterResult{
		Attenuation: l.Albedo,
		Scattered:   scattered,
	}, true
}
