package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering.
// It never absorbs; the ray is either reflected or refracted.
func (d *Dielectric) Scatter(rayIn core.Ray, hit core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	// Clear glass absorbs nothing
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	// Determine if we're entering or exiting the material
	var outwardNormal core.Vec3
	var niOverNt, cosine float64
	dirDotNormal := rayIn.Direction.Dot(hit.Normal)
	if dirDotNormal > 0 {
		// Exiting: from glass to air
		outwardNormal = hit.Normal.Negate()
		niOverNt = d.RefractiveIndex
		cosine = d.RefractiveIndex * dirDotNormal / rayIn.Direction.Length()
	} else {
		// Entering: from air to glass
		outwardNormal = hit.Normal
		niOverNt = 1.0 / d.RefractiveIndex
		cosine = -dirDotNormal / rayIn.Direction.Length()
	}

	// Total internal reflection leaves the reflected direction in place
	direction := Reflect(rayIn.Direction, hit.Normal)
	if refracted, ok := Refract(rayIn.Direction, outwardNormal, niOverNt); ok {
		if sampler.Get1D() >= Schlick(cosine, d.RefractiveIndex) {
			direction = refracted
		}
	}

	return core.ScatterResult{
		Attenuation: attenuation,
		Scattered:   core.NewRay(hit.Point, direction),
	}, true
}
