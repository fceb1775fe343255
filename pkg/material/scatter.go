package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract bends v through a surface with unit normal n using Snell's law.
// niOverNt is the ratio of the incident to the transmitted refractive index.
// Returns false on total internal reflection.
func Refract(v, n core.Vec3, niOverNt float64) (core.Vec3, bool) {
	uv := v.Normalize()
	dt := uv.Dot(n)
	discriminant := 1.0 - niOverNt*niOverNt*(1-dt*dt)
	if discriminant <= 0 {
		return core.Vec3{}, false
	}

	// ni/nt * (uv - n*dt) - n*sqrt(discriminant)
	tangential := uv.Subtract(n.Multiply(dt)).Multiply(niOverNt)
	return tangential.Subtract(n.Multiply(math.Sqrt(discriminant))), true
}

// Schlick approximates the Fresnel reflectance for a given cosine and refractive index
func Schlick(cosine, refractiveIndex float64) float64 {
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
