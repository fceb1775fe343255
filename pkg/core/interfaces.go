package core

// Logger interface for raytracer logging
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Noticef(format string, args ...interface{})
	Warningf(format string, args ...interface{})
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T        float64  // Parameter t along the ray
	Point    Vec3     // Point of intersection
	Normal   Vec3     // (Point - center) / radius; inward for negative radii
	Material Material // Material of the hit object, shared with other objects
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Attenuation Vec3 // Color attenuation
	Scattered   Ray  // The scattered ray
}

// Material interface for surfaces that can scatter rays.
// Scatter returns false when the incoming ray is absorbed.
type Material interface {
	Scatter(rayIn Ray, hit HitRecord, sampler Sampler) (ScatterResult, bool)
}

// Hittable interface for objects that can be hit by rays.
// Only hits with tMin < t < tMax are reported.
type Hittable interface {
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)
}
