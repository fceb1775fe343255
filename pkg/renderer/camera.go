package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig contains all parameters that define a camera
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // View up direction, projected onto the image plane
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter; 0 disables defocus blur
	FocusDistance float64   // Distance to the plane in focus; 0 = |LookFrom - LookAt|
}

// Camera generates rays for rendering. It is immutable once created.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
}

// NewCamera creates a positionable camera with optional defocus blur
func NewCamera(config CameraConfig) *Camera {
	theta := config.VFov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight

	focusDist := config.FocusDistance
	if focusDist <= 0 {
		focusDist = config.LookFrom.Subtract(config.LookAt).Length()
	}

	// Orthonormal basis; the camera looks down -w
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	lowerLeftCorner := origin.
		Subtract(u.Multiply(halfWidth * focusDist)).
		Subtract(v.Multiply(halfHeight * focusDist)).
		Subtract(w.Multiply(focusDist))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth * focusDist),
		vertical:        v.Multiply(2 * halfHeight * focusDist),
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}
}

// GetRay generates a ray for image plane coordinates (s, t) where 0 <= s,t <= 1.
// (0, 0) is the lower left corner.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}

