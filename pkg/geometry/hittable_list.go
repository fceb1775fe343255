package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// HittableList is an ordered collection of objects that is itself hittable
type HittableList struct {
	Objects []core.Hittable
}

// NewHittableList creates a list containing the given objects
func NewHittableList(objects ...core.Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends objects to the list
func (l *HittableList) Add(objects ...core.Hittable) {
	l.Objects = append(l.Objects, objects...)
}

// Len returns the number of direct children
func (l *HittableList) Len() int {
	return len(l.Objects)
}

// Hit returns the closest intersection among all children.
// The search interval shrinks after every hit, so a later child only wins
// with a strictly smaller t.
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
