package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

func TestSphere_Hit_Nearest(t *testing.T) {
	mat := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, mat)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected t=4, got t=%f", hit.T)
	}

	expectedNormal := core.NewVec3(0, 0, 1)
	if hit.Normal.Subtract(expectedNormal).Length() > 1e-9 {
		t.Errorf("Expected normal %v, got %v", expectedNormal, hit.Normal)
	}

	expectedPoint := core.NewVec3(0, 0, -4)
	if hit.Point.Subtract(expectedPoint).Length() > 1e-9 {
		t.Errorf("Expected point %v, got %v", expectedPoint, hit.Point)
	}

	if hit.Material != mat {
		t.Errorf("Expected sphere material to be attached to hit record")
	}
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	hit, isHit := sphere.Hit(ray, 0, math.Inf(1))
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
	if hit != nil {
		t.Errorf("Expected nil hit record on miss")
	}
}

func TestSphere_Hit_Roots(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		tMin, tMax     float64
		expectHit      bool
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "outside hits near root",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			tMin:           0.001,
			tMax:           1000,
			expectHit:      true,
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "inside hits far root with outward normal",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			tMin:           0.001,
			tMax:           1000,
			expectHit:      true,
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "unnormalized direction scales t",
			rayOrigin:      core.NewVec3(0, 0, 3),
			rayDirection:   core.NewVec3(0, 0, -2),
			tMin:           0.001,
			tMax:           1000,
			expectHit:      true,
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "near root outside interval falls back to far root",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			tMin:           1.5,
			tMax:           1000,
			expectHit:      true,
			expectedT:      3.0,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
		{
			name:         "root equal to tMax is excluded",
			rayOrigin:    core.NewVec3(0, 0, 2),
			rayDirection: core.NewVec3(0, 0, -1),
			tMin:         0.001,
			tMax:         1.0,
			expectHit:    false,
		},
		{
			name:         "both roots before tMin",
			rayOrigin:    core.NewVec3(0, 0, 2),
			rayDirection: core.NewVec3(0, 0, -1),
			tMin:         3.0,
			tMax:         1000,
			expectHit:    false,
		},
		{
			name:         "sphere behind ray",
			rayOrigin:    core.NewVec3(0, 0, 2),
			rayDirection: core.NewVec3(0, 0, 1),
			tMin:         0.001,
			tMax:         1000,
			expectHit:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, tt.tMin, tt.tMax)

			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if !tt.expectHit {
				return
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_NegativeRadiusFlipsNormal(t *testing.T) {
	outer := NewSphere(core.NewVec3(0, 0, -1), 0.5, nil)
	inner := NewSphere(core.NewVec3(0, 0, -1), -0.5, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	outerHit, ok := outer.Hit(ray, 0, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit on outer sphere")
	}
	innerHit, ok := inner.Hit(ray, 0, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit on inverted sphere")
	}

	// Same surface, same t
	if outerHit.T != innerHit.T {
		t.Errorf("Expected equal t for both radii, got %f and %f", outerHit.T, innerHit.T)
	}

	// Opposite normals
	if !innerHit.Normal.Equals(outerHit.Normal.Negate()) {
		t.Errorf("Expected inverted normal %v, got %v", outerHit.Normal.Negate(), innerHit.Normal)
	}
	if innerHit.Normal.Z != -1 {
		t.Errorf("Expected inward normal (0,0,-1), got %v", innerHit.Normal)
	}
}

func TestSphere_Hit_NormalIsUnit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, -10), 3.0, nil)
	sampler := core.NewSeededSampler(42)

	for i := 0; i < 100; i++ {
		target := sphere.Center.Add(core.RandomInUnitSphere(sampler).Multiply(2.5))
		ray := core.NewRay(core.NewVec3(0, 0, 0), target)
		hit, ok := sphere.Hit(ray, 0.001, math.Inf(1))
		if !ok {
			t.Fatalf("Expected ray towards %v to hit", target)
		}
		if math.Abs(hit.Normal.Length()-1.0) > 1e-9 {
			t.Errorf("Expected unit normal, got length %f", hit.Normal.Length())
		}
	}
}
