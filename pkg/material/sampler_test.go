package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// scriptedSampler replays a fixed sequence of values and counts draws
type scriptedSampler struct {
	values []float64
	draws  int
}

func (s *scriptedSampler) Get1D() float64 {
	v := s.values[s.draws%len(s.values)]
	s.draws++
	return v
}

func (s *scriptedSampler) Get2D() (float64, float64) {
	return s.Get1D(), s.Get1D()
}

func (s *scriptedSampler) Get3D() core.Vec3 {
	return core.NewVec3(s.Get1D(), s.Get1D(), s.Get1D())
}
