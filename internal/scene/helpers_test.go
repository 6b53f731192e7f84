package scene

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// seqRand replays fixed draws, cycling when exhausted.
type seqRand struct {
	vals []float64
	i    int
}

func (s *seqRand) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// vecNear compares component-wise with an absolute tolerance, so noise
// around an expected zero does not fail.
func vecNear(a, b mgl64.Vec3, eps float64) bool {
	return a.ApproxFuncEqual(b, func(x, y float64) bool { return near(x, y, eps) })
}
