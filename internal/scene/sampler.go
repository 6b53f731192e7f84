package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rand is the source of uniform draws in [0, 1). *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// SamplePoint returns a point spread around a sphere of the given radius.
// The direction is uniform over the sphere; the distance is radius scaled by
// (rand - radius/2), so points scatter through the shell and across the origin.
func SamplePoint(rng Rand, radius float64) mgl64.Vec3 {
	half := radius * 0.5
	radius *= rng.Float64() - half
	u := rng.Float64()
	v := rng.Float64()
	theta := 2 * math.Pi * u
	phi := math.Acos(2*v - 1)

	return mgl64.Vec3{
		radius * math.Sin(phi) * math.Cos(theta),
		radius * math.Sin(phi) * math.Sin(theta),
		radius * math.Cos(phi),
	}
}
