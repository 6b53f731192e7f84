package scene

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/box-cluster/internal/config"
)

// Axis selects one rotation component of a Box.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// Wireframe is the edge overlay drawn just outside a box's faces.
type Wireframe struct {
	Scale float64
	Color color.RGBA
	Fog   bool
}

// Box is a solid cube with a wireframe overlay spinning on a single axis.
type Box struct {
	Position mgl64.Vec3
	Scale    mgl64.Vec3
	Rotation mgl64.Vec3 // Euler angles in radians, XYZ order
	Color    color.RGBA
	Axis     Axis
	Rate     float64 // radians per update
	Edges    Wireframe
}

// BoxConfig holds the ranges the factory draws from.
type BoxConfig struct {
	Palette    []color.RGBA
	Radius     float64
	ScaleMin   float64
	ScaleRange float64
	RateMin    float64
	RateRange  float64
	EdgeScale  float64
	EdgeColor  color.RGBA
}

// DefaultBoxConfig returns the configuration the demo runs with.
func DefaultBoxConfig() BoxConfig {
	return BoxConfig{
		Palette:    config.Palette,
		Radius:     config.SphereRadius,
		ScaleMin:   config.BoxScaleMin,
		ScaleRange: config.BoxScaleRange,
		RateMin:    config.SpinRateMin,
		RateRange:  config.SpinRateRange,
		EdgeScale:  config.EdgeScale,
		EdgeColor:  HexColor(config.EdgeHex),
	}
}

// NewBox draws one box from cfg.
func NewBox(rng Rand, cfg BoxConfig) Box {
	var b Box
	b.Color = pickColor(rng, cfg.Palette)
	b.Position = SamplePoint(rng, cfg.Radius)
	b.Rotation[0] = rng.Float64() * math.Pi
	b.Rotation[1] = rng.Float64() * math.Pi

	for i := range b.Scale {
		b.Scale[i] = cfg.ScaleMin + rng.Float64()*cfg.ScaleRange
	}

	b.Edges = Wireframe{Scale: cfg.EdgeScale, Color: cfg.EdgeColor, Fog: false}

	b.Axis = Axis(math.Floor(rng.Float64() * 3))
	if b.Axis > AxisZ {
		b.Axis = AxisZ
	}
	b.Rate = rng.Float64()*cfg.RateRange + cfg.RateMin
	return b
}

func pickColor(rng Rand, palette []color.RGBA) color.RGBA {
	if len(palette) == 0 {
		palette = config.Palette
	}
	i := int(math.Floor(rng.Float64() * float64(len(palette))))
	if i >= len(palette) {
		i = len(palette) - 1
	}
	return palette[i]
}

// Update advances the rotation on the spin axis.
func (b *Box) Update() {
	b.Rotation[b.Axis] += b.Rate
}

// Model is the local-to-parent transform: translate, rotate (XYZ), scale.
func (b *Box) Model() mgl64.Mat4 {
	return mgl64.Translate3D(b.Position[0], b.Position[1], b.Position[2]).
		Mul4(EulerXYZ(b.Rotation)).
		Mul4(mgl64.Scale3D(b.Scale[0], b.Scale[1], b.Scale[2]))
}

// EdgeModel is Model with the wireframe offset applied.
func (b *Box) EdgeModel() mgl64.Mat4 {
	s := b.Edges.Scale
	return b.Model().Mul4(mgl64.Scale3D(s, s, s))
}

// EulerXYZ builds a rotation matrix that applies X, then Y, then Z as
// intrinsic rotations (Rx * Ry * Rz).
func EulerXYZ(r mgl64.Vec3) mgl64.Mat4 {
	return mgl64.HomogRotate3DX(r[0]).
		Mul4(mgl64.HomogRotate3DY(r[1])).
		Mul4(mgl64.HomogRotate3DZ(r[2]))
}
