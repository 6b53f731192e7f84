package scene

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/box-cluster/internal/config"
)

// LayerConfig describes a translucent backdrop of soft sprites.
type LayerConfig struct {
	NumSprites int
	Opacity    float64
	Radius     float64
	Size       float64
	Color      color.RGBA
	Z          float64
	Scale      float64
}

// DefaultLayerConfig is the blue gradient behind the cluster.
func DefaultLayerConfig() LayerConfig {
	return LayerConfig{
		NumSprites: config.LayerSprites,
		Opacity:    config.LayerOpacity,
		Radius:     config.LayerRadius,
		Size:       config.LayerSize,
		Color:      HexColor(config.BackgroundHex),
		Z:          config.LayerZ,
		Scale:      config.LayerScale,
	}
}

// Sprite is a camera-facing radial gradient.
type Sprite struct {
	Position mgl64.Vec3
	Size     float64
	Color    color.RGBA
	Opacity  float64
	Fog      bool
}

// Layer is a fixed set of sprites sharing a uniform scale.
type Layer struct {
	Sprites []Sprite
	Scale   float64
}

// NewLayer scatters cfg.NumSprites sprites on a disc at depth cfg.Z.
func NewLayer(rng Rand, cfg LayerConfig) *Layer {
	n := max(cfg.NumSprites, 0)
	scale := cfg.Scale
	if scale == 0 {
		scale = 1
	}
	l := &Layer{Sprites: make([]Sprite, n), Scale: scale}
	// sizes drift from one sprite to the next
	size := cfg.Size
	for i := range l.Sprites {
		angle := float64(i) / float64(n) * math.Pi * 2
		x := math.Cos(angle) * rng.Float64() * cfg.Radius
		y := math.Sin(angle) * rng.Float64() * cfg.Radius
		z := cfg.Z + rng.Float64()
		col := OffsetLightness(cfg.Color, rng.Float64()*0.2-0.1)
		size += rng.Float64() - 0.5
		l.Sprites[i] = Sprite{
			Position: mgl64.Vec3{x, -y, z},
			Size:     size,
			Color:    col,
			Opacity:  cfg.Opacity,
			Fog:      true,
		}
	}
	return l
}

// World returns sprite i's world position and size.
func (l *Layer) World(i int) (mgl64.Vec3, float64) {
	s := l.Sprites[i]
	return s.Position.Mul(l.Scale), s.Size * l.Scale
}
