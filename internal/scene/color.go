package scene

import (
	"image/color"
	"math"
)

// HexColor converts 0xRRGGBB into an opaque color.
func HexColor(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

// OffsetLightness shifts the HSL lightness of c by delta, clamped to [0, 1].
func OffsetLightness(c color.RGBA, delta float64) color.RGBA {
	h, s, l := rgbToHsl(c)
	r, g, b := hslToRgb(h, s, clamp01(l+delta))
	return color.RGBA{R: r, G: g, B: b, A: c.A}
}

// rgbToHsl returns hue in [0, 360) and saturation, lightness in [0, 1].
func rgbToHsl(c color.RGBA) (float64, float64, float64) {
	r, g, b := float64(c.R)/255, float64(c.G)/255, float64(c.B)/255
	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	l := (hi + lo) / 2
	if hi == lo {
		return 0, 0, l
	}

	d := hi - lo
	s := d / (1 - math.Abs(2*l-1))
	var h float64
	switch hi {
	case r:
		h = math.Mod((g-b)/d, 6)
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return h, s, l
}

// hslToRgb converts HSL to RGB (hue: 0-360, saturation: 0-1, lightness: 0-1)
func hslToRgb(h, s, l float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return toByte(r + m), toByte(g + m), toByte(b + m)
}

func toByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Fog is linear distance fog.
type Fog struct {
	Color     color.RGBA
	Near, Far float64
}

// Factor is 0 at Near and closer, 1 at Far and beyond.
func (f Fog) Factor(depth float64) float64 {
	if f.Far <= f.Near {
		return 0
	}
	return clamp01((depth - f.Near) / (f.Far - f.Near))
}

// ApplyFog blends c toward the fog color by the factor for depth.
func (f Fog) ApplyFog(c color.RGBA, depth float64) color.RGBA {
	k := f.Factor(depth)
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*k))
	}
	return color.RGBA{R: mix(c.R, f.Color.R), G: mix(c.G, f.Color.G), B: mix(c.B, f.Color.B), A: c.A}
}
