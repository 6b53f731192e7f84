package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
)

// mipFactors weight each blur level before the radius blend.
var mipFactors = []float64{1.0, 0.8, 0.6, 0.4, 0.2}

// bloom adds a blurred copy of the bright parts of a frame back onto it.
// Each level halves the resolution and widens the blur.
type bloom struct {
	strength  float64
	radius    float64
	threshold float64

	bright  *ebiten.Image
	levels  []*ebiten.Image
	scratch []*ebiten.Image
	kernels [][]float32
}

func newBloom(strength, radius, threshold float64, levels int) *bloom {
	levels = max(1, min(levels, len(mipFactors)))
	b := &bloom{
		strength:  strength,
		radius:    radius,
		threshold: threshold,
		levels:    make([]*ebiten.Image, levels),
		scratch:   make([]*ebiten.Image, levels),
		kernels:   make([][]float32, levels),
	}
	for i := range b.kernels {
		b.kernels[i] = gaussianKernel(3 + 2*i)
	}
	return b
}

// gaussianKernel returns normalised weights for offsets -r..r with sigma r.
func gaussianKernel(r int) []float32 {
	w := make([]float32, 2*r+1)
	sigma := float64(r)
	var sum float64
	for i := -r; i <= r; i++ {
		v := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		w[i+r] = float32(v)
		sum += v
	}
	for i := range w {
		w[i] /= float32(sum)
	}
	return w
}

// levelWeight blends each mip factor toward its mirror by radius.
func (b *bloom) levelWeight(i int) float32 {
	f := mipFactors[i]
	return float32(b.strength * (f + (1.2-f-f)*b.radius))
}

func (b *bloom) resize(w, h int) {
	if b.bright != nil {
		b.bright.Deallocate()
	}
	b.bright = ebiten.NewImage(w, h)
	for i := range b.levels {
		if b.levels[i] != nil {
			b.levels[i].Deallocate()
			b.scratch[i].Deallocate()
		}
		lw, lh := max(1, w>>(i+1)), max(1, h>>(i+1))
		b.levels[i] = ebiten.NewImage(lw, lh)
		b.scratch[i] = ebiten.NewImage(lw, lh)
	}
}

func (b *bloom) apply(dst, src *ebiten.Image) {
	if b.bright == nil || b.strength <= 0 {
		return
	}

	// High pass: drop everything below the threshold.
	var cm colorm.ColorM
	if b.threshold > 0 && b.threshold < 1 {
		t := b.threshold
		cm.Translate(-t, -t, -t, 0)
		cm.Scale(1/(1-t), 1/(1-t), 1/(1-t), 1)
	}
	b.bright.Clear()
	colorm.DrawImage(b.bright, src, cm, &colorm.DrawImageOptions{})

	prev := b.bright
	for i, lvl := range b.levels {
		lvl.Clear()
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
		pw, ph := float64(prev.Bounds().Dx()), float64(prev.Bounds().Dy())
		op.GeoM.Scale(float64(lvl.Bounds().Dx())/pw, float64(lvl.Bounds().Dy())/ph)
		lvl.DrawImage(prev, op)
		b.blur(lvl, b.scratch[i], b.kernels[i])
		prev = lvl
	}

	dw, dh := float64(dst.Bounds().Dx()), float64(dst.Bounds().Dy())
	for i, lvl := range b.levels {
		op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear, Blend: ebiten.BlendLighter}
		op.GeoM.Scale(dw/float64(lvl.Bounds().Dx()), dh/float64(lvl.Bounds().Dy()))
		op.ColorScale.ScaleAlpha(b.levelWeight(i))
		dst.DrawImage(lvl, op)
	}
}

// blur runs a separable gaussian: horizontal into scratch, vertical back.
func (b *bloom) blur(img, scratch *ebiten.Image, kernel []float32) {
	r := len(kernel) / 2
	scratch.Clear()
	for i, wt := range kernel {
		op := &ebiten.DrawImageOptions{Blend: ebiten.BlendLighter}
		op.GeoM.Translate(float64(i-r), 0)
		op.ColorScale.ScaleAlpha(wt)
		scratch.DrawImage(img, op)
	}
	img.Clear()
	for i, wt := range kernel {
		op := &ebiten.DrawImageOptions{Blend: ebiten.BlendLighter}
		op.GeoM.Translate(0, float64(i-r))
		op.ColorScale.ScaleAlpha(wt)
		img.DrawImage(scratch, op)
	}
}
