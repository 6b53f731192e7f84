package scene

import (
	"image/color"
	"testing"
)

func TestHexColor(t *testing.T) {
	c := HexColor(0x7c80f7)
	if c != (color.RGBA{R: 0x7c, G: 0x80, B: 0xf7, A: 0xff}) {
		t.Fatalf("HexColor = %v", c)
	}
}

func TestOffsetLightness(t *testing.T) {
	base := HexColor(0x0033bb)
	same := OffsetLightness(base, 0)
	if diff(same.R, base.R) > 1 || diff(same.G, base.G) > 1 || diff(same.B, base.B) > 1 {
		t.Fatalf("zero offset changed %v to %v", base, same)
	}

	lighter := OffsetLightness(base, 0.1)
	darker := OffsetLightness(base, -0.1)
	if sum(lighter) <= sum(base) || sum(darker) >= sum(base) {
		t.Fatalf("lightness offsets wrong: darker %v base %v lighter %v", darker, base, lighter)
	}

	if w := OffsetLightness(base, 5); w != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("clamped lightness = %v", w)
	}
	if g := OffsetLightness(HexColor(0x808080), 0); diff(g.R, 0x80) > 1 || g.R != g.G || g.G != g.B {
		t.Fatalf("grey drifted: %v", g)
	}
}

func TestFog(t *testing.T) {
	f := Fog{Color: HexColor(0x0033bb), Near: 0.05, Far: 2000}
	if f.Factor(0) != 0 || f.Factor(0.05) != 0 {
		t.Fatal("fog before near")
	}
	if f.Factor(2000) != 1 || f.Factor(1e9) != 1 {
		t.Fatal("fog past far")
	}
	if k := f.Factor(1000.025); !near(k, 0.5, 1e-12) {
		t.Fatalf("mid factor = %g", k)
	}

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if got := f.ApplyFog(white, 0); got != white {
		t.Fatalf("unfogged = %v", got)
	}
	if got := f.ApplyFog(white, 5000); got != f.Color {
		t.Fatalf("fully fogged = %v", got)
	}
	if (Fog{Near: 1, Far: 1}).Factor(5) != 0 {
		t.Fatal("degenerate fog should be off")
	}
}

func diff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func sum(c color.RGBA) int {
	return int(c.R) + int(c.G) + int(c.B)
}
