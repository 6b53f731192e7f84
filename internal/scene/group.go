package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/box-cluster/internal/config"
)

// Group owns the boxes and spins them together around Y.
type Group struct {
	Rotation mgl64.Vec3
	Spin     float64 // y radians per update
	Boxes    []Box
}

// NewGroup builds n boxes from cfg.
func NewGroup(rng Rand, n int, cfg BoxConfig) *Group {
	if n < 0 {
		n = 0
	}
	g := &Group{
		Spin:  config.GroupSpinSpeed,
		Boxes: make([]Box, n),
	}
	for i := range g.Boxes {
		g.Boxes[i] = NewBox(rng, cfg)
	}
	return g
}

// Update turns the group, then every box on its own axis.
func (g *Group) Update() {
	g.Rotation[1] += g.Spin
	for i := range g.Boxes {
		g.Boxes[i].Update()
	}
}

// Model is the group's world transform.
func (g *Group) Model() mgl64.Mat4 {
	return EulerXYZ(g.Rotation)
}
