package game

import (
	"cmp"
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/box-cluster/internal/app"
	"github.com/iburimskiy/box-cluster/internal/scene"
)

const glowSize = 128

var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

type drawItem struct {
	depth  float64
	sprite bool
	index  int
}

// renderer draws the scene back to front. Faces are flat-shaded like an
// unlit material; edges are stroked after their box's faces.
type renderer struct {
	white *ebiten.Image
	glow  *ebiten.Image

	items []drawItem
	verts []ebiten.Vertex
}

func newRenderer() *renderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &renderer{
		white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		glow:  ebiten.NewImageFromImage(radialGradient(glowSize)),
		verts: make([]ebiten.Vertex, 0, 4),
	}
}

// radialGradient is a white disc fading to transparent at its rim.
func radialGradient(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c) / c
			a := 1 - d
			if a < 0 {
				a = 0
			}
			v := uint8(a * a * 255)
			// premultiplied white
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: v})
		}
	}
	return img
}

func (r *renderer) draw(dst *ebiten.Image, a *app.App) {
	w, h := a.Size()
	cam := a.Camera
	view := cam.View()
	viewProj := cam.Projection().Mul4(view)
	group := a.Group.Model()

	r.items = r.items[:0]
	for i := range a.Group.Boxes {
		center := group.Mul4x1(a.Group.Boxes[i].Position.Vec4(1))
		r.items = append(r.items, drawItem{depth: -view.Mul4x1(center).Z(), index: i})
	}
	for i := range a.Background.Sprites {
		pos, _ := a.Background.World(i)
		r.items = append(r.items, drawItem{depth: -view.Mul4x1(pos.Vec4(1)).Z(), sprite: true, index: i})
	}
	slices.SortFunc(r.items, func(x, y drawItem) int {
		return cmp.Compare(y.depth, x.depth)
	})

	for _, it := range r.items {
		if it.sprite {
			r.drawSprite(dst, a, it.index, viewProj, w, h)
			continue
		}
		r.drawBox(dst, a, &a.Group.Boxes[it.index], group, viewProj, w, h)
	}
}

func (r *renderer) drawBox(dst *ebiten.Image, a *app.App, b *scene.Box, group, viewProj mgl64.Mat4, w, h int) {
	cam := a.Camera
	model := group.Mul4(b.Model())

	var pts [8]scene.ScreenPoint
	for i, v := range scene.CubeVertices {
		p, ok := cam.Project(model.Mul4x1(v.Vec4(1)).Vec3(), viewProj, w, h)
		if !ok {
			return
		}
		pts[i] = p
	}

	var front [6]bool
	for f, face := range scene.CubeFaces {
		p0, p1, p2 := pts[face[0]].NDC, pts[face[1]].NDC, pts[face[2]].NDC
		e1, e2 := p1.Sub(p0), p2.Sub(p0)
		// counter-clockwise in NDC faces the camera
		if e1[0]*e2[1]-e1[1]*e2[0] <= 0 {
			continue
		}
		front[f] = true

		var depth float64
		var quad [4]scene.ScreenPoint
		for k, vi := range face {
			quad[k] = pts[vi]
			depth += pts[vi].Depth / 4
		}
		r.fillQuad(dst, quad, a.Fog.ApplyFog(b.Color, depth))
	}

	edgeModel := group.Mul4(b.EdgeModel())
	for i, v := range scene.CubeVertices {
		p, ok := cam.Project(edgeModel.Mul4x1(v.Vec4(1)).Vec3(), viewProj, w, h)
		if !ok {
			return
		}
		pts[i] = p
	}
	for _, e := range scene.CubeEdges {
		if !front[e.Faces[0]] && !front[e.Faces[1]] {
			continue
		}
		pa, pb := pts[e.A], pts[e.B]
		clr := b.Edges.Color
		if b.Edges.Fog {
			clr = a.Fog.ApplyFog(clr, (pa.Depth+pb.Depth)/2)
		}
		vector.StrokeLine(dst, float32(pa.X), float32(pa.Y), float32(pb.X), float32(pb.Y), 1, clr, true)
	}
}

func (r *renderer) fillQuad(dst *ebiten.Image, q [4]scene.ScreenPoint, c color.RGBA) {
	cr, cg, cb, ca := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	r.verts = r.verts[:0]
	for _, p := range q {
		r.verts = append(r.verts, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	dst.DrawTriangles(r.verts, quadIndices, r.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *renderer) drawSprite(dst *ebiten.Image, a *app.App, i int, viewProj mgl64.Mat4, w, h int) {
	pos, size := a.Background.World(i)
	p, ok := a.Camera.Project(pos, viewProj, w, h)
	if !ok {
		return
	}
	px := size * a.Camera.PixelsPerUnit(p.Depth, h)
	if px < 1 {
		return
	}

	s := a.Background.Sprites[i]
	clr := s.Color
	if s.Fog {
		clr = a.Fog.ApplyFog(clr, p.Depth)
	}

	op := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
	op.GeoM.Translate(-glowSize/2, -glowSize/2)
	op.GeoM.Scale(px/glowSize, px/glowSize)
	op.GeoM.Translate(p.X, p.Y)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(s.Opacity))
	dst.DrawImage(r.glow, op)
}
