package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/box-cluster/internal/config"
)

// Camera is a perspective camera looking at Target.
type Camera struct {
	FOV    float64 // vertical, degrees
	Aspect float64
	Near   float64
	Far    float64

	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
}

// NewCamera places a camera on +Z looking at the origin.
func NewCamera(aspect float64) *Camera {
	return &Camera{
		FOV:      config.CameraFOV,
		Aspect:   aspect,
		Near:     config.CameraNear,
		Far:      config.CameraFar,
		Position: mgl64.Vec3{0, 0, config.CameraDistance},
		Up:       mgl64.Vec3{0, 1, 0},
	}
}

func (c *Camera) SetAspect(aspect float64) {
	c.Aspect = aspect
}

func (c *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.FOV), c.Aspect, c.Near, c.Far)
}

// ScreenPoint is a projected vertex in pixels. Depth is the distance in
// front of the camera along its view axis.
type ScreenPoint struct {
	X, Y  float64
	Depth float64
	NDC   mgl64.Vec2
}

// Project maps a world point through viewProj to a w x h viewport.
// ok is false for points at or behind the near plane.
func (c *Camera) Project(p mgl64.Vec3, viewProj mgl64.Mat4, w, h int) (ScreenPoint, bool) {
	clip := viewProj.Mul4x1(p.Vec4(1))
	if clip.W() < c.Near {
		return ScreenPoint{}, false
	}
	ndc := mgl64.Vec2{clip.X() / clip.W(), clip.Y() / clip.W()}
	return ScreenPoint{
		X:     (ndc[0] + 1) / 2 * float64(w),
		Y:     (1 - ndc[1]) / 2 * float64(h),
		Depth: clip.W(),
		NDC:   ndc,
	}, true
}

// PixelsPerUnit is the on-screen size of one world unit at depth for a
// viewport h pixels tall.
func (c *Camera) PixelsPerUnit(depth float64, h int) float64 {
	if depth <= 0 {
		return 0
	}
	f := 1 / math.Tan(mgl64.DegToRad(c.FOV)/2)
	return f * float64(h) / 2 / depth
}
