package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/box-cluster/internal/config"
)

const polarEpsilon = 1e-6

// OrbitInput is one frame of pointer input for the controls.
type OrbitInput struct {
	DragX, DragY float64 // pixels moved while the button is held
	Wheel        float64 // positive scrolls toward the target
}

// OrbitControls moves a camera on a sphere around its target with damping.
type OrbitControls struct {
	Camera *Camera

	DampingFactor float64
	RotateSpeed   float64
	ZoomSpeed     float64
	MinDistance   float64
	MaxDistance   float64

	deltaTheta float64
	deltaPhi   float64
	scale      float64
}

func NewOrbitControls(cam *Camera) *OrbitControls {
	return &OrbitControls{
		Camera:        cam,
		DampingFactor: config.DampingFactor,
		RotateSpeed:   config.RotateSpeed,
		ZoomSpeed:     config.ZoomSpeed,
		MinDistance:   0,
		MaxDistance:   math.Inf(1),
		scale:         1,
	}
}

// Rotate queues an orbit. Angles are in radians.
func (o *OrbitControls) Rotate(left, up float64) {
	o.deltaTheta -= left
	o.deltaPhi -= up
}

// Zoom queues a dolly; steps > 0 moves toward the target.
func (o *OrbitControls) Zoom(steps float64) {
	if steps == 0 {
		return
	}
	o.scale *= math.Pow(o.zoomScale(), steps)
}

func (o *OrbitControls) zoomScale() float64 {
	return math.Pow(0.95, o.ZoomSpeed)
}

// Apply converts raw pointer input into queued motion for a viewport h pixels tall.
func (o *OrbitControls) Apply(in OrbitInput, h int) {
	if h > 0 && (in.DragX != 0 || in.DragY != 0) {
		o.Rotate(2*math.Pi*in.DragX/float64(h)*o.RotateSpeed, 2*math.Pi*in.DragY/float64(h)*o.RotateSpeed)
	}
	o.Zoom(in.Wheel)
}

// Update moves the camera by the damped share of the queued motion.
// It reports whether the camera moved noticeably.
func (o *OrbitControls) Update() bool {
	cam := o.Camera
	offset := cam.Position.Sub(cam.Target)
	radius, theta, phi := toSpherical(offset)

	damped := o.DampingFactor > 0
	if damped {
		theta += o.deltaTheta * o.DampingFactor
		phi += o.deltaPhi * o.DampingFactor
	} else {
		theta += o.deltaTheta
		phi += o.deltaPhi
	}
	phi = math.Max(polarEpsilon, math.Min(math.Pi-polarEpsilon, phi))
	radius = math.Max(o.MinDistance, math.Min(o.MaxDistance, radius*o.scale))

	next := cam.Target.Add(fromSpherical(radius, theta, phi))
	moved := next.Sub(cam.Position).Len() > 1e-6
	cam.Position = next

	if damped {
		o.deltaTheta *= 1 - o.DampingFactor
		o.deltaPhi *= 1 - o.DampingFactor
	} else {
		o.deltaTheta, o.deltaPhi = 0, 0
	}
	o.scale = 1
	return moved
}

// toSpherical uses Y as the polar axis; theta is measured from +Z toward +X.
func toSpherical(v mgl64.Vec3) (radius, theta, phi float64) {
	radius = v.Len()
	if radius == 0 {
		return 0, 0, 0
	}
	theta = math.Atan2(v[0], v[2])
	phi = math.Acos(math.Max(-1, math.Min(1, v[1]/radius)))
	return radius, theta, phi
}

func fromSpherical(radius, theta, phi float64) mgl64.Vec3 {
	s := math.Sin(phi) * radius
	return mgl64.Vec3{s * math.Sin(theta), math.Cos(phi) * radius, s * math.Cos(theta)}
}
