package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestOrbit_IdleKeepsCamera(t *testing.T) {
	o := NewOrbitControls(NewCamera(1))
	for i := 0; i < 10; i++ {
		if o.Update() {
			t.Fatal("camera moved without input")
		}
	}
	if !vecNear(o.Camera.Position, mgl64.Vec3{0, 0, 20}, 1e-9) {
		t.Fatalf("position = %v", o.Camera.Position)
	}
}

func TestOrbit_DampedRotationConverges(t *testing.T) {
	o := NewOrbitControls(NewCamera(1))
	o.Rotate(math.Pi/2, 0)

	o.Update()
	first := o.Camera.Position
	// one damped step moves only DampingFactor of the way
	wantTheta := -math.Pi / 2 * 0.05
	if !vecNear(first, mgl64.Vec3{20 * math.Sin(wantTheta), 0, 20 * math.Cos(wantTheta)}, 1e-9) {
		t.Fatalf("first step = %v", first)
	}

	for i := 0; i < 1000; i++ {
		o.Update()
	}
	if !vecNear(o.Camera.Position, mgl64.Vec3{-20, 0, 0}, 1e-6) {
		t.Fatalf("settled at %v", o.Camera.Position)
	}
}

func TestOrbit_Undamped(t *testing.T) {
	o := NewOrbitControls(NewCamera(1))
	o.DampingFactor = 0
	o.Rotate(-math.Pi/2, 0)
	o.Update()
	if !vecNear(o.Camera.Position, mgl64.Vec3{20, 0, 0}, 1e-9) {
		t.Fatalf("position = %v", o.Camera.Position)
	}
	if o.Update() {
		t.Fatal("undamped controls kept moving")
	}
}

func TestOrbit_Zoom(t *testing.T) {
	o := NewOrbitControls(NewCamera(1))
	o.Zoom(1)
	o.Update()
	if d := o.Camera.Position.Len(); !near(d, 19, 1e-9) {
		t.Fatalf("distance after zoom in = %g", d)
	}
	o.Zoom(-1)
	o.Update()
	if d := o.Camera.Position.Len(); !near(d, 20, 1e-9) {
		t.Fatalf("distance after zoom out = %g", d)
	}

	o.MaxDistance = 25
	o.Zoom(-100)
	o.Update()
	if d := o.Camera.Position.Len(); !near(d, 25, 1e-9) {
		t.Fatalf("distance not clamped: %g", d)
	}
}

func TestOrbit_PolarClamp(t *testing.T) {
	o := NewOrbitControls(NewCamera(1))
	o.DampingFactor = 0
	o.Rotate(0, 10)
	o.Update()
	p := o.Camera.Position
	if !isFinite(p[0]) || !isFinite(p[1]) || !isFinite(p[2]) {
		t.Fatalf("position = %v", p)
	}
	if !near(p[1], 20, 1e-6) {
		t.Fatalf("camera should sit at the pole, got %v", p)
	}
}

func TestOrbit_ApplyDrag(t *testing.T) {
	o := NewOrbitControls(NewCamera(1))
	o.DampingFactor = 0
	// a drag of a quarter of the viewport height is a quarter turn
	o.Apply(OrbitInput{DragX: 180}, 720)
	o.Update()
	if !vecNear(o.Camera.Position, mgl64.Vec3{-20, 0, 0}, 1e-9) {
		t.Fatalf("position = %v", o.Camera.Position)
	}
	o.Apply(OrbitInput{DragX: 50}, 0)
	if o.Update() {
		t.Fatal("zero-height viewport should ignore drag")
	}
}
