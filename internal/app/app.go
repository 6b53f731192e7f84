// Package app owns the scene state and advances it one frame at a time.
package app

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/iburimskiy/box-cluster/internal/config"
	"github.com/iburimskiy/box-cluster/internal/scene"
)

// ErrStopped is returned by Tick once Stop has been called.
var ErrStopped = errors.New("app: stopped")

// State is the frame loop state.
type State int32

const (
	Idle State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Input is the per-frame input gathered by the host.
type Input struct {
	Orbit       scene.OrbitInput
	TogglePause bool
}

// App holds everything the frame loop mutates.
type App struct {
	Group      *scene.Group
	Background *scene.Layer
	Camera     *scene.Camera
	Controls   *scene.OrbitControls
	Fog        scene.Fog
	Stats      *Stats

	width, height int
	paused        bool
	frames        uint64

	state    atomic.Int32
	stopOnce sync.Once
}

// New builds the scene for a width x height viewport.
func New(rng scene.Rand, width, height int) *App {
	if width <= 0 || height <= 0 {
		width, height = config.WindowWidth, config.WindowHeight
	}
	cam := scene.NewCamera(float64(width) / float64(height))
	a := &App{
		Group:      scene.NewGroup(rng, config.BoxCount, scene.DefaultBoxConfig()),
		Background: scene.NewLayer(rng, scene.DefaultLayerConfig()),
		Camera:     cam,
		Controls:   scene.NewOrbitControls(cam),
		Fog: scene.Fog{
			Color: scene.HexColor(config.BackgroundHex),
			Near:  config.FogNear,
			Far:   config.FogFar,
		},
		Stats:  NewStats(config.StatsHistory),
		width:  width,
		height: height,
	}
	return a
}

// State reports where the frame loop is.
func (a *App) State() State {
	return State(a.state.Load())
}

// Tick advances one frame: cluster spin, camera damping, then stats.
// Rendering of the resulting state is the host's job.
func (a *App) Tick(in Input) error {
	if !a.state.CompareAndSwap(int32(Idle), int32(Running)) && a.State() == Stopped {
		return ErrStopped
	}

	if in.TogglePause {
		a.TogglePause()
	}
	if !a.paused {
		a.Group.Update()
	}
	a.Controls.Apply(in.Orbit, a.height)
	a.Controls.Update()
	a.Stats.Frame()
	a.frames++
	return nil
}

// Stop ends the frame loop. It is safe to call from any goroutine, more than once.
func (a *App) Stop() {
	a.stopOnce.Do(func() {
		a.state.Store(int32(Stopped))
	})
}

func (a *App) TogglePause() {
	a.paused = !a.paused
}

func (a *App) Paused() bool {
	return a.paused
}

// Frames is the number of completed ticks.
func (a *App) Frames() uint64 {
	return a.frames
}

// Resize updates the camera aspect and render target. It reports whether
// the size changed; non-positive sizes are ignored.
func (a *App) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	if width == a.width && height == a.height {
		return false
	}
	a.width, a.height = width, height
	a.Camera.SetAspect(float64(width) / float64(height))
	return true
}

// Size is the current render target size.
func (a *App) Size() (int, int) {
	return a.width, a.height
}
