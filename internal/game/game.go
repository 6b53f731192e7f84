package game

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/box-cluster/internal/app"
	"github.com/iburimskiy/box-cluster/internal/config"
	"github.com/iburimskiy/box-cluster/internal/logger"
	"github.com/iburimskiy/box-cluster/internal/scene"
)

// Game hosts the box cluster in an ebiten window.
type Game struct {
	app *app.App
	log *logger.Logger

	render *renderer
	bloom  *bloom
	target *ebiten.Image

	// pointer drag tracking
	dragging     bool
	lastX, lastY int

	// screenshots
	captureNext bool
	shotPending bool
	shots       chan shotResult

	showStats bool
	lastErr   error
}

func New(rng scene.Rand, log *logger.Logger) *Game {
	g := &Game{
		app:       app.New(rng, config.WindowWidth, config.WindowHeight),
		log:       log,
		render:    newRenderer(),
		bloom:     newBloom(config.BloomStrength, config.BloomRadius, config.BloomThreshold, config.BloomLevels),
		shots:     make(chan shotResult, 1),
		showStats: true,
	}
	log.Info("built %d boxes and %d background sprites", len(g.app.Group.Boxes), len(g.app.Background.Sprites))
	return g
}

// Stop ends the game at the next Update. Safe from any goroutine.
func (g *Game) Stop() {
	g.app.Stop()
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.app.Stop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.requestShot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showStats = !g.showStats
	}
	g.collectShots()

	in := app.Input{
		Orbit:       g.pointer(),
		TogglePause: inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
	if err := g.app.Tick(in); err != nil {
		if errors.Is(err, app.ErrStopped) {
			g.log.Info("stopped after %d frames", g.app.Frames())
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// pointer turns mouse state into orbit input.
func (g *Game) pointer() scene.OrbitInput {
	var in scene.OrbitInput
	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			in.DragX = float64(x - g.lastX)
			in.DragY = float64(y - g.lastY)
		}
		g.dragging = true
	} else {
		g.dragging = false
	}
	g.lastX, g.lastY = x, y

	_, in.Wheel = ebiten.Wheel()
	return in
}

func (g *Game) Draw(screen *ebiten.Image) {
	w, h := g.app.Size()
	g.ensureTarget(w, h)

	// Render pass
	g.target.Fill(color.Black)
	g.render.draw(g.target, g.app)
	screen.DrawImage(g.target, nil)

	// Bloom pass
	g.bloom.apply(screen, g.target)

	if g.captureNext {
		g.captureNext = false
		g.shotPending = true
		g.capture(screen)
	}

	if g.showStats {
		drawStats(screen, g.app.Stats)
	}
	drawStatus(screen, g.app.Paused(), g.lastErr)
}

func (g *Game) ensureTarget(w, h int) {
	if g.target != nil {
		b := g.target.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		g.target.Deallocate()
	}
	g.target = ebiten.NewImage(w, h)
	g.bloom.resize(w, h)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.app.Resize(outsideWidth, outsideHeight) {
		g.log.Info("viewport %dx%d", outsideWidth, outsideHeight)
	}
	return g.app.Size()
}
