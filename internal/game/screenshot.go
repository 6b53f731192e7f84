package game

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
)

type shotResult struct {
	path string
	err  error
}

// requestShot schedules a capture for the next Draw. Only one save dialog
// is open at a time.
func (g *Game) requestShot() {
	if g.shotPending || g.captureNext {
		g.log.Warn("screenshot already in progress")
		return
	}
	g.captureNext = true
}

// capture copies the frame and saves it off the game loop.
func (g *Game) capture(screen *ebiten.Image) {
	img := image.NewRGBA(screen.Bounds())
	screen.ReadPixels(img.Pix)
	go func() {
		path, err := saveScreenshot(img)
		g.shots <- shotResult{path: path, err: err}
	}()
}

// collectShots reports finished screenshots without blocking.
func (g *Game) collectShots() {
	select {
	case res := <-g.shots:
		g.shotPending = false
		switch {
		case res.err != nil:
			g.lastErr = res.err
			g.log.Error("screenshot: %v", res.err)
		case res.path != "":
			g.lastErr = nil
			g.log.Info("saved screenshot %s", res.path)
		}
	default:
	}
}

func saveScreenshot(img image.Image) (string, error) {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Screenshot"),
		zenity.Filename("boxes.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	if !strings.EqualFold(filepath.Ext(filename), ".png") {
		filename += ".png"
	}

	f, err := os.Create(filename)
	if err != nil {
		return "", err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("encode %s: %w", filename, err)
	}
	return filename, f.Close()
}
