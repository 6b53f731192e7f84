package game

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/box-cluster/internal/app"
	"github.com/iburimskiy/box-cluster/internal/config"
)

// Stats panel dimensions
const (
	panelX      = 8
	panelY      = 24
	panelWidth  = config.StatsHistory
	panelHeight = 40
)

var (
	panelBg  = color.RGBA{R: 0x02, G: 0x02, B: 0x20, A: 0xe0}
	panelBar = color.RGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff}
)

// drawStats draws the frame time text and a bar per recorded frame.
func drawStats(screen *ebiten.Image, s *app.Stats) {
	ebitenutil.DebugPrintAt(screen, s.String(), panelX, 6)

	vector.DrawFilledRect(screen, panelX, panelY, panelWidth, panelHeight, panelBg, false)
	frames := s.Snapshot(panelWidth)
	// 33ms, two frames at 60Hz, fills the panel
	const full = float64(33 * time.Millisecond)
	offset := panelWidth - len(frames)
	for i, d := range frames {
		v := float64(d) / full
		if v > 1 {
			v = 1
		}
		bar := float32(v * panelHeight)
		if bar < 1 {
			bar = 1
		}
		x := float32(panelX + offset + i)
		vector.DrawFilledRect(screen, x, panelY+panelHeight-bar, 1, bar, panelBar, false)
	}
}

func drawStatus(screen *ebiten.Image, paused bool, err error) {
	status := "Drag to orbit, wheel to zoom, Space: pause, S: screenshot, Tab: stats, Esc/Q: quit"
	if paused {
		status = "Paused - " + status
	}
	if err != nil {
		status += " | Error: " + err.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, panelX, screen.Bounds().Dy()-20)
}
