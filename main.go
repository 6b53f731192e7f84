package main

import (
	"context"
	"errors"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/box-cluster/internal/config"
	"github.com/iburimskiy/box-cluster/internal/game"
	"github.com/iburimskiy/box-cluster/internal/logger"
)

const windowTitle = "Box Cluster - drag to orbit, wheel to zoom, Space: pause, Esc/Q: quit"

func main() {
	log := logger.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), log)
	go func() {
		<-ctx.Done()
		g.Stop()
	}()

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("run: %v", err)
		_ = zenity.Error(err.Error(), zenity.Title("Box Cluster"), zenity.ErrorIcon)
		os.Exit(1)
	}
}
