//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"
	"time"

	"dustfield/internal/app"
	"dustfield/internal/core"
	"dustfield/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Configure(flag.CommandLine, os.Args[1:])
	if err != nil {
		logger := logging.New(os.Stderr, "info", "dustfield")
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	logger := logging.New(os.Stderr, cfg.LogLevel, "dustfield")

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	driver, err := app.NewDriver(cfg, core.SystemClock{}, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to start")
	}
	game := app.New(driver, cfg)

	ebiten.SetWindowTitle("dustfield")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info().
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int64("seed", cfg.Seed).
		Msg("starting")

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal().Err(err).Msg("game loop failed")
	}
}
