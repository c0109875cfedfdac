package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"time"

	"dustfield/internal/app"
	"dustfield/internal/core"
	"dustfield/internal/logging"
	"dustfield/internal/render"

	"github.com/rs/zerolog"
)

// Start of the manual clock; any fixed instant keeps runs reproducible.
var epoch = time.Unix(1_700_000_000, 0)

func main() {
	fs := flag.CommandLine
	ticks := fs.Int("ticks", 240, "number of ticks to simulate")
	out := fs.String("out", "dustfield.png", "output PNG path")
	every := fs.Int("activate-every", 0, "activate the logo every N ticks (0 disables)")
	logoX := fs.Float64("logo-x", 48, "logo centre x used for activations")
	logoY := fs.Float64("logo-y", 44, "logo centre y used for activations")
	pointer := fs.String("pointer", "", "pointer position as x,y (empty for none)")

	cfg, err := app.Configure(fs, os.Args[1:])
	if err != nil {
		logger := logging.New(os.Stderr, "info", "dustshot")
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	logger := logging.New(os.Stderr, cfg.LogLevel, "dustshot")

	if err := run(cfg, logger, *ticks, *every, *logoX, *logoY, *pointer, *out); err != nil {
		logger.Fatal().Err(err).Msg("snapshot failed")
	}
}

func run(cfg *app.Config, logger zerolog.Logger, ticks, every int, logoX, logoY float64, pointer, out string) error {
	clock := core.NewManualClock(epoch)
	driver, err := app.NewDriver(cfg, clock, logger)
	if err != nil {
		return err
	}
	if pointer != "" {
		var px, py float64
		if _, err := fmt.Sscanf(pointer, "%g,%g", &px, &py); err != nil {
			return fmt.Errorf("parse -pointer %q: %w", pointer, err)
		}
		driver.PointerMove(px, py)
	}

	raster := render.NewRaster(cfg.Width, cfg.Height, driver.Background())
	step := core.FrameDuration(cfg.TPS)
	for i := 0; i < ticks; i++ {
		if every > 0 && i%every == 0 {
			driver.ActivateLogo(logoX, logoY)
		}
		if err := driver.Tick(raster); err != nil {
			return err
		}
		clock.Advance(step)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	if err := png.Encode(f, raster.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", out, err)
	}

	stats := driver.Field().Stats()
	logger.Info().
		Str("out", out).
		Int("ticks", ticks).
		Int("particles", stats.Particles).
		Int("ripples", stats.Ripples).
		Str("theme", driver.Theme().Name).
		Msg("snapshot written")
	return nil
}
