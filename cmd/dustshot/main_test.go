package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"dustfield/internal/app"

	"github.com/rs/zerolog"
)

func TestRunWritesSnapshot(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height = 160, 120
	cfg.Seed = 11
	out := filepath.Join(t.TempDir(), "shot.png")

	if err := run(cfg, zerolog.Nop(), 30, 10, 20, 20, "80,60", out); err != nil {
		t.Fatalf("run: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 120 {
		t.Fatalf("unexpected snapshot size %v", b)
	}
}

func TestRunRejectsBadPointer(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height = 40, 30
	if err := run(cfg, zerolog.Nop(), 1, 0, 0, 0, "nowhere", filepath.Join(t.TempDir(), "x.png")); err == nil {
		t.Fatal("expected error for malformed pointer")
	}
}

func TestRunWithZeroSeedIsReproducible(t *testing.T) {
	dir := t.TempDir()
	var shots [2][]byte
	for i := range shots {
		cfg := app.NewConfig()
		cfg.Width, cfg.Height = 80, 60
		out := filepath.Join(dir, "shot"+string(rune('a'+i))+".png")
		if err := run(cfg, zerolog.Nop(), 20, 0, 0, 0, "", out); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatalf("read %s: %v", out, err)
		}
		shots[i] = data
	}
	if !bytes.Equal(shots[0], shots[1]) {
		t.Fatal("seed 0 should produce the same snapshot on every run")
	}
}
