package app

import (
	"errors"
	"image/color"
	"testing"
	"time"

	"dustfield/internal/core"
	"dustfield/internal/field"
	"dustfield/internal/theme"

	"github.com/rs/zerolog"
)

type recordingCanvas struct {
	clears int
	dots   int
	bg     color.NRGBA
}

func (r *recordingCanvas) Clear() {
	r.clears++
}

func (r *recordingCanvas) FillDot(field.Dot) {
	r.dots++
}

func (r *recordingCanvas) SetBackground(c color.NRGBA) {
	r.bg = c
}

func newTestDriver(t *testing.T, w, h int) (*Driver, *core.ManualClock) {
	t.Helper()
	cfg := NewConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Seed = 3
	clock := core.NewManualClock(time.Unix(1_700_000_000, 0))
	d, err := NewDriver(cfg, clock, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	return d, clock
}

func TestDensityTiers(t *testing.T) {
	narrow, _ := newTestDriver(t, 500, 700)
	if got := len(narrow.Field().Particles()); got != 180 {
		t.Fatalf("width 500: expected 180 particles, got %d", got)
	}
	wide, _ := newTestDriver(t, 1200, 700)
	if got := len(wide.Field().Particles()); got != 1000 {
		t.Fatalf("width 1200: expected 1000 particles, got %d", got)
	}

	if !wide.Resize(500, 700) {
		t.Fatal("crossing the threshold should rebuild")
	}
	if got := len(wide.Field().Particles()); got != 180 {
		t.Fatalf("after shrinking expected 180 particles, got %d", got)
	}
	if !wide.Resize(800, 700) {
		t.Fatal("width equal to threshold belongs to the high tier")
	}
	if got := len(wide.Field().Particles()); got != 1000 {
		t.Fatalf("at threshold expected 1000 particles, got %d", got)
	}
}

func TestResizeWithinTierKeepsPopulation(t *testing.T) {
	d, _ := newTestDriver(t, 500, 400)
	before := d.Field().Particles()[0]
	if d.Resize(620, 480) {
		t.Fatal("resize within the low tier must not rebuild")
	}
	if d.Field().Particles()[0] != before {
		t.Fatal("population was reset by a same-tier resize")
	}
	if d.Size() != (core.Size{W: 620, H: 480}) {
		t.Fatalf("size not updated: %+v", d.Size())
	}
	if d.Resize(0, 480) {
		t.Fatal("degenerate size must be ignored")
	}
}

func TestTickAdvancesAndRenders(t *testing.T) {
	d, clock := newTestDriver(t, 500, 400)
	var c recordingCanvas
	before := d.Field().Particles()[0]
	for i := 0; i < 3; i++ {
		if err := d.Tick(&c); err != nil {
			t.Fatalf("Tick: %v", err)
		}
		clock.Advance(core.FrameDuration(60))
	}
	if c.clears != 3 || c.dots != 3*180 {
		t.Fatalf("expected 3 clears and %d dots, got %d and %d", 3*180, c.clears, c.dots)
	}
	if d.Field().Particles()[0] == before {
		t.Fatal("particles did not move")
	}
	if d.Ticks() != 3 {
		t.Fatalf("expected 3 ticks, got %d", d.Ticks())
	}
}

func TestReducedMotionClearsOnly(t *testing.T) {
	d, _ := newTestDriver(t, 500, 400)
	d.SetReducedMotion(true)
	before := append([]field.Particle(nil), d.Field().Particles()...)

	var c recordingCanvas
	for i := 0; i < 5; i++ {
		if err := d.Tick(&c); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
	if c.clears != 5 || c.dots != 0 {
		t.Fatalf("reduced motion should only clear: clears=%d dots=%d", c.clears, c.dots)
	}
	for i, p := range d.Field().Particles() {
		if p != before[i] {
			t.Fatalf("particle %d moved under reduced motion", i)
		}
	}

	d.SetReducedMotion(false)
	if err := d.Tick(&c); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if c.dots != 180 {
		t.Fatalf("animation should resume, got %d dots", c.dots)
	}
}

func TestActivateLogoCyclesThemeAndDefersColour(t *testing.T) {
	d, _ := newTestDriver(t, 1200, 800)
	red := d.Field().Target()
	if red != theme.Fallback {
		t.Fatalf("default theme should target red, got %v", red)
	}

	d.ActivateLogo(100, 100)
	if got := len(d.Field().Ripples()); got != 1 {
		t.Fatalf("expected one ripple, got %d", got)
	}
	if d.Theme().Class != "theme-blue" {
		t.Fatalf("expected blue theme, got %+v", d.Theme())
	}
	if d.Field().Target() != red {
		t.Fatal("target colour must not change before the next tick")
	}

	var c recordingCanvas
	if err := d.Tick(&c); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	blue := theme.ParseHex("#3b82f6")
	if d.Field().Target() != blue {
		t.Fatalf("expected blue target after tick, got %v", d.Field().Target())
	}

	for i := 0; i < 3; i++ {
		d.ActivateLogo(100, 100)
	}
	if err := d.Tick(&c); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if d.Theme().Name != "default" || len(d.ThemeClasses()) != 0 {
		t.Fatalf("four activations should wrap to default, got %+v classes %v", d.Theme(), d.ThemeClasses())
	}
	if d.Field().Target() != red {
		t.Fatalf("expected red target after wrapping, got %v", d.Field().Target())
	}
}

func TestMalformedThemeColourFallsBack(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 400, 300
	cfg.Themes = []theme.Theme{
		{Name: "default", Color: "#00ff00"},
		{Name: "broken", Class: "theme-broken", Color: "not-a-colour"},
	}
	d, err := NewDriver(cfg, core.NewManualClock(time.Unix(0, 0)), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	d.ActivateLogo(0, 0)
	var c recordingCanvas
	if err := d.Tick(&c); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if d.Field().Target() != theme.Fallback {
		t.Fatalf("expected fallback red, got %v", d.Field().Target())
	}
}

func TestNewDriverRejectsMalformedBackground(t *testing.T) {
	cfg := NewConfig()
	cfg.Background = "#0d061"
	if _, err := NewDriver(cfg, core.NewManualClock(time.Unix(0, 0)), zerolog.Nop()); err == nil {
		t.Fatal("expected an error for a five-digit background colour")
	}
}

func TestLightsToggleChangesBackground(t *testing.T) {
	d, _ := newTestDriver(t, 400, 300)
	var c recordingCanvas
	if err := d.Tick(&c); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	lit := c.bg
	if !d.ToggleLights() {
		t.Fatal("expected lights off after toggle")
	}
	if err := d.Tick(&c); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if c.bg == lit || c.bg != (color.NRGBA{A: 255}) {
		t.Fatalf("expected black background with lights off, got %v", c.bg)
	}
}

func TestPointerLeaveParksPointer(t *testing.T) {
	d, _ := newTestDriver(t, 400, 300)
	d.PointerMove(20, 30)
	if x, y := d.Field().Pointer(); x != 20 || y != 30 {
		t.Fatalf("pointer not recorded: (%f,%f)", x, y)
	}
	d.PointerLeave()
	if x, y := d.Field().Pointer(); x != field.PointerIdle || y != field.PointerIdle {
		t.Fatalf("pointer not parked: (%f,%f)", x, y)
	}
}

func TestStopEndsLoop(t *testing.T) {
	d, _ := newTestDriver(t, 400, 300)
	d.Stop()
	if !d.Stopped() {
		t.Fatal("Stopped should report true")
	}
	var c recordingCanvas
	if err := d.Tick(&c); !errors.Is(err, ErrStopped) {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
	if c.clears != 0 {
		t.Fatal("stopped driver must not draw")
	}
}

func TestNewDriverRejectsInvalidConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.TPS = 0
	if _, err := NewDriver(cfg, nil, zerolog.Nop()); err == nil {
		t.Fatal("expected error for zero tps")
	}
}
