package app

import (
	"errors"
	"fmt"
	"image/color"

	"dustfield/internal/core"
	"dustfield/internal/field"
	"dustfield/internal/theme"

	"github.com/rs/zerolog"
)

// ErrStopped is returned by Tick once Stop has been called.
var ErrStopped = errors.New("animation stopped")

type backgroundSetter interface {
	SetBackground(color.NRGBA)
}

// Driver owns the animation state and runs one tick per frame. It has no
// window dependency so it can be driven headlessly.
type Driver struct {
	cfg   *Config
	clock core.Clock
	log   zerolog.Logger

	field  *field.Field
	themes *theme.Cycle
	size   core.Size

	background     color.NRGBA
	darkBackground color.NRGBA

	themePending  bool
	reducedMotion bool
	lightsOff     bool
	stopped       bool
	ticks         uint64
}

// NewDriver validates cfg and builds a driver sized to cfg.Width x cfg.Height.
func NewDriver(cfg *Config, clock core.Clock, logger zerolog.Logger) (*Driver, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if clock == nil {
		clock = core.SystemClock{}
	}
	d := &Driver{
		cfg:            cfg,
		clock:          clock,
		log:            logger,
		field:          field.New(cfg.FieldParams(), cfg.Seed),
		themes:         theme.NewCycle(cfg.Themes),
		background:     theme.ParseHex(cfg.Background),
		darkBackground: theme.ParseHex(cfg.LightsOffBackground),
		reducedMotion:  cfg.ReducedMotion,
		lightsOff:      cfg.LightsOff,
	}
	d.applyTheme()
	d.Resize(cfg.Width, cfg.Height)
	return d, nil
}

// Resize updates the viewport. The particle population is rebuilt only when
// the width crosses the density threshold.
func (d *Driver) Resize(w, h int) bool {
	next := core.Size{W: w, H: h}
	if next.Empty() || next == d.size {
		return false
	}
	d.size = next
	density := d.cfg.Density.For(w)
	rebuilt := d.field.Resize(float64(w), float64(h), density)
	if rebuilt {
		d.log.Info().
			Int("width", w).
			Int("height", h).
			Int("density", density).
			Msg("particle population rebuilt")
	}
	return rebuilt
}

// Tick runs one frame: apply any pending theme colour, clear, and unless
// reduced motion is on, advance and render the field.
func (d *Driver) Tick(c field.Canvas) error {
	if d.stopped {
		return ErrStopped
	}
	d.ticks++
	if d.themePending {
		d.applyTheme()
	}
	if bs, ok := c.(backgroundSetter); ok {
		bs.SetBackground(d.Background())
	}
	c.Clear()
	if d.reducedMotion {
		return nil
	}
	d.field.Advance(core.Seconds(d.clock))
	d.field.Render(c)
	return nil
}

// ActivateLogo cycles the theme and starts a ripple at the logo centre. The
// new theme colour is picked up on the next tick, after the theme switch has
// been drawn once.
func (d *Driver) ActivateLogo(cx, cy float64) {
	next := d.themes.Advance()
	d.themePending = true
	d.field.TriggerRipple(cx, cy)
	d.log.Debug().
		Str("theme", next.Name).
		Int("index", d.themes.Index()).
		Float64("x", cx).
		Float64("y", cy).
		Msg("logo activated")
}

func (d *Driver) applyTheme() {
	d.themePending = false
	cur := d.themes.Current()
	target, ok := cur.Resolve()
	if !ok {
		d.log.Warn().Str("theme", cur.Name).Str("color", cur.Color).Msg("unparseable theme colour, using fallback")
	}
	d.field.SetTarget(target)
}

// PointerMove records a pointer or touch position.
func (d *Driver) PointerMove(x, y float64) { d.field.SetPointer(x, y) }

// PointerLeave parks the pointer outside the viewport.
func (d *Driver) PointerLeave() { d.field.ClearPointer() }

// SetReducedMotion switches between animating and clear-only ticks.
func (d *Driver) SetReducedMotion(on bool) {
	if d.reducedMotion == on {
		return
	}
	d.reducedMotion = on
	d.log.Info().Bool("reduced_motion", on).Msg("motion preference changed")
}

// ReducedMotion reports whether ticks only clear.
func (d *Driver) ReducedMotion() bool { return d.reducedMotion }

// ToggleLights flips the dark background and returns the new state.
func (d *Driver) ToggleLights() bool {
	d.lightsOff = !d.lightsOff
	return d.lightsOff
}

// LightsOff reports whether the dark background is active.
func (d *Driver) LightsOff() bool { return d.lightsOff }

// Background returns the colour the canvas should clear to.
func (d *Driver) Background() color.NRGBA {
	if d.lightsOff {
		return d.darkBackground
	}
	return d.background
}

// Stop ends the loop; subsequent ticks return ErrStopped.
func (d *Driver) Stop() {
	if !d.stopped {
		d.log.Info().Uint64("ticks", d.ticks).Msg("animation stopped")
	}
	d.stopped = true
}

// Stopped reports whether Stop was called.
func (d *Driver) Stopped() bool { return d.stopped }

// Field exposes the simulator.
func (d *Driver) Field() *field.Field { return d.field }

// Theme returns the active theme.
func (d *Driver) Theme() theme.Theme { return d.themes.Current() }

// ThemeClasses returns the override classes of the active theme.
func (d *Driver) ThemeClasses() []string { return d.themes.Classes() }

// Size returns the current viewport.
func (d *Driver) Size() core.Size { return d.size }

// Ticks returns the number of ticks run so far.
func (d *Driver) Ticks() uint64 { return d.ticks }
