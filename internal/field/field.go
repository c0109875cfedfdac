package field

import (
	"image/color"
	"math"

	"dustfield/internal/core"
	"dustfield/internal/theme"
)

// PointerIdle is the pointer coordinate used when nothing is hovering. It is
// far enough outside the viewport that no particle is ever repelled.
const PointerIdle = -1000.0

// Field owns the particle population, the active ripples, the pointer and
// the colour that rippled particles blend toward.
type Field struct {
	params Params
	rng    *core.RNG

	w, h    float64
	density int

	particles []Particle
	ripples   []Ripple

	pointerX, pointerY float64
	target             color.NRGBA
}

// New creates an empty field. Call Init or Resize to populate it.
func New(params Params, seed int64) *Field {
	if len(params.Palette) == 0 {
		params.Palette = DefaultParams().Palette
	}
	return &Field{
		params:   params,
		rng:      core.NewRNG(seed),
		pointerX: PointerIdle,
		pointerY: PointerIdle,
		target:   theme.Fallback,
	}
}

// Init sets the viewport and rebuilds the population with density particles
// scattered over the whole viewport.
func (f *Field) Init(width, height float64, density int) {
	if density < 0 {
		density = 0
	}
	f.w, f.h = width, height
	f.density = density
	if cap(f.particles) >= density {
		f.particles = f.particles[:density]
	} else {
		f.particles = make([]Particle, density)
	}
	for i := range f.particles {
		f.spawn(&f.particles[i], true)
	}
}

// Resize updates the viewport bounds. The population is only rebuilt when
// the density changes; it reports whether that happened.
func (f *Field) Resize(width, height float64, density int) bool {
	f.w, f.h = width, height
	if density == f.density && f.particles != nil {
		return false
	}
	f.Init(width, height, density)
	return true
}

// SetPointer records the current interaction coordinate.
func (f *Field) SetPointer(x, y float64) {
	f.pointerX, f.pointerY = x, y
}

// ClearPointer parks the pointer at PointerIdle.
func (f *Field) ClearPointer() {
	f.pointerX, f.pointerY = PointerIdle, PointerIdle
}

// Pointer returns the current interaction coordinate.
func (f *Field) Pointer() (float64, float64) { return f.pointerX, f.pointerY }

// SetTarget changes the colour rippled particles blend toward.
func (f *Field) SetTarget(c color.NRGBA) { f.target = c }

// Target returns the current blend target.
func (f *Field) Target() color.NRGBA { return f.target }

// TriggerRipple starts a new wave at (x, y).
func (f *Field) TriggerRipple(x, y float64) {
	f.ripples = append(f.ripples, Ripple{
		X:         x,
		Y:         y,
		MaxRadius: math.Max(f.w, f.h) * f.params.RippleReach,
		Speed:     f.params.RippleSpeed,
		Strength:  f.params.RippleStrength,
	})
}

// Particles exposes the population. Callers must not change its length.
func (f *Field) Particles() []Particle { return f.particles }

// Ripples exposes the active waves.
func (f *Field) Ripples() []Ripple { return f.ripples }

// Size returns the viewport dimensions.
func (f *Field) Size() (float64, float64) { return f.w, f.h }

// Density returns the current population size.
func (f *Field) Density() int { return f.density }

// Params returns the tuning in use.
func (f *Field) Params() Params { return f.params }

// Advance moves the simulation forward one frame. t is wall time in seconds
// and only feeds the wind oscillators.
func (f *Field) Advance(t float64) {
	kept := f.ripples[:0]
	for _, r := range f.ripples {
		r.Radius += r.Speed
		if r.Radius >= r.MaxRadius {
			continue
		}
		kept = append(kept, r)
	}
	f.ripples = kept

	for i := range f.particles {
		f.step(&f.particles[i], t)
	}
}

func (f *Field) step(p *Particle, t float64) {
	prm := &f.params

	p.DX, p.DY = 0, 0
	p.RippleLife *= prm.LifeDecay

	f.repel(p)
	f.applyRipples(p)

	p.VX += prm.Wind.At(t, p.Drift)

	p.X += p.VX
	p.Y += p.VY
	p.VX *= prm.Damping
	p.VY *= prm.Damping
	if p.VY < prm.TerminalVelocity {
		p.VY += prm.Gravity
	}

	if p.Y > f.h+prm.BottomMargin || p.X < -prm.SideMargin || p.X > f.w+prm.SideMargin {
		f.spawn(p, false)
	}
}

func (f *Field) repel(p *Particle) {
	radius := f.params.InteractionRadius
	dx := p.X - f.pointerX
	dy := p.Y - f.pointerY
	distSq := dx*dx + dy*dy
	if distSq >= radius*radius || distSq == 0 {
		return
	}
	dist := math.Sqrt(distSq)
	force := (radius - dist) / radius * f.params.RepelScale
	p.VX += dx / dist * force
	p.VY += dy / dist * force
}

func (f *Field) applyRipples(p *Particle) {
	band := f.params.RippleBand
	for i := range f.ripples {
		r := &f.ripples[i]
		rx := p.X - r.X
		ry := p.Y - r.Y
		dist := math.Hypot(rx, ry)
		diff := dist - r.Radius
		if math.Abs(diff) >= band {
			continue
		}
		p.RippleLife = 1
		if dist == 0 {
			continue
		}
		wave := math.Cos(diff / band * (math.Pi / 2))
		shift := wave * r.Strength
		p.DX += rx / dist * shift
		p.DY += ry / dist * shift
	}
}

// At returns the horizontal wind impulse for a particle with the given drift
// at time t.
func (w Wind) At(t, drift float64) float64 {
	base := math.Sin(t*w.BaseFreq+drift) * w.BaseAmp
	noise := math.Cos(t*w.NoiseFreq+drift*w.NoisePhase) * w.NoiseAmp
	gust := ipow(math.Sin(t*w.GustFreq+drift*w.GustPhase), w.GustPower) * w.GustAmp
	return base + noise + gust
}

// ipow raises x to the non-negative integer power n.
func ipow(x float64, n int) float64 {
	out := 1.0
	for i := 0; i < n; i++ {
		out *= x
	}
	return out
}
