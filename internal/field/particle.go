package field

import "image/color"

// Particle is one dust mote. Particles live in a contiguous slice and are
// respawned in place; they are never removed.
type Particle struct {
	X, Y   float64
	VX, VY float64

	Base   color.NRGBA
	Radius float64
	Alpha  float64
	Drift  float64

	// DX, DY is the ripple displacement for the current frame only.
	DX, DY float64
	// RippleLife is 1 right after a ripple passes and decays toward 0.
	RippleLife float64
}

// Ripple is one expanding circular wave.
type Ripple struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Speed     float64
	Strength  float64
}

func (f *Field) spawn(p *Particle, scatter bool) {
	p.X = f.rng.Float64() * f.w
	if scatter {
		p.Y = f.rng.Float64() * f.h
	} else {
		p.Y = f.params.SpawnY
	}
	p.VX = (f.rng.Float64() - 0.5) * 0.5
	p.VY = f.rng.Range(0.2, 0.8)
	p.Radius = f.rng.Range(1, 1.5)
	p.Base = f.params.Palette[f.rng.IntN(len(f.params.Palette))]
	p.Alpha = f.rng.Range(0.1, 0.3)
	p.Drift = f.rng.Float64()
	p.DX, p.DY = 0, 0
	p.RippleLife = 0
}
