package field

import (
	"image/color"
	"math"
)

// Dot is one filled circle ready to be drawn.
type Dot struct {
	X, Y   float64
	Radius float64
	Color  color.NRGBA
	Alpha  float64

	// Glow is the blur radius in pixels; zero means no glow.
	Glow      float64
	GlowColor color.NRGBA
}

// Canvas is a 2D raster surface the field can draw onto.
type Canvas interface {
	Clear()
	FillDot(d Dot)
}

// Render draws every particle in insertion order. It does not clear.
func (f *Field) Render(c Canvas) {
	for i := range f.particles {
		c.FillDot(f.dot(&f.particles[i]))
	}
}

func (f *Field) dot(p *Particle) Dot {
	life := clamp01(p.RippleLife)
	d := Dot{
		X:      p.X + p.DX,
		Y:      p.Y + p.DY,
		Radius: p.Radius,
		Color:  Blend(p.Base, f.target, life),
		Alpha:  p.Alpha,
	}
	if p.RippleLife > f.params.GlowThreshold {
		d.Glow = f.params.GlowBlur * life
		d.GlowColor = f.target
		d.GlowColor.A = uint8(math.Round(life * 255))
		d.Alpha = math.Max(p.Alpha, life*f.params.GlowAlpha)
	}
	return d
}

// Blend linearly interpolates each RGB channel from base toward target by
// t, rounding to the nearest integer. The result is opaque.
func Blend(base, target color.NRGBA, t float64) color.NRGBA {
	t = clamp01(t)
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return color.NRGBA{
		R: mix(base.R, target.R),
		G: mix(base.G, target.G),
		B: mix(base.B, target.B),
		A: 255,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
