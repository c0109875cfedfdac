package render

import (
	"image/color"

	"dustfield/internal/field"
)

// glowLayers is how many translucent rings stand in for a blur.
const glowLayers = 4

type glowRing struct {
	radius float64
	color  color.NRGBA
	alpha  float64
}

// appendGlowRings approximates a shadow blur around d, outermost ring first.
// The rings fade toward the edge and share the dot's opacity.
func appendGlowRings(dst []glowRing, d field.Dot) []glowRing {
	if d.Glow <= 0 || d.GlowColor.A == 0 {
		return dst
	}
	base := float64(d.GlowColor.A) / 255 * d.Alpha
	c := d.GlowColor
	c.A = 255
	for k := glowLayers; k >= 1; k-- {
		frac := float64(k) / glowLayers
		dst = append(dst, glowRing{
			radius: d.Radius + d.Glow*frac,
			color:  c,
			alpha:  base * (1 - frac + 1.0/glowLayers) / glowLayers,
		})
	}
	return dst
}

// dotColor folds the dot's opacity into its colour.
func dotColor(d field.Dot) color.NRGBA {
	c := d.Color
	a := d.Alpha
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	c.A = uint8(a*255 + 0.5)
	return c
}
