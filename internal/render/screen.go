//go:build ebiten

package render

import (
	"image/color"

	"dustfield/internal/field"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Screen is a field.Canvas that draws onto an ebiten image. Bind it to the
// frame's screen before each render pass.
type Screen struct {
	dst   *ebiten.Image
	bg    color.NRGBA
	rings []glowRing
}

// NewScreen constructs a Screen that clears to bg.
func NewScreen(bg color.NRGBA) *Screen {
	return &Screen{bg: bg}
}

// Bind selects the image subsequent calls draw onto.
func (s *Screen) Bind(dst *ebiten.Image) { s.dst = dst }

// SetBackground changes the colour used by Clear.
func (s *Screen) SetBackground(c color.NRGBA) { s.bg = c }

// Clear fills the bound image with the background colour.
func (s *Screen) Clear() {
	if s.dst == nil {
		return
	}
	s.dst.Fill(s.bg)
}

// FillDot draws the dot's glow rings and then the dot with anti-aliasing.
func (s *Screen) FillDot(d field.Dot) {
	if s.dst == nil {
		return
	}
	s.rings = appendGlowRings(s.rings[:0], d)
	for _, g := range s.rings {
		c := g.color
		c.A = uint8(g.alpha*255 + 0.5)
		if c.A == 0 {
			continue
		}
		vector.DrawFilledCircle(s.dst, float32(d.X), float32(d.Y), float32(g.radius), c, true)
	}
	vector.DrawFilledCircle(s.dst, float32(d.X), float32(d.Y), float32(d.Radius), dotColor(d), true)
}
