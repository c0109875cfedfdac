//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Draw paints the logo as a ring in the active theme colour.
func (l *Logo) Draw(screen *ebiten.Image, accent color.NRGBA) {
	cx, cy := l.Center()
	r := float64(min(l.rect.Dx(), l.rect.Dy())) / 2 * l.Scale()
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), accent, true)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r*0.62), color.RGBA{R: 13, G: 6, B: 18, A: 255}, true)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r*0.3), accent, true)
}

// Draw covers the screen with bg at the current fade opacity.
func (s *LoadingScreen) Draw(screen *ebiten.Image, bg color.NRGBA) {
	a := s.Alpha()
	if a <= 0 {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	cover := bg
	cover.A = uint8(a*255 + 0.5)
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), cover, false)

	const caption = "loading"
	face := basicfont.Face7x13
	bounds := text.BoundString(face, caption)
	fg := color.NRGBA{R: 230, G: 230, B: 240, A: cover.A}
	text.Draw(screen, caption, face, (w-bounds.Dx())/2, (h+bounds.Dy())/2, fg)
}
