//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws a debugging stats panel on top of the field. F3 toggles it.
type Overlay struct {
	visible bool
	status  Status
}

// NewOverlay constructs a hidden overlay.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// Update handles the toggle key and stores the latest status.
func (o *Overlay) Update(status Status) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		o.visible = !o.visible
	}
	o.status = status
}

// Draw renders the panel onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	vector.DrawFilledRect(screen, 4, 4, 300, 420, color.RGBA{R: 16, G: 16, B: 20, A: 200}, false)
	ebitenutil.DebugPrintAt(screen, o.status.Format(), 10, 8)
}
