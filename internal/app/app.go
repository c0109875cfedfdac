//go:build ebiten

package app

import (
	"image"

	"dustfield/internal/render"
	"dustfield/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Driver to the ebiten.Game interface.
type Game struct {
	driver  *Driver
	screen  *render.Screen
	logo    *ui.Logo
	loading *ui.LoadingScreen
	overlay *ui.Overlay

	touchIDs   []ebiten.TouchID
	touching   bool
	lastCursor image.Point
}

// New constructs a Game for the provided driver.
func New(driver *Driver, cfg *Config) *Game {
	return &Game{
		driver:     driver,
		screen:     render.NewScreen(driver.Background()),
		logo:       ui.NewLogo(image.Rect(24, 20, 72, 68)),
		loading:    ui.NewLoadingScreen(cfg.Ticks(cfg.Loading.Hold), cfg.Ticks(cfg.Loading.Fade)),
		overlay:    ui.NewOverlay(),
		lastCursor: image.Pt(-1, -1),
	}
}

// Update handles input between frames.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.driver.Stop()
	}
	if g.driver.Stopped() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.driver.ToggleLights()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.driver.SetReducedMotion(!g.driver.ReducedMotion())
	}

	g.updatePointer()
	g.logo.Update()
	g.loading.Update()
	g.overlay.Update(ui.Status{
		TPS:           ebiten.ActualTPS(),
		FPS:           ebiten.ActualFPS(),
		Stats:         g.driver.Field().Stats(),
		Theme:         g.driver.Theme().Name,
		ReducedMotion: g.driver.ReducedMotion(),
		LightsOff:     g.driver.LightsOff(),
		Params:        g.driver.Field().Parameters(),
	})
	return nil
}

func (g *Game) updatePointer() {
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) > 0 {
		x, y := ebiten.TouchPosition(g.touchIDs[0])
		g.driver.PointerMove(float64(x), float64(y))
		g.touching = true
		for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
			if tx, ty := ebiten.TouchPosition(id); g.logo.Contains(tx, ty) {
				g.activateLogo()
			}
		}
		return
	}
	if g.touching {
		g.touching = false
		g.driver.PointerLeave()
	}

	x, y := ebiten.CursorPosition()
	cur := image.Pt(x, y)
	if cur != g.lastCursor {
		g.lastCursor = cur
		size := g.driver.Size()
		if cur.In(image.Rect(0, 0, size.W, size.H)) {
			g.driver.PointerMove(float64(x), float64(y))
		} else {
			g.driver.PointerLeave()
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.logo.Contains(x, y) {
		g.activateLogo()
	}
}

func (g *Game) activateLogo() {
	cx, cy := g.logo.Center()
	g.logo.Activate()
	g.driver.ActivateLogo(cx, cy)
}

// Draw runs one animation tick onto the screen and paints the widgets.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Bind(screen)
	if err := g.driver.Tick(g.screen); err != nil {
		return
	}
	g.logo.Draw(screen, g.driver.Field().Target())
	g.loading.Draw(screen, g.driver.Background())
	g.overlay.Draw(screen)
}

// Layout tracks the window size so the field always fills it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.driver.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
