package ui

import (
	"image"
	"math"
)

// DefaultPopTicks is the length of the logo pop animation.
const DefaultPopTicks = 18

// Logo is the clickable header mark that cycles themes.
type Logo struct {
	rect     image.Rectangle
	pop      int
	popTicks int
}

// NewLogo places a logo in rect.
func NewLogo(rect image.Rectangle) *Logo {
	return &Logo{rect: rect, popTicks: DefaultPopTicks}
}

// Contains reports whether (x, y) hits the logo.
func (l *Logo) Contains(x, y int) bool {
	return pointInRect(x, y, l.rect)
}

// Center returns the logo's centre, where ripples start.
func (l *Logo) Center() (float64, float64) {
	return float64(l.rect.Min.X) + float64(l.rect.Dx())/2,
		float64(l.rect.Min.Y) + float64(l.rect.Dy())/2
}

// Activate restarts the pop animation.
func (l *Logo) Activate() { l.pop = l.popTicks }

// Update advances the pop animation by one tick.
func (l *Logo) Update() {
	if l.pop > 0 {
		l.pop--
	}
}

// Scale is the current draw scale: 1 at rest, swelling to 1.2 mid-pop.
func (l *Logo) Scale() float64 {
	if l.pop <= 0 || l.popTicks <= 0 {
		return 1
	}
	phase := 1 - float64(l.pop)/float64(l.popTicks)
	return 1 + 0.2*math.Sin(math.Pi*phase)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
