package ui

import (
	"fmt"
	"strings"

	"dustfield/internal/core"
	"dustfield/internal/field"
)

// Status is what the overlay shows.
type Status struct {
	TPS           float64
	FPS           float64
	Stats         field.Stats
	Theme         string
	ReducedMotion bool
	LightsOff     bool
	Params        core.ParameterSnapshot
}

// Format renders s as the overlay's text block.
func (s Status) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "TPS %0.1f  FPS %0.1f\n", s.TPS, s.FPS)
	fmt.Fprintf(&b, "%0.fx%0.f  particles %d  ripples %d  glowing %d\n",
		s.Stats.Width, s.Stats.Height, s.Stats.Particles, s.Stats.Ripples, s.Stats.Glowing)
	fmt.Fprintf(&b, "theme %s  reduced motion %v  lights off %v\n", s.Theme, s.ReducedMotion, s.LightsOff)
	for _, g := range s.Params.Groups {
		fmt.Fprintf(&b, "\n[%s]\n", g.Name)
		for _, p := range g.Params {
			fmt.Fprintf(&b, "  %s: %s\n", p.Label, p.Value)
		}
	}
	return b.String()
}
