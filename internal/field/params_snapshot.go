package field

import (
	"fmt"
	"strconv"

	"dustfield/internal/core"
)

// Stats is a cheap summary of the field for overlays and logs.
type Stats struct {
	Particles int
	Ripples   int
	Glowing   int
	Width     float64
	Height    float64
}

// Stats counts the current population.
func (f *Field) Stats() Stats {
	s := Stats{Particles: len(f.particles), Ripples: len(f.ripples), Width: f.w, Height: f.h}
	for i := range f.particles {
		if f.particles[i].RippleLife > f.params.GlowThreshold {
			s.Glowing++
		}
	}
	return s
}

// Parameters reports the tuning grouped for display.
func (f *Field) Parameters() core.ParameterSnapshot {
	p := f.params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Viewport",
			Params: []core.Parameter{
				floatParam("width", "Width", f.w),
				floatParam("height", "Height", f.h),
				intParam("density", "Density", f.density),
				colorParam("target", "Target colour", f.target.R, f.target.G, f.target.B),
			},
		},
		{
			Name: "Pointer",
			Params: []core.Parameter{
				floatParam("interaction_radius", "Interaction radius", p.InteractionRadius),
				floatParam("repel_scale", "Repel scale", p.RepelScale),
			},
		},
		{
			Name: "Ripple",
			Params: []core.Parameter{
				floatParam("ripple_band", "Band width", p.RippleBand),
				floatParam("ripple_strength", "Strength", p.RippleStrength),
				floatParam("ripple_speed", "Speed", p.RippleSpeed),
				floatParam("ripple_reach", "Reach", p.RippleReach),
				floatParam("life_decay", "Life decay", p.LifeDecay),
				floatParam("glow_threshold", "Glow threshold", p.GlowThreshold),
			},
		},
		{
			Name: "Motion",
			Params: []core.Parameter{
				floatParam("damping", "Damping", p.Damping),
				floatParam("gravity", "Gravity", p.Gravity),
				floatParam("terminal_velocity", "Terminal velocity", p.TerminalVelocity),
				intParam("gust_power", "Gust power", p.Wind.GustPower),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func colorParam(key, label string, r, g, b uint8) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: fmt.Sprintf("#%02x%02x%02x", r, g, b)}
}
