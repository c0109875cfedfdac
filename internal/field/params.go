package field

import (
	"errors"
	"fmt"
	"image/color"
)

// Wind holds the three superposed oscillators that push particles sideways.
// Each term is phase-shifted by the particle's drift times the matching
// Phase factor.
type Wind struct {
	BaseFreq float64 `yaml:"base_freq"`
	BaseAmp  float64 `yaml:"base_amp"`

	NoiseFreq  float64 `yaml:"noise_freq"`
	NoisePhase float64 `yaml:"noise_phase"`
	NoiseAmp   float64 `yaml:"noise_amp"`

	GustFreq  float64 `yaml:"gust_freq"`
	GustPhase float64 `yaml:"gust_phase"`
	GustPower int     `yaml:"gust_power"`
	GustAmp   float64 `yaml:"gust_amp"`
}

// Params holds every tunable constant of the particle field.
type Params struct {
	Palette []color.NRGBA `yaml:"-"`

	InteractionRadius float64 `yaml:"interaction_radius"`
	RepelScale        float64 `yaml:"repel_scale"`

	RippleBand     float64 `yaml:"ripple_band"`
	RippleStrength float64 `yaml:"ripple_strength"`
	RippleSpeed    float64 `yaml:"ripple_speed"`
	RippleReach    float64 `yaml:"ripple_reach"`
	LifeDecay      float64 `yaml:"life_decay"`

	GlowThreshold float64 `yaml:"glow_threshold"`
	GlowBlur      float64 `yaml:"glow_blur"`
	GlowAlpha     float64 `yaml:"glow_alpha"`

	Damping          float64 `yaml:"damping"`
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`

	SpawnY       float64 `yaml:"spawn_y"`
	BottomMargin float64 `yaml:"bottom_margin"`
	SideMargin   float64 `yaml:"side_margin"`

	Wind Wind `yaml:"wind"`
}

// Violet and White are the two stock mote colours.
var (
	Violet = color.NRGBA{R: 0x27, G: 0x04, B: 0x34, A: 0xff}
	White  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// DefaultParams returns the standard tuning.
func DefaultParams() Params {
	return Params{
		Palette: []color.NRGBA{Violet, White},

		InteractionRadius: 100,
		RepelScale:        0.5,

		RippleBand:     100,
		RippleStrength: 50,
		RippleSpeed:    20,
		RippleReach:    1.5,
		LifeDecay:      0.85,

		GlowThreshold: 0.1,
		GlowBlur:      15,
		GlowAlpha:     0.8,

		Damping:          0.97,
		Gravity:          0.05,
		TerminalVelocity: 1,

		SpawnY:       -10,
		BottomMargin: 10,
		SideMargin:   50,

		Wind: Wind{
			BaseFreq: 0.7,
			BaseAmp:  0.015,

			NoiseFreq:  1.3,
			NoisePhase: 2,
			NoiseAmp:   0.01,

			GustFreq:  0.4,
			GustPhase: 5,
			GustPower: 9,
			GustAmp:   0.04,
		},
	}
}

// Validate reports the first invalid setting.
func (p Params) Validate() error {
	if len(p.Palette) == 0 {
		return errors.New("palette must not be empty")
	}
	if p.InteractionRadius < 0 {
		return fmt.Errorf("interaction radius %v is negative", p.InteractionRadius)
	}
	if p.RippleBand <= 0 {
		return fmt.Errorf("ripple band %v must be positive", p.RippleBand)
	}
	if p.RippleSpeed <= 0 {
		return fmt.Errorf("ripple speed %v must be positive", p.RippleSpeed)
	}
	if p.LifeDecay < 0 || p.LifeDecay >= 1 {
		return fmt.Errorf("life decay %v must be in [0, 1)", p.LifeDecay)
	}
	if p.Damping < 0 || p.Damping > 1 {
		return fmt.Errorf("damping %v must be in [0, 1]", p.Damping)
	}
	if p.Wind.GustPower < 9 || p.Wind.GustPower%2 == 0 {
		return fmt.Errorf("gust power %d must be odd and at least 9", p.Wind.GustPower)
	}
	return nil
}
