package ui

// LoadingScreen covers the field at start-up, then fades out and is removed.
type LoadingScreen struct {
	hold int
	fade int
	tick int
}

// NewLoadingScreen stays opaque for hold ticks and fades over fade ticks.
func NewLoadingScreen(hold, fade int) *LoadingScreen {
	if hold < 0 {
		hold = 0
	}
	if fade < 0 {
		fade = 0
	}
	return &LoadingScreen{hold: hold, fade: fade}
}

// Update advances the screen by one tick.
func (s *LoadingScreen) Update() {
	if !s.Removed() {
		s.tick++
	}
}

// Alpha is the current cover opacity in [0, 1].
func (s *LoadingScreen) Alpha() float64 {
	if s.tick < s.hold {
		return 1
	}
	if s.fade == 0 {
		return 0
	}
	a := 1 - float64(s.tick-s.hold)/float64(s.fade)
	if a < 0 {
		return 0
	}
	return a
}

// Removed reports whether the screen is gone for good.
func (s *LoadingScreen) Removed() bool { return s.tick >= s.hold+s.fade }
