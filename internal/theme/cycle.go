package theme

// Cycle walks an ordered theme list, wrapping at the end.
type Cycle struct {
	themes []Theme
	idx    int
}

// NewCycle builds a cycle positioned on the first theme. An empty list falls
// back to DefaultThemes.
func NewCycle(themes []Theme) *Cycle {
	if len(themes) == 0 {
		themes = DefaultThemes()
	}
	return &Cycle{themes: append([]Theme(nil), themes...)}
}

// Advance moves to the next theme and returns it.
func (c *Cycle) Advance() Theme {
	c.idx = (c.idx + 1) % len(c.themes)
	return c.themes[c.idx]
}

// Current returns the active theme.
func (c *Cycle) Current() Theme { return c.themes[c.idx] }

// Index returns the cursor position.
func (c *Cycle) Index() int { return c.idx }

// Len returns the number of themes in the cycle.
func (c *Cycle) Len() int { return len(c.themes) }

// Classes returns the override classes that should be applied right now.
// Only the active theme's class is ever present; the default theme applies
// none.
func (c *Cycle) Classes() []string {
	if cls := c.themes[c.idx].Class; cls != "" {
		return []string{cls}
	}
	return nil
}
