package theme

import (
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Fallback is used whenever a theme colour cannot be parsed.
var Fallback = color.NRGBA{R: 255, G: 0, B: 0, A: 255}

// Theme is one entry of the colour cycle. An empty Class is the default look
// with no override applied.
type Theme struct {
	Name  string `yaml:"name"`
	Class string `yaml:"class"`
	Color string `yaml:"color"`
}

// DefaultThemes returns the stock cycle: default red, then blue, green, gold.
func DefaultThemes() []Theme {
	return []Theme{
		{Name: "default", Class: "", Color: "#ff0000"},
		{Name: "blue", Class: "theme-blue", Color: "#3b82f6"},
		{Name: "green", Class: "theme-green", Color: "#22c55e"},
		{Name: "gold", Class: "theme-gold", Color: "#f5b301"},
	}
}

// Resolve parses the theme's colour. ok is false when the colour was
// malformed and Fallback was used instead.
func (t Theme) Resolve() (c color.NRGBA, ok bool) {
	return LookupHex(t.Color)
}

// ParseHex converts "#rgb" or "#rrggbb" (hash optional, any case) to an
// opaque colour. Malformed input yields Fallback.
func ParseHex(s string) color.NRGBA {
	c, _ := LookupHex(s)
	return c
}

// LookupHex is ParseHex that also reports whether s was well formed.
func LookupHex(s string) (color.NRGBA, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Fallback, false
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, true
}
