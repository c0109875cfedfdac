package theme

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
	}{
		{"#270434", color.NRGBA{R: 39, G: 4, B: 52, A: 255}},
		{"ffffff", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"#F5B301", color.NRGBA{R: 245, G: 179, B: 1, A: 255}},
		{"#0f0", color.NRGBA{R: 0, G: 255, B: 0, A: 255}},
		{"A8C", color.NRGBA{R: 0xaa, G: 0x88, B: 0xcc, A: 255}},
		{"  #3b82f6 ", color.NRGBA{R: 59, G: 130, B: 246, A: 255}},
		{"", Fallback},
		{"#12345", Fallback},
		{"#zzzzzz", Fallback},
		{"rgb(1,2,3)", Fallback},
		{"##0f0", Fallback},
		{"#+f0", Fallback},
	}
	for _, tc := range cases {
		if got := ParseHex(tc.in); got != tc.want {
			t.Fatalf("ParseHex(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCycleWrapsAfterFourActivations(t *testing.T) {
	c := NewCycle(DefaultThemes())
	start := c.Current()
	if c.Index() != 0 || len(c.Classes()) != 0 {
		t.Fatalf("expected default theme with no classes, got index %d classes %v", c.Index(), c.Classes())
	}

	seen := map[string]bool{}
	for i := 0; i < 4; i++ {
		th := c.Advance()
		seen[th.Name] = true
		if i < 3 {
			classes := c.Classes()
			if len(classes) != 1 || classes[0] != th.Class {
				t.Fatalf("activation %d: expected exclusive class %q, got %v", i+1, th.Class, classes)
			}
		}
	}
	if len(seen) != 4 {
		t.Fatalf("expected to visit 4 distinct themes, saw %v", seen)
	}
	if c.Index() != 0 || c.Current() != start {
		t.Fatalf("expected to return to %v after four activations, got %v (index %d)", start, c.Current(), c.Index())
	}
	if len(c.Classes()) != 0 {
		t.Fatalf("default theme should clear override classes, got %v", c.Classes())
	}
}

func TestNewCycleEmptyFallsBackToDefaults(t *testing.T) {
	c := NewCycle(nil)
	if c.Len() != len(DefaultThemes()) {
		t.Fatalf("expected %d themes, got %d", len(DefaultThemes()), c.Len())
	}
}

func TestResolveReportsMalformed(t *testing.T) {
	if c, ok := (Theme{Color: "#22c55e"}).Resolve(); !ok || c.G != 0xc5 {
		t.Fatalf("expected green to resolve, got %v ok=%v", c, ok)
	}
	if c, ok := (Theme{Color: "var(--red)"}).Resolve(); ok || c != Fallback {
		t.Fatalf("expected fallback for malformed colour, got %v ok=%v", c, ok)
	}
}
