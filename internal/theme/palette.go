// Package theme holds the light/dark modes and the colour palettes.
package theme

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Mode is the light/dark theme
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// DefaultMode is used when nothing was stored
const DefaultMode = Light

// DefaultPalette is the key used when nothing was stored
const DefaultPalette = "default"

// ParseMode accepts "light" or "dark"
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case Light, Dark:
		return Mode(s), true
	}
	return DefaultMode, false
}

// Toggle returns the other mode
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Colors is one palette rendered for one mode
type Colors struct {
	Accent        string
	AccentHover   string
	BgPrimary     string
	BgSecondary   string
	BgCard        string
	TextPrimary   string
	TextSecondary string
	TextMuted     string
	Border        string
	HoverBg       string
}

// CSSVar is one custom property of the exported page
type CSSVar struct {
	Name  string
	Value string
}

// Vars returns the colours as CSS custom properties, in a stable order
func (c Colors) Vars() []CSSVar {
	return []CSSVar{
		{"--accent-color", c.Accent},
		{"--accent-hover", c.AccentHover},
		{"--bg-primary", c.BgPrimary},
		{"--bg-secondary", c.BgSecondary},
		{"--bg-card", c.BgCard},
		{"--text-primary", c.TextPrimary},
		{"--text-secondary", c.TextSecondary},
		{"--text-muted", c.TextMuted},
		{"--border-color", c.Border},
		{"--hover-bg", c.HoverBg},
	}
}

// Selection returns the background used for the selected card: the accent
// mixed a quarter of the way into the card background
func (c Colors) Selection() string {
	accent, err := colorful.Hex(c.Accent)
	if err != nil {
		return c.HoverBg
	}
	card, err := colorful.Hex(c.BgCard)
	if err != nil {
		return c.HoverBg
	}
	return card.BlendLab(accent, 0.25).Clamped().Hex()
}

// Validate checks that every colour is a parseable hex triplet
func (c Colors) Validate() error {
	for _, v := range c.Vars() {
		if _, err := colorful.Hex(v.Value); err != nil {
			return fmt.Errorf("%s: %w", v.Name, err)
		}
	}
	return nil
}

// Palette is a named colour scheme with a light and a dark variant
type Palette struct {
	Key    string
	Name   string
	Swatch []string
	Light  Colors
	Dark   Colors
}

// For returns the palette's colours for mode
func (p Palette) For(mode Mode) Colors {
	if mode == Dark {
		return p.Dark
	}
	return p.Light
}

var palettes = []Palette{
	{
		Key:    "default",
		Name:   "Default",
		Swatch: []string{"#3b82f6", "#ffffff", "#f8fafc", "#1e293b"},
		Light: Colors{
			Accent: "#3b82f6", AccentHover: "#2563eb",
			BgPrimary: "#ffffff", BgSecondary: "#f8fafc", BgCard: "#ffffff",
			TextPrimary: "#1e293b", TextSecondary: "#64748b", TextMuted: "#94a3b8",
			Border: "#e2e8f0", HoverBg: "#f1f5f9",
		},
		Dark: Colors{
			Accent: "#3b82f6", AccentHover: "#2563eb",
			BgPrimary: "#0f172a", BgSecondary: "#1e293b", BgCard: "#1e293b",
			TextPrimary: "#f8fafc", TextSecondary: "#cbd5e1", TextMuted: "#94a3b8",
			Border: "#334155", HoverBg: "#334155",
		},
	},
	{
		Key:    "purple",
		Name:   "Purple",
		Swatch: []string{"#8b5cf6", "#ffffff", "#f3f4f6", "#1f2937"},
		Light: Colors{
			Accent: "#8b5cf6", AccentHover: "#7c3aed",
			BgPrimary: "#ffffff", BgSecondary: "#f9fafb", BgCard: "#ffffff",
			TextPrimary: "#1f2937", TextSecondary: "#6b7280", TextMuted: "#9ca3af",
			Border: "#e5e7eb", HoverBg: "#f3f4f6",
		},
		Dark: Colors{
			Accent: "#8b5cf6", AccentHover: "#7c3aed",
			BgPrimary: "#111827", BgSecondary: "#1f2937", BgCard: "#1f2937",
			TextPrimary: "#f9fafb", TextSecondary: "#d1d5db", TextMuted: "#9ca3af",
			Border: "#374151", HoverBg: "#374151",
		},
	},
	{
		Key:    "emerald",
		Name:   "Emerald",
		Swatch: []string{"#10b981", "#ffffff", "#f0fdf4", "#064e3b"},
		Light: Colors{
			Accent: "#10b981", AccentHover: "#059669",
			BgPrimary: "#ffffff", BgSecondary: "#f0fdf4", BgCard: "#ffffff",
			TextPrimary: "#064e3b", TextSecondary: "#047857", TextMuted: "#6b7280",
			Border: "#d1fae5", HoverBg: "#ecfdf5",
		},
		Dark: Colors{
			Accent: "#10b981", AccentHover: "#059669",
			BgPrimary: "#0f1b13", BgSecondary: "#1a2e20", BgCard: "#1a2e20",
			TextPrimary: "#ecfdf5", TextSecondary: "#a7f3d0", TextMuted: "#6ee7b7",
			Border: "#2d5a37", HoverBg: "#2d5a37",
		},
	},
	{
		Key:    "orange",
		Name:   "Orange",
		Swatch: []string{"#f97316", "#ffffff", "#fff7ed", "#9a3412"},
		Light: Colors{
			Accent: "#f97316", AccentHover: "#ea580c",
			BgPrimary: "#ffffff", BgSecondary: "#fff7ed", BgCard: "#ffffff",
			TextPrimary: "#9a3412", TextSecondary: "#c2410c", TextMuted: "#6b7280",
			Border: "#fed7aa", HoverBg: "#ffedd5",
		},
		Dark: Colors{
			Accent: "#f97316", AccentHover: "#ea580c",
			BgPrimary: "#1c1612", BgSecondary: "#2c1f15", BgCard: "#2c1f15",
			TextPrimary: "#ffedd5", TextSecondary: "#fdba74", TextMuted: "#fb923c",
			Border: "#431407", HoverBg: "#431407",
		},
	},
	{
		Key:    "monochrome",
		Name:   "Monochrome",
		Swatch: []string{"#000000", "#ffffff", "#f5f5f5", "#333333"},
		Light: Colors{
			Accent: "#000000", AccentHover: "#333333",
			BgPrimary: "#ffffff", BgSecondary: "#f8f9fa", BgCard: "#ffffff",
			TextPrimary: "#000000", TextSecondary: "#333333", TextMuted: "#666666",
			Border: "#e0e0e0", HoverBg: "#f5f5f5",
		},
		Dark: Colors{
			Accent: "#4a4a4a", AccentHover: "#666666",
			BgPrimary: "#000000", BgSecondary: "#1a1a1a", BgCard: "#1a1a1a",
			TextPrimary: "#ffffff", TextSecondary: "#cccccc", TextMuted: "#999999",
			Border: "#333333", HoverBg: "#333333",
		},
	},
}

// Palettes returns every palette in display order
func Palettes() []Palette {
	out := make([]Palette, len(palettes))
	copy(out, palettes)
	return out
}

// Lookup finds a palette by key
func Lookup(key string) (Palette, bool) {
	for _, p := range palettes {
		if p.Key == key {
			return p, true
		}
	}
	return Palette{}, false
}

// Resolve returns the palette for key, falling back to the default one
func Resolve(key string) Palette {
	if p, ok := Lookup(key); ok {
		return p
	}
	p, _ := Lookup(DefaultPalette)
	return p
}

// Index returns the position of key in display order, or 0
func Index(key string) int {
	for i, p := range palettes {
		if p.Key == key {
			return i
		}
	}
	return 0
}
