package model

import "strings"

// Theme names a document style preset.
type Theme string

const (
	ThemeClassic    Theme = "Classic"
	ThemeModern     Theme = "Modern"
	ThemeMinimalist Theme = "Minimalist"
)

// Font size bounds in points.
const (
	MinFontSize     = 10
	MaxFontSize     = 20
	DefaultFontSize = 12
)

// Experience entry bounds.
const (
	MinExperiences = 1
	MaxExperiences = 10
)

// Themes lists every supported theme in display order.
var Themes = []Theme{ThemeClassic, ThemeModern, ThemeMinimalist}

// Options holds presentation settings for the generated document.
type Options struct {
	Theme    Theme `json:"theme" validate:"omitempty,oneof=Classic Modern Minimalist"`
	FontSize int   `json:"fontSize" validate:"omitempty,min=10,max=20"`
}

// WithDefaults fills unset fields from def, then from the package defaults.
func (o Options) WithDefaults(def Options) Options {
	if o.Theme == "" {
		o.Theme = def.Theme
	}
	if o.Theme == "" {
		o.Theme = ThemeClassic
	}
	if o.FontSize == 0 {
		o.FontSize = def.FontSize
	}
	if o.FontSize == 0 {
		o.FontSize = DefaultFontSize
	}
	return o
}

// ParseTheme matches a theme name case-insensitively.
func ParseTheme(raw string) (Theme, bool) {
	for _, t := range Themes {
		if strings.EqualFold(strings.TrimSpace(raw), string(t)) {
			return t, true
		}
	}
	return "", false
}
