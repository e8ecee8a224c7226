package colour

// ThemeType represents whether a theme is light-on-dark or dark-on-light.
type ThemeType int

const (
	// ThemeAuto detects the theme type from the weighted image lightness.
	ThemeAuto ThemeType = iota
	// ThemeDark is a dark theme (light text on dark background).
	ThemeDark
	// ThemeLight is a light theme (dark text on light background).
	ThemeLight
)

// String returns the string representation of a ThemeType.
func (t ThemeType) String() string {
	switch t {
	case ThemeDark:
		return "dark"
	case ThemeLight:
		return "light"
	case ThemeAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// MarshalText encodes a ThemeType as its lowercase name so serialised themes
// carry "dark"/"light" rather than enum ordinals.
func (t ThemeType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ParseThemeType parses "auto", "dark" or "light".
func ParseThemeType(s string) (ThemeType, bool) {
	switch s {
	case "auto":
		return ThemeAuto, true
	case "dark":
		return ThemeDark, true
	case "light":
		return ThemeLight, true
	}
	return ThemeAuto, false
}

// WeightedMeanLightness returns the frequency-weighted mean lightness of the
// analyzed colours. Weighting by cluster frequency prevents a visually minor
// but extreme-lightness cluster from flipping classification.
func WeightedMeanLightness(colors []AnalyzedColor) float64 {
	mean := 0.0
	for _, c := range colors {
		mean += c.Weight * c.Lightness
	}
	return mean
}

// ClassifyThemeType decides the Light/Dark classification for the analyzed
// colours. A forced type in the config wins outright, with no image
// dependency.
func ClassifyThemeType(colors []AnalyzedColor, cfg Config) ThemeType {
	if cfg.ForceThemeType == ThemeDark || cfg.ForceThemeType == ThemeLight {
		return cfg.ForceThemeType
	}

	if WeightedMeanLightness(colors) > cfg.LightDarkThreshold {
		return ThemeLight
	}
	return ThemeDark
}
