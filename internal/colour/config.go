package colour

// Config holds configuration for theme generation. All fields have working
// defaults; the zero value is not usable, start from DefaultConfig.
// A Config is immutable for the duration of one pipeline run.
type Config struct {
	// ColorCount is the target number of representative colours to extract.
	ColorCount uint

	// LightDarkThreshold is the weighted mean lightness above which a theme
	// is classified Light. Deliberately above 0.5: terminal themes are
	// conventionally biased towards Dark unless the image is clearly bright.
	LightDarkThreshold float64

	// SaturationThreshold is the minimum saturation for a colour to count as
	// an accent candidate.
	SaturationThreshold float64

	// MinContrastDelta is the minimum acceptable lightness gap between text
	// roles and the background. Failing it is a quality degradation, not an
	// error: the best available candidate is used.
	MinContrastDelta float64

	// ForceThemeType overrides light/dark classification when set to
	// ThemeDark or ThemeLight. ThemeAuto means classify from the image.
	ForceThemeType ThemeType

	// ThemeNamePrefix is prepended to the generated theme name.
	ThemeNamePrefix string

	// ThemeName, when non-empty, is used verbatim instead of a generated name.
	ThemeName string

	// BackgroundOverride, when set, is used verbatim as the background colour
	// and never enters the candidate pools.
	BackgroundOverride *RGB
}

// Default configuration values.
const (
	DefaultColorCount          = 16
	DefaultLightDarkThreshold  = 0.7
	DefaultSaturationThreshold = 0.4
	DefaultMinContrastDelta    = 0.3
	DefaultThemeNamePrefix     = "image"
)

// DefaultConfig returns the default theme generation configuration.
func DefaultConfig() Config {
	return Config{
		ColorCount:          DefaultColorCount,
		LightDarkThreshold:  DefaultLightDarkThreshold,
		SaturationThreshold: DefaultSaturationThreshold,
		MinContrastDelta:    DefaultMinContrastDelta,
		ForceThemeType:      ThemeAuto,
		ThemeNamePrefix:     DefaultThemeNamePrefix,
	}
}

// Validate checks the configuration. It runs eagerly, before any pixel
// processing.
func (c Config) Validate() error {
	if c.ColorCount == 0 {
		return &InvalidConfigError{Field: "color_count", Value: c.ColorCount, Reason: "must be at least 1"}
	}
	if c.LightDarkThreshold < 0 || c.LightDarkThreshold > 1 {
		return &InvalidConfigError{Field: "light_dark_threshold", Value: c.LightDarkThreshold, Reason: "must be in [0, 1]"}
	}
	if c.SaturationThreshold < 0 || c.SaturationThreshold > 1 {
		return &InvalidConfigError{Field: "saturation_threshold", Value: c.SaturationThreshold, Reason: "must be in [0, 1]"}
	}
	if c.MinContrastDelta < 0 || c.MinContrastDelta > 1 {
		return &InvalidConfigError{Field: "min_contrast_delta", Value: c.MinContrastDelta, Reason: "must be in [0, 1]"}
	}
	return nil
}
