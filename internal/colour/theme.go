package colour

import "fmt"

// ColorSupport is the minimum terminal colour-depth tier required to render
// a theme faithfully.
type ColorSupport string

const (
	ColorSupportBasic     ColorSupport = "basic"
	ColorSupport256       ColorSupport = "color256"
	ColorSupportTrueColor ColorSupport = "true_color"
)

// Theme is the final output of the pipeline: a palette of colours bound to
// semantic roles, plus metadata for the consuming styling engine. A Theme is
// created once per run and never mutated after return.
type Theme struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// TermBgLuma is the overall light/dark classification, used by the
	// consumer to pick contrasting defaults.
	TermBgLuma ThemeType `json:"term_bg_luma"`

	// MinColorSupport is always true colour: the extracted RGB values are
	// arbitrary and lose meaning if downsampled to a narrower palette.
	MinColorSupport ColorSupport `json:"min_color_support"`

	Background RGB          `json:"background"`
	Palette    map[Role]RGB `json:"palette"`
}

// themeDescription is the fixed description attached to every generated
// theme.
const themeDescription = "Generated from image analysis"

// AssembleTheme packages role assignments and metadata into the final theme
// value. It performs no computation beyond structural packaging and naming.
func AssembleTheme(colors []AnalyzedColor, themeType ThemeType, palette map[Role]RGB, cfg Config) *Theme {
	return &Theme{
		Name:            themeName(colors, cfg),
		Description:     themeDescription,
		TermBgLuma:      themeType,
		MinColorSupport: ColorSupportTrueColor,
		Background:      palette[RoleBackground],
		Palette:         palette,
	}
}

// themeName builds the theme name: an explicit name wins, otherwise the
// configured prefix plus a short descriptor of the dominant hue.
func themeName(colors []AnalyzedColor, cfg Config) string {
	if cfg.ThemeName != "" {
		return cfg.ThemeName
	}

	prefix := cfg.ThemeNamePrefix
	if prefix == "" {
		prefix = DefaultThemeNamePrefix
	}

	descriptor := "grey"
	if len(colors) > 0 {
		// Quantizer output is sorted by weight, so the dominant cluster
		// leads.
		descriptor = hueName(colors[0].Hue, colors[0].Saturation)
	}

	return fmt.Sprintf("%s-%s", prefix, descriptor)
}

// hueName maps a hue angle to a coarse colour name. Achromatic colours have
// no meaningful hue and are named grey.
func hueName(hue, saturation float64) string {
	if saturation == 0 {
		return "grey"
	}
	switch {
	case hue < 15:
		return "red"
	case hue < 45:
		return "orange"
	case hue < 75:
		return "yellow"
	case hue < 165:
		return "green"
	case hue < 195:
		return "cyan"
	case hue < 255:
		return "blue"
	case hue < 285:
		return "purple"
	case hue < 345:
		return "magenta"
	default:
		return "red"
	}
}
