package colour

// Role represents the semantic role of a colour in a theme. The set is
// closed: a theme's palette carries exactly one colour per role.
type Role string

const (
	RoleError    Role = "error"
	RoleWarning  Role = "warning"
	RoleSuccess  Role = "success"
	RoleInfo     Role = "info"
	RoleCode     Role = "code"
	RoleEmphasis Role = "emphasis"
	RoleHeading1 Role = "heading1"
	RoleHeading2 Role = "heading2"
	RoleHeading3 Role = "heading3"
	RoleNormal   Role = "normal"
	RoleSubtle   Role = "subtle"

	RoleBackground Role = "background"
)

// AllRoles lists every role in the closed set, in display order.
func AllRoles() []Role {
	return []Role{
		RoleError, RoleWarning, RoleSuccess, RoleInfo, RoleCode, RoleEmphasis,
		RoleHeading1, RoleHeading2, RoleHeading3,
		RoleNormal, RoleSubtle,
		RoleBackground,
	}
}

// hueWindow is an inclusive hue range in degrees. Windows overlap, so the
// explicit priority order below resolves contested colours; the boundary
// degree belongs to both adjacent windows.
type hueWindow struct {
	start, end float64
}

func (w hueWindow) contains(h float64) bool {
	return h >= w.start && h <= w.end
}

// distance returns the circular hue distance from h to the window, zero when
// h lies inside it.
func (w hueWindow) distance(h float64) float64 {
	if w.contains(h) {
		return 0
	}
	return min(HueDistance(h, w.start), HueDistance(h, w.end))
}

// accentRolePriority is the fixed resolution order for hue-window roles.
// Earlier roles claim a candidate colour first; this is an explicit sequence,
// never the iteration order of a map.
var accentRolePriority = []Role{
	RoleError, RoleWarning, RoleSuccess, RoleInfo, RoleCode, RoleEmphasis,
}

// textRolePriority is the fixed resolution order for text and structural
// roles, applied after the accent roles.
var textRolePriority = []Role{
	RoleNormal, RoleSubtle, RoleHeading1, RoleHeading2, RoleHeading3,
}

// roleHueWindows maps each accent role to its hue window.
var roleHueWindows = map[Role]hueWindow{
	RoleError:    {0, 60},
	RoleWarning:  {30, 90},
	RoleSuccess:  {90, 150},
	RoleInfo:     {180, 240},
	RoleCode:     {240, 300},
	RoleEmphasis: {300, 360},
}

// Canonical hue per accent role, used for the constant fallback colours when
// the image offers no chromatic candidate at all.
var roleFallbackHues = map[Role]float64{
	RoleError:    0,   // red
	RoleWarning:  45,  // orange
	RoleSuccess:  120, // green
	RoleInfo:     210, // blue
	RoleCode:     270, // violet
	RoleEmphasis: 330, // magenta
}

// Fallback synthesis parameters. Dark themes get lighter fallbacks for
// visibility against the background, light themes darker ones.
const (
	fallbackSaturation     = 0.75
	fallbackLightnessDark  = 0.60
	fallbackLightnessLight = 0.45

	fallbackTextLightnessDark     = 0.90
	fallbackTextLightnessLight    = 0.10
	fallbackSubtleLightnessDark   = 0.65
	fallbackSubtleLightnessLight  = 0.35
	fallbackHeadingLightnessDark  = 0.80
	fallbackHeadingLightnessLight = 0.20
)

// FallbackColor returns the documented constant default colour for a role
// when the candidate set offers nothing usable. The value depends only on the
// role and the theme type.
func FallbackColor(role Role, themeType ThemeType) RGB {
	if hue, ok := roleFallbackHues[role]; ok {
		l := fallbackLightnessDark
		if themeType == ThemeLight {
			l = fallbackLightnessLight
		}
		return HSLToRGB(hue, fallbackSaturation, l)
	}

	dark := themeType != ThemeLight
	switch role {
	case RoleNormal:
		return greyFallback(dark, fallbackTextLightnessDark, fallbackTextLightnessLight)
	case RoleSubtle:
		return greyFallback(dark, fallbackSubtleLightnessDark, fallbackSubtleLightnessLight)
	case RoleHeading1, RoleHeading2, RoleHeading3:
		return greyFallback(dark, fallbackHeadingLightnessDark, fallbackHeadingLightnessLight)
	case RoleBackground:
		// Standard dark grey, light grey respectively.
		if dark {
			return RGB{R: 25, G: 25, B: 25}
		}
		return RGB{R: 248, G: 248, B: 248}
	}
	return RGB{}
}

func greyFallback(dark bool, darkLightness, lightLightness float64) RGB {
	if dark {
		return HSLToRGB(0, 0, darkLightness)
	}
	return HSLToRGB(0, 0, lightLightness)
}
