package colour

import "sort"

// MapRoles assigns one colour to every role in the closed set, using hue
// windows, weight, and contrast rules with deterministic tie-breaking. The
// returned palette is total over Role: colours may be shared across roles,
// but no role is ever absent.
func MapRoles(colors []AnalyzedColor, themeType ThemeType, cfg Config) map[Role]RGB {
	palette := make(map[Role]RGB, len(AllRoles()))

	background, backgroundLightness := selectBackground(colors, themeType, cfg)
	palette[RoleBackground] = background

	claimed := make(map[uint32]bool)
	assignAccentRoles(palette, colors, themeType, claimed)
	assignTextRoles(palette, colors, themeType, backgroundLightness, cfg.MinContrastDelta, claimed)

	return palette
}

// selectBackground picks the background colour and returns it with its
// lightness. An explicit override is used verbatim; otherwise the extreme
// cluster by lightness wins: lowest for a dark theme, highest for a light
// one. Ties break on weight descending, then packed RGB ascending.
func selectBackground(colors []AnalyzedColor, themeType ThemeType, cfg Config) (RGB, float64) {
	if cfg.BackgroundOverride != nil {
		rgb := *cfg.BackgroundOverride
		_, _, l := rgbToHSL(rgb)
		return rgb, l
	}

	if len(colors) == 0 {
		rgb := FallbackColor(RoleBackground, themeType)
		_, _, l := rgbToHSL(rgb)
		return rgb, l
	}

	best := colors[0]
	for _, c := range colors[1:] {
		if backgroundBetter(c, best, themeType) {
			best = c
		}
	}
	return best.RGB, best.Lightness
}

func backgroundBetter(a, b AnalyzedColor, themeType ThemeType) bool {
	if a.Lightness != b.Lightness {
		if themeType == ThemeLight {
			return a.Lightness > b.Lightness
		}
		return a.Lightness < b.Lightness
	}
	if a.Weight != b.Weight {
		return a.Weight > b.Weight
	}
	return a.RGB.packed() < b.RGB.packed()
}

// assignAccentRoles resolves the hue-window roles in the fixed priority
// order. Within a window, candidates rank by weight descending, saturation
// descending, then packed RGB ascending. A colour claimed by an earlier role
// is reused only when no unclaimed candidate sits in the window. With no
// in-window candidate at all, the nearest chromatic candidate by circular hue
// distance steps in; with no chromatic candidate, the documented constant
// default.
func assignAccentRoles(palette map[Role]RGB, colors []AnalyzedColor, themeType ThemeType, claimed map[uint32]bool) {
	chromatic := make([]AnalyzedColor, 0, len(colors))
	for _, c := range colors {
		if c.chromatic() {
			chromatic = append(chromatic, c)
		}
	}

	for _, role := range accentRolePriority {
		window := roleHueWindows[role]

		var inWindow []AnalyzedColor
		for _, c := range chromatic {
			if window.contains(c.Hue) {
				inWindow = append(inWindow, c)
			}
		}

		var pick RGB
		switch {
		case len(inWindow) > 0:
			pick = pickAccent(inWindow, claimed)
		case len(chromatic) > 0:
			pick = pickNearestHue(chromatic, window)
		default:
			pick = FallbackColor(role, themeType)
		}

		palette[role] = pick
		claimed[pick.packed()] = true
	}
}

// pickAccent ranks in-window candidates and prefers unclaimed ones.
func pickAccent(candidates []AnalyzedColor, claimed map[uint32]bool) RGB {
	ranked := append([]AnalyzedColor(nil), candidates...)
	sort.Slice(ranked, func(i, j int) bool {
		return accentBetter(ranked[i], ranked[j])
	})
	for _, c := range ranked {
		if !claimed[c.RGB.packed()] {
			return c.RGB
		}
	}
	return ranked[0].RGB
}

func accentBetter(a, b AnalyzedColor) bool {
	if a.Weight != b.Weight {
		return a.Weight > b.Weight
	}
	if a.Saturation != b.Saturation {
		return a.Saturation > b.Saturation
	}
	return a.RGB.packed() < b.RGB.packed()
}

// pickNearestHue returns the chromatic candidate closest to the window by
// circular hue distance. Ties break on weight descending, saturation
// descending, then packed RGB ascending.
func pickNearestHue(chromatic []AnalyzedColor, window hueWindow) RGB {
	best := chromatic[0]
	bestDist := window.distance(best.Hue)
	for _, c := range chromatic[1:] {
		d := window.distance(c.Hue)
		if d < bestDist || (d == bestDist && accentBetter(c, best)) {
			best = c
			bestDist = d
		}
	}
	return best.RGB
}

// assignTextRoles resolves the text and structural roles against the chosen
// background: the candidate with the largest absolute lightness difference
// wins, subject to the minimum contrast delta. A candidate short of the
// minimum is a quality degradation, not an error; the best available colour
// is used and the pipeline continues.
func assignTextRoles(palette map[Role]RGB, colors []AnalyzedColor, themeType ThemeType, backgroundLightness, minContrastDelta float64, claimed map[uint32]bool) {
	if len(colors) == 0 {
		for _, role := range textRolePriority {
			palette[role] = FallbackColor(role, themeType)
		}
		return
	}

	ranked := append([]AnalyzedColor(nil), colors...)
	sort.Slice(ranked, func(i, j int) bool {
		ci := contrastDelta(ranked[i], backgroundLightness)
		cj := contrastDelta(ranked[j], backgroundLightness)
		if ci != cj {
			return ci > cj
		}
		if ranked[i].Weight != ranked[j].Weight {
			return ranked[i].Weight > ranked[j].Weight
		}
		return ranked[i].RGB.packed() < ranked[j].RGB.packed()
	})

	for _, role := range textRolePriority {
		pick := pickTextColor(ranked, backgroundLightness, minContrastDelta, claimed)
		palette[role] = pick
		claimed[pick.packed()] = true
	}
}

func contrastDelta(c AnalyzedColor, backgroundLightness float64) float64 {
	d := c.Lightness - backgroundLightness
	if d < 0 {
		d = -d
	}
	return d
}

// pickTextColor walks the contrast-ranked candidates: first an unclaimed
// colour clearing the minimum delta, then any colour clearing it, then the
// overall best.
func pickTextColor(ranked []AnalyzedColor, backgroundLightness, minContrastDelta float64, claimed map[uint32]bool) RGB {
	for _, c := range ranked {
		if contrastDelta(c, backgroundLightness) >= minContrastDelta && !claimed[c.RGB.packed()] {
			return c.RGB
		}
	}
	for _, c := range ranked {
		if contrastDelta(c, backgroundLightness) >= minContrastDelta {
			return c.RGB
		}
	}
	return ranked[0].RGB
}
