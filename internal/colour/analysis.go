package colour

// Thresholds for the derived suitability flags.
const (
	// backgroundLightnessMargin is how close to either lightness extreme a
	// colour must sit to qualify as a background candidate.
	backgroundLightnessMargin = 0.15

	// backgroundMaxSaturation caps the saturation of background candidates;
	// backgrounds should be near-neutral.
	backgroundMaxSaturation = 0.2

	// Text candidates sit in the mid-lightness band, away from both extremes.
	textMinLightness = 0.25
	textMaxLightness = 0.75
)

// Analyze converts a WeightedColor to its perceptual annotation: HSL
// coordinates plus derived suitability flags. Pure function; safe to apply to
// every colour independently.
func Analyze(wc WeightedColor, saturationThreshold float64) AnalyzedColor {
	h, s, l := rgbToHSL(wc.RGB)

	return AnalyzedColor{
		WeightedColor: wc,
		PerceptualColor: PerceptualColor{
			Hue:                 h,
			Saturation:          s,
			Lightness:           l,
			BackgroundCandidate: s <= backgroundMaxSaturation && (l <= backgroundLightnessMargin || l >= 1-backgroundLightnessMargin),
			AccentCandidate:     s > saturationThreshold,
			TextCandidate:       l >= textMinLightness && l <= textMaxLightness,
		},
	}
}

// AnalyzeAll annotates every weighted colour in order.
func AnalyzeAll(colors []WeightedColor, saturationThreshold float64) []AnalyzedColor {
	analyzed := make([]AnalyzedColor, len(colors))
	for i, wc := range colors {
		analyzed[i] = Analyze(wc, saturationThreshold)
	}
	return analyzed
}
