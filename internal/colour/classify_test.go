package colour

import (
	"math"
	"testing"
)

// analyzedGrey builds an analyzed colour of a given lightness and weight.
func analyzedGrey(lightness, weight float64) AnalyzedColor {
	return Analyze(WeightedColor{RGB: HSLToRGB(0, 0, lightness), Weight: weight}, DefaultSaturationThreshold)
}

func TestClassifyThemeType(t *testing.T) {
	tests := []struct {
		name   string
		colors []AnalyzedColor
		cfg    Config
		want   ThemeType
	}{
		{
			name:   "dark image",
			colors: []AnalyzedColor{analyzedGrey(0.1, 1.0)},
			cfg:    DefaultConfig(),
			want:   ThemeDark,
		},
		{
			name:   "bright image",
			colors: []AnalyzedColor{analyzedGrey(0.9, 1.0)},
			cfg:    DefaultConfig(),
			want:   ThemeLight,
		},
		{
			name: "mid lightness stays dark under the 0.7 threshold",
			colors: []AnalyzedColor{
				analyzedGrey(0.6, 0.5),
				analyzedGrey(0.6, 0.5),
			},
			cfg:  DefaultConfig(),
			want: ThemeDark,
		},
		{
			name: "minor bright outlier cannot flip a dark image",
			colors: []AnalyzedColor{
				analyzedGrey(0.05, 0.95),
				analyzedGrey(1.0, 0.05),
			},
			cfg:  DefaultConfig(),
			want: ThemeDark,
		},
		{
			name:   "forced light wins over dark content",
			colors: []AnalyzedColor{analyzedGrey(0.05, 1.0)},
			cfg:    forcedConfig(ThemeLight),
			want:   ThemeLight,
		},
		{
			name:   "forced dark wins over bright content",
			colors: []AnalyzedColor{analyzedGrey(0.95, 1.0)},
			cfg:    forcedConfig(ThemeDark),
			want:   ThemeDark,
		},
		{
			name:   "empty colour set defaults dark",
			colors: nil,
			cfg:    DefaultConfig(),
			want:   ThemeDark,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyThemeType(tt.colors, tt.cfg); got != tt.want {
				t.Errorf("ClassifyThemeType() = %s, want %s", got, tt.want)
			}
		})
	}
}

func forcedConfig(themeType ThemeType) Config {
	cfg := DefaultConfig()
	cfg.ForceThemeType = themeType
	return cfg
}

func TestWeightedMeanLightness(t *testing.T) {
	colors := []AnalyzedColor{
		analyzedGrey(0.2, 0.25),
		analyzedGrey(0.8, 0.75),
	}

	got := WeightedMeanLightness(colors)
	want := 0.2*0.25 + 0.8*0.75
	if math.Abs(got-want) > 0.01 {
		t.Errorf("WeightedMeanLightness() = %f, want %f", got, want)
	}
}

func TestWeightedMeanLightnessBounds(t *testing.T) {
	// Weighted mean lightness stays in [0, 1] for any normalized weights.
	for _, l := range []float64{0, 0.25, 0.5, 0.75, 1} {
		got := WeightedMeanLightness([]AnalyzedColor{analyzedGrey(l, 1.0)})
		if got < 0 || got > 1 {
			t.Errorf("mean lightness %f outside [0, 1]", got)
		}
	}
}

func TestParseThemeType(t *testing.T) {
	tests := []struct {
		in     string
		want   ThemeType
		wantOK bool
	}{
		{in: "auto", want: ThemeAuto, wantOK: true},
		{in: "dark", want: ThemeDark, wantOK: true},
		{in: "light", want: ThemeLight, wantOK: true},
		{in: "bright", wantOK: false},
		{in: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseThemeType(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("ParseThemeType(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseThemeType(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
