package colour

import "testing"

func analyzed(rgb RGB, weight float64) AnalyzedColor {
	return Analyze(WeightedColor{RGB: rgb, Weight: weight}, DefaultSaturationThreshold)
}

func assertPaletteTotal(t *testing.T, palette map[Role]RGB) {
	t.Helper()
	if len(palette) != len(AllRoles()) {
		t.Errorf("palette has %d entries, want %d", len(palette), len(AllRoles()))
	}
	for _, role := range AllRoles() {
		if _, ok := palette[role]; !ok {
			t.Errorf("palette missing role %s", role)
		}
	}
}

func TestMapRolesPaletteIsTotal(t *testing.T) {
	colors := []AnalyzedColor{
		analyzed(RGB{R: 255}, 0.4),
		analyzed(RGB{G: 255}, 0.3),
		analyzed(RGB{B: 255}, 0.2),
		analyzed(RGB{R: 30, G: 30, B: 30}, 0.1),
	}

	palette := MapRoles(colors, ThemeDark, DefaultConfig())
	assertPaletteTotal(t, palette)
}

// A uniform dark grey image: no hue variety exists, so every hue-window role
// falls back to its documented constant, while the background and text roles
// resolve to the single cluster.
func TestMapRolesUniformGrey(t *testing.T) {
	grey := RGB{R: 32, G: 32, B: 32}
	colors := []AnalyzedColor{analyzed(grey, 1.0)}

	palette := MapRoles(colors, ThemeDark, DefaultConfig())
	assertPaletteTotal(t, palette)

	if palette[RoleBackground] != grey {
		t.Errorf("background = %s, want %s", palette[RoleBackground].Hex(), grey.Hex())
	}

	for _, role := range []Role{RoleError, RoleWarning, RoleSuccess, RoleInfo, RoleCode, RoleEmphasis} {
		want := FallbackColor(role, ThemeDark)
		if palette[role] != want {
			t.Errorf("%s = %s, want fallback %s", role, palette[role].Hex(), want.Hex())
		}
	}

	// Text roles cannot clear the contrast minimum against an identical
	// background; best effort keeps the cluster colour.
	for _, role := range []Role{RoleNormal, RoleSubtle, RoleHeading1, RoleHeading2, RoleHeading3} {
		if palette[role] != grey {
			t.Errorf("%s = %s, want %s", role, palette[role].Hex(), grey.Hex())
		}
	}
}

// Half red, half blue: red claims Error; blue sits on the Info/Code window
// boundary, Info resolves first by priority, and Code reuses blue for lack of
// another candidate.
func TestMapRolesRedBluePriority(t *testing.T) {
	red := RGB{R: 255}
	blue := RGB{B: 255}
	colors := []AnalyzedColor{
		analyzed(blue, 0.5),
		analyzed(red, 0.5),
	}

	palette := MapRoles(colors, ThemeDark, DefaultConfig())
	assertPaletteTotal(t, palette)

	if palette[RoleError] != red {
		t.Errorf("error = %s, want red", palette[RoleError].Hex())
	}
	if palette[RoleInfo] != blue {
		t.Errorf("info = %s, want blue", palette[RoleInfo].Hex())
	}
	if palette[RoleCode] != blue {
		t.Errorf("code = %s, want blue (reused)", palette[RoleCode].Hex())
	}
}

// A single cluster: every role resolves to that colour, shared across the
// whole palette, except where no usable hue forces a constant fallback.
func TestMapRolesSingleChromaticCluster(t *testing.T) {
	purple := RGB{R: 128, G: 0, B: 128}
	colors := []AnalyzedColor{analyzed(purple, 1.0)}

	palette := MapRoles(colors, ThemeDark, DefaultConfig())
	assertPaletteTotal(t, palette)

	for _, role := range AllRoles() {
		if palette[role] != purple {
			t.Errorf("%s = %s, want shared %s", role, palette[role].Hex(), purple.Hex())
		}
	}
}

func TestMapRolesBackgroundExtreme(t *testing.T) {
	darkest := RGB{R: 10, G: 10, B: 10}
	lightest := RGB{R: 240, G: 240, B: 240}
	colors := []AnalyzedColor{
		analyzed(RGB{R: 255}, 0.4),
		analyzed(darkest, 0.3),
		analyzed(lightest, 0.3),
	}

	dark := MapRoles(colors, ThemeDark, DefaultConfig())
	if dark[RoleBackground] != darkest {
		t.Errorf("dark background = %s, want %s", dark[RoleBackground].Hex(), darkest.Hex())
	}

	light := MapRoles(colors, ThemeLight, DefaultConfig())
	if light[RoleBackground] != lightest {
		t.Errorf("light background = %s, want %s", light[RoleBackground].Hex(), lightest.Hex())
	}
}

func TestMapRolesBackgroundOverride(t *testing.T) {
	override := RGB{R: 1, G: 2, B: 3}
	cfg := DefaultConfig()
	cfg.BackgroundOverride = &override

	colors := []AnalyzedColor{
		analyzed(RGB{R: 255}, 0.6),
		analyzed(RGB{R: 10, G: 10, B: 10}, 0.4),
	}

	palette := MapRoles(colors, ThemeDark, cfg)
	if palette[RoleBackground] != override {
		t.Errorf("background = %s, want override %s", palette[RoleBackground].Hex(), override.Hex())
	}
}

func TestMapRolesTextContrast(t *testing.T) {
	background := RGB{R: 10, G: 10, B: 10}
	highContrast := RGB{R: 230, G: 230, B: 230}
	lowContrast := RGB{R: 40, G: 40, B: 40}
	colors := []AnalyzedColor{
		analyzed(background, 0.5),
		analyzed(lowContrast, 0.3),
		analyzed(highContrast, 0.2),
	}

	palette := MapRoles(colors, ThemeDark, DefaultConfig())
	if palette[RoleNormal] != highContrast {
		t.Errorf("normal = %s, want the high-contrast candidate %s",
			palette[RoleNormal].Hex(), highContrast.Hex())
	}
}

func TestMapRolesHueWindowRanking(t *testing.T) {
	// Two greens in the Success window: the heavier cluster wins. Red keeps
	// the higher-priority roles away from the greens.
	red := RGB{R: 255}
	heavyGreen := HSLToRGB(120, 0.8, 0.5)
	lightGreen := HSLToRGB(130, 0.9, 0.5)
	colors := []AnalyzedColor{
		analyzed(red, 0.5),
		analyzed(heavyGreen, 0.3),
		analyzed(lightGreen, 0.2),
	}

	palette := MapRoles(colors, ThemeDark, DefaultConfig())
	if palette[RoleSuccess] != heavyGreen {
		t.Errorf("success = %s, want the heavier green %s",
			palette[RoleSuccess].Hex(), heavyGreen.Hex())
	}
}

func TestMapRolesPreferUnclaimedInWindow(t *testing.T) {
	// Error and Warning windows overlap on [30, 60]. The vivid orange wins
	// Error first; Warning then prefers the unclaimed amber over reusing it.
	orange := HSLToRGB(40, 0.9, 0.5)
	amber := HSLToRGB(55, 0.8, 0.5)
	colors := []AnalyzedColor{
		analyzed(orange, 0.6),
		analyzed(amber, 0.4),
	}

	palette := MapRoles(colors, ThemeDark, DefaultConfig())
	if palette[RoleError] != orange {
		t.Errorf("error = %s, want %s", palette[RoleError].Hex(), orange.Hex())
	}
	if palette[RoleWarning] != amber {
		t.Errorf("warning = %s, want the unclaimed %s", palette[RoleWarning].Hex(), amber.Hex())
	}
}

func TestMapRolesEmptyCandidates(t *testing.T) {
	palette := MapRoles(nil, ThemeDark, DefaultConfig())
	assertPaletteTotal(t, palette)

	for _, role := range AllRoles() {
		if palette[role] != FallbackColor(role, ThemeDark) {
			t.Errorf("%s = %s, want constant fallback", role, palette[role].Hex())
		}
	}
}

func TestFallbackColorsDiffer(t *testing.T) {
	// Dark and light fallbacks are distinct constant tables.
	for _, role := range AllRoles() {
		dark := FallbackColor(role, ThemeDark)
		light := FallbackColor(role, ThemeLight)
		if dark == light {
			t.Errorf("fallback for %s identical across theme types: %s", role, dark.Hex())
		}
	}
}
