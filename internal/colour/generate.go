package colour

import (
	"image"

	"github.com/hashicorp/go-hclog"
)

// Generator derives a terminal colour theme from a decoded image. One
// generator may be reused across images; each Generate call is an
// independent, purely functional run with no shared state, so concurrent use
// for different images is safe.
type Generator struct {
	config    Config
	quantizer Quantizer
	logger    hclog.Logger
}

// NewGenerator creates a Generator for the given configuration. The
// configuration is validated eagerly: an invalid configuration fails here,
// before any pixel processing.
func NewGenerator(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		config:    cfg,
		quantizer: NewKMeansQuantizer(),
		logger:    hclog.NewNullLogger(),
	}, nil
}

// SetLogger installs a logger for stage-decision tracing. Logging is
// observational only and never alters the generated theme.
func (g *Generator) SetLogger(logger hclog.Logger) {
	if logger != nil {
		g.logger = logger
	}
}

// SetQuantizer replaces the default k-means quantizer.
func (g *Generator) SetQuantizer(q Quantizer) {
	if q != nil {
		g.quantizer = q
	}
}

// Generate runs the full pipeline: quantize, analyze, classify, map roles,
// assemble. The two fatal error kinds (ErrEmptyPalette, InvalidConfigError
// at construction) propagate directly; all other degradations are best-effort
// heuristics and never surface as errors.
func (g *Generator) Generate(img image.Image) (*Theme, error) {
	weighted, err := g.quantizer.Quantize(img, int(g.config.ColorCount))
	if err != nil {
		return nil, err
	}

	analyzed := AnalyzeAll(weighted, g.config.SaturationThreshold)
	for _, c := range analyzed {
		g.logger.Debug("dominant colour",
			"hex", c.RGB.Hex(),
			"weight", c.Weight,
			"hue", c.Hue,
			"saturation", c.Saturation,
			"lightness", c.Lightness,
		)
	}

	themeType := ClassifyThemeType(analyzed, g.config)
	g.logger.Debug("classified theme type",
		"type", themeType.String(),
		"weighted_mean_lightness", WeightedMeanLightness(analyzed),
		"threshold", g.config.LightDarkThreshold,
		"forced", g.config.ForceThemeType != ThemeAuto,
	)

	palette := MapRoles(analyzed, themeType, g.config)
	for _, role := range AllRoles() {
		g.logger.Debug("assigned role", "role", string(role), "hex", palette[role].Hex())
	}

	theme := AssembleTheme(analyzed, themeType, palette, g.config)
	g.logger.Debug("assembled theme", "name", theme.Name, "background", theme.Background.Hex())

	return theme, nil
}

// GenerateTheme is a convenience wrapper that builds a generator and runs it
// once.
func GenerateTheme(img image.Image, cfg Config) (*Theme, error) {
	generator, err := NewGenerator(cfg)
	if err != nil {
		return nil, err
	}
	return generator.Generate(img)
}
