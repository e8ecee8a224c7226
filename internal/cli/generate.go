package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"huemap/internal/colour"
	"huemap/internal/export"
	"huemap/internal/image"
)

var (
	generateOutput     string
	generateFormat     string
	generateForce      string
	generateColours    uint
	generatePrefix     string
	generateName       string
	generateBackground string
	generatePreview    bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <image>",
	Short: "Generate a colour theme from an image",
	Long: `Generate a terminal colour theme from an image file.

The image is reduced to its dominant colours, classified as light or dark, and
the colours are mapped onto semantic roles by hue. The theme is written to
stdout or to a file in TOML or JSON format.

Supported image formats: JPEG, PNG, GIF, WebP.

Examples:
  # Print a TOML theme to stdout
  huemap generate wallpaper.jpg

  # Write a JSON theme to a file
  huemap generate wallpaper.jpg --format json --output wallpaper.json

  # Force a dark theme with a custom name
  huemap generate sunrise.png --force dark --name sunrise

  # Pin the background colour and preview the palette
  huemap generate forest.webp --background '#101418' --preview`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file (default: stdout)")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "toml", "Output format (toml, json)")
	generateCmd.Flags().StringVar(&generateForce, "force", "auto", "Force theme type (auto, dark, light)")
	generateCmd.Flags().UintVarP(&generateColours, "colours", "c", colour.DefaultColorCount, "Number of colours to extract")
	generateCmd.Flags().StringVar(&generatePrefix, "prefix", colour.DefaultThemeNamePrefix, "Theme name prefix")
	generateCmd.Flags().StringVar(&generateName, "name", "", "Theme name (overrides generated name)")
	generateCmd.Flags().StringVar(&generateBackground, "background", "", "Background colour override (hex)")
	generateCmd.Flags().BoolVar(&generatePreview, "preview", false, "Show colour palette preview")
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := export.ParseFormat(generateFormat)
	if err != nil {
		return err
	}

	cfg, err := buildGenerateConfig()
	if err != nil {
		return err
	}

	if err := image.ValidateImagePath(path); err != nil {
		return err
	}
	img, err := image.NewFileLoader().Load(path)
	if err != nil {
		return err
	}

	generator, err := colour.NewGenerator(cfg)
	if err != nil {
		return err
	}
	generator.SetLogger(newLogger())

	theme, err := generator.Generate(img)
	if err != nil {
		return fmt.Errorf("failed to generate theme from %s: %w", path, err)
	}

	if generatePreview {
		printPreview(theme)
	}

	data, err := export.Marshal(theme, format)
	if err != nil {
		return err
	}

	if generateOutput == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(generateOutput, data, 0o644); err != nil { // #nosec G306 - Theme files are not sensitive
		return fmt.Errorf("failed to write theme file: %w", err)
	}
	if !rootQuiet {
		fmt.Fprintf(os.Stderr, "Theme %q written to %s\n", theme.Name, generateOutput)
	}
	return nil
}

// buildGenerateConfig maps command-line flags onto a pipeline configuration.
func buildGenerateConfig() (colour.Config, error) {
	cfg := colour.DefaultConfig()
	cfg.ColorCount = generateColours
	cfg.ThemeNamePrefix = generatePrefix
	cfg.ThemeName = generateName

	forced, ok := colour.ParseThemeType(generateForce)
	if !ok {
		return colour.Config{}, fmt.Errorf("invalid --force value %q (want auto, dark or light)", generateForce)
	}
	cfg.ForceThemeType = forced

	if generateBackground != "" {
		bg, err := colour.ParseHex(generateBackground)
		if err != nil {
			return colour.Config{}, fmt.Errorf("invalid --background value: %w", err)
		}
		cfg.BackgroundOverride = &bg
	}

	return cfg, nil
}

var (
	previewTitleStyle = lipgloss.NewStyle().Bold(true)
	previewLabelStyle = lipgloss.NewStyle().Width(12)
	previewMetaStyle  = lipgloss.NewStyle().Faint(true)
)

// printPreview renders the theme palette as coloured blocks on stderr. Colour
// blocks are only emitted on a real terminal.
func printPreview(theme *colour.Theme) {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	fmt.Fprintln(os.Stderr, previewTitleStyle.Render(theme.Name))
	fmt.Fprintln(os.Stderr, previewMetaStyle.Render(fmt.Sprintf("%s theme, background %s", theme.TermBgLuma, theme.Background.Hex())))

	for _, role := range colour.AllRoles() {
		rgb, ok := theme.Palette[role]
		if !ok {
			continue
		}

		label := previewLabelStyle.Render(string(role))
		if isTTY {
			fmt.Fprintf(os.Stderr, "  %s %s %s\n", label, colour.ColourPreview(rgb, 8), rgb.Hex())
		} else {
			fmt.Fprintf(os.Stderr, "  %s %s\n", label, rgb.Hex())
		}
	}
	fmt.Fprintln(os.Stderr)
}
