// Package export serialises generated themes for consumption by other tools.
package export

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"huemap/internal/colour"
)

// tomlDocument mirrors the on-disk theme layout: header keys followed by one
// [palette.<role>] table per semantic role.
type tomlDocument struct {
	Name            string                      `toml:"name"`
	Description     string                      `toml:"description"`
	TermBgLuma      string                      `toml:"term_bg_luma"`
	MinColorSupport string                      `toml:"min_color_support"`
	Background      string                      `toml:"background"`
	Palette         map[string]tomlPaletteEntry `toml:"palette"`
}

type tomlPaletteEntry struct {
	RGB [3]uint8 `toml:"rgb"`
}

// ToTOML renders a theme as a TOML document.
func ToTOML(theme *colour.Theme) ([]byte, error) {
	if theme == nil {
		return nil, fmt.Errorf("export: nil theme")
	}

	doc := tomlDocument{
		Name:            theme.Name,
		Description:     theme.Description,
		TermBgLuma:      theme.TermBgLuma.String(),
		MinColorSupport: string(theme.MinColorSupport),
		Background:      theme.Background.Hex(),
		Palette:         make(map[string]tomlPaletteEntry, len(theme.Palette)),
	}
	for role, rgb := range theme.Palette {
		doc.Palette[string(role)] = tomlPaletteEntry{RGB: [3]uint8{rgb.R, rgb.G, rgb.B}}
	}

	out, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("export: marshalling theme to TOML: %w", err)
	}
	return out, nil
}
