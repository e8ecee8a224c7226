package export

import (
	"encoding/json"
	"fmt"

	"huemap/internal/colour"
)

// ToJSON renders a theme as indented JSON.
func ToJSON(theme *colour.Theme) ([]byte, error) {
	if theme == nil {
		return nil, fmt.Errorf("export: nil theme")
	}

	out, err := json.MarshalIndent(theme, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: marshalling theme to JSON: %w", err)
	}
	return out, nil
}

// Format identifies a supported serialisation format.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatTOML, FormatJSON:
		return Format(s), nil
	}
	return "", fmt.Errorf("export: unsupported format %q (want toml or json)", s)
}

// Marshal renders a theme in the requested format.
func Marshal(theme *colour.Theme, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return ToJSON(theme)
	case FormatTOML:
		return ToTOML(theme)
	}
	return nil, fmt.Errorf("export: unsupported format %q", format)
}
