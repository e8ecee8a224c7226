// Package colour derives terminal colour themes from decoded images.
package colour

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// packed returns the colour as a single integer, used for deterministic
// ordering wherever weights or scores tie.
func (rgb RGB) packed() uint32 {
	return uint32(rgb.R)<<16 | uint32(rgb.G)<<8 | uint32(rgb.B)
}

// ParseHex parses a hex colour string into an RGB struct.
// Supports formats: #RRGGBB, RRGGBB, #RGB, RGB.
func ParseHex(hex string) (RGB, error) {
	hex = strings.TrimPrefix(hex, "#")

	// Expand shorthand format (RGB -> RRGGBB).
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour length: expected 6 characters, got %d", len(hex))
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid red component: %w", err)
	}
	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid green component: %w", err)
	}
	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid blue component: %w", err)
	}

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255].
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// RGBToColor converts an RGB value to a color.Color (RGBA).
func RGBToColor(rgb RGB) color.Color {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// WeightedColor is a representative colour produced by quantization together
// with the fraction of sampled pixels it represents. Weights across the
// colours produced from one image sum to 1.0.
type WeightedColor struct {
	RGB    RGB     `json:"rgb"`
	Weight float64 `json:"weight"`
}

// PerceptualColor annotates a WeightedColor with its HSL coordinates and
// derived suitability flags. It is recomputed on every pipeline run and never
// cached across images.
type PerceptualColor struct {
	Hue        float64 `json:"hue"`        // degrees, [0, 360)
	Saturation float64 `json:"saturation"` // [0, 1]
	Lightness  float64 `json:"lightness"`  // [0, 1]

	BackgroundCandidate bool `json:"background_candidate"`
	AccentCandidate     bool `json:"accent_candidate"`
	TextCandidate       bool `json:"text_candidate"`
}

// AnalyzedColor pairs a WeightedColor with its perceptual annotation.
type AnalyzedColor struct {
	WeightedColor
	PerceptualColor
}

// chromatic reports whether the colour carries a usable hue. Achromatic
// greys have no hue and never match a hue window.
func (a AnalyzedColor) chromatic() bool {
	return a.Saturation > 0
}
