package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts "#RRGGBB" or "RRGGBB" to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	r, g, b, err := parseHexRGB(hex)
	if err != nil {
		return tcell.ColorDefault, err
	}
	return tcell.NewRGBColor(r, g, b), nil
}

// ColorOr parses hex, returning fallback when it is empty or malformed.
func ColorOr(hex string, fallback tcell.Color) tcell.Color {
	if hex == "" {
		return fallback
	}
	c, err := ParseHexColor(hex)
	if err != nil {
		return fallback
	}
	return c
}

// Fade scales a hex color towards black by opacity in [0, 1].
func Fade(hex string, opacity float64) (tcell.Color, error) {
	r, g, b, err := parseHexRGB(hex)
	if err != nil {
		return tcell.ColorDefault, err
	}
	opacity = max(0, min(1, opacity))
	scale := func(v int32) int32 { return int32(float64(v)*opacity + 0.5) }
	return tcell.NewRGBColor(scale(r), scale(g), scale(b)), nil
}

func parseHexRGB(hex string) (int32, int32, int32, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex color length: %s", hex)
	}

	var rgb [3]int32
	for i, name := range []string{"red", "green", "blue"} {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid %s component in %s: %w", name, hex, err)
		}
		rgb[i] = int32(v)
	}
	return rgb[0], rgb[1], rgb[2], nil
}
