package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor parses a color given as #rgb, #rrggbb or #rrggbbaa hex triplet,
// or as an SVG color keyword such as "red" or "cornflowerblue". Keywords are
// case insensitive. Hex colors are not alpha-premultiplied.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		return parseHex(hex)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return color.NRGBA(c), nil
	}
	return color.NRGBA{}, fmt.Errorf("render: unknown color %q", s)
}

func parseHex(x string) (color.NRGBA, error) {
	v, err := strconv.ParseUint(x, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("render: invalid hex color %q: %w", "#"+x, err)
	}
	switch len(x) {
	case 3:
		r, g, b := uint8(v>>8&0xF), uint8(v>>4&0xF), uint8(v&0xF)
		return color.NRGBA{r | r<<4, g | g<<4, b | b<<4, 0xFF}, nil
	case 6:
		return color.NRGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xFF}, nil
	case 8:
		return color.NRGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
	default:
		return color.NRGBA{}, fmt.Errorf("render: invalid hex color %q", "#"+x)
	}
}

// FormatColor formats c as #rrggbb, or as #rrggbbaa if it isn't opaque.
func FormatColor(c color.NRGBA) string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
