package og

import (
	"fmt"
	"image/color"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var hexColorRx = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// ParseHexColor decodes a #RRGGBB string (leading # optional, case-insensitive).
func ParseHexColor(hex string) (color.NRGBA, error) {
	if !hexColorRx.MatchString(hex) {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", hex)
	}
	c := strings.TrimPrefix(hex, "#")
	r, _ := strconv.ParseUint(c[0:2], 16, 8)
	g, _ := strconv.ParseUint(c[2:4], 16, 8)
	b, _ := strconv.ParseUint(c[4:6], 16, 8)
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}, nil
}

// ParseHexColorDefault decodes a hex color, falling back to def when malformed.
func ParseHexColorDefault(hex string, def color.NRGBA) color.NRGBA {
	c, err := ParseHexColor(hex)
	if err != nil {
		return def
	}
	return c
}

func srgbToLinear(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// RelativeLuminance computes the WCAG relative luminance of a hex color in [0,1].
func RelativeLuminance(hex string) (float64, error) {
	c, err := ParseHexColor(hex)
	if err != nil {
		return 0, err
	}
	r := srgbToLinear(float64(c.R) / 255.0)
	g := srgbToLinear(float64(c.G) / 255.0)
	b := srgbToLinear(float64(c.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b, nil
}

// ContrastRatio returns the WCAG contrast ratio between two colors, always >= 1.
func ContrastRatio(fg, bg string) (float64, error) {
	l1, err := RelativeLuminance(fg)
	if err != nil {
		return 0, err
	}
	l2, err := RelativeLuminance(bg)
	if err != nil {
		return 0, err
	}
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05), nil
}

// IsAccessible reports whether fg on bg meets the given WCAG level:
// 4.5:1 for "AA", 7:1 for "AAA". Unknown levels are treated as "AA".
func IsAccessible(fg, bg, level string) (bool, error) {
	ratio, err := ContrastRatio(fg, bg)
	if err != nil {
		return false, err
	}
	if strings.EqualFold(level, "AAA") {
		return ratio >= 7, nil
	}
	return ratio >= 4.5, nil
}
