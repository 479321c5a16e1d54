package theme

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// hexRegex accepts #RRGGBB only; shorthand and alpha forms are rejected
// so that every shade round-trips to the same literal.
var hexRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// luminanceThreshold is where black and white text have equal contrast
// against a background (WCAG relative luminance).
const luminanceThreshold = 0.179

// ParseHex parses a #RRGGBB literal.
func ParseHex(s string) (colorful.Color, error) {
	if !hexRegex.MatchString(s) {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	return c, nil
}

// FormatHex renders c as an upper-case #RRGGBB literal.
func FormatHex(c colorful.Color) string {
	return strings.ToUpper(c.Clamped().Hex())
}

// Luminance returns the WCAG relative luminance of c.
func Luminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastText returns black or white, whichever reads better on hex.
// Invalid input yields black.
func ContrastText(hex string) string {
	c, err := ParseHex(hex)
	if err != nil {
		return "#000000"
	}
	if Luminance(c) > luminanceThreshold {
		return "#000000"
	}
	return "#FFFFFF"
}
