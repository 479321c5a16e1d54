package theme

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Validation failures. A *ValidationError wraps exactly one of these.
var (
	ErrNoColors           = errors.New("no color palettes declared")
	ErrInvalidPaletteName = errors.New("invalid palette name")
	ErrRampLength         = fmt.Errorf("color ramp must have exactly %d shades", RampSize)
	ErrInvalidColor       = errors.New("invalid hex color")
	ErrUnknownPrimary     = errors.New("primary color does not name a palette")
	ErrEmptyFontStack     = errors.New("font stack is empty")
	ErrInvalidFontName    = errors.New("invalid font family name")
	ErrInvalidWeight      = errors.New("invalid font weight")
)

// ValidationError reports the first invariant a Spec breaks.
type ValidationError struct {
	Key    string // Offending key, e.g. "colors.raioGreen" or the unresolved primary color
	Index  int    // Position within a list, -1 when not applicable
	Detail string // Extra context such as the observed length
	Err    error  // One of the Err* sentinels
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("theme: ")
	b.WriteString(e.Key)
	if e.Index >= 0 {
		fmt.Fprintf(&b, "[%d]", e.Index)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if e.Detail != "" {
		b.WriteString(" (")
		b.WriteString(e.Detail)
		b.WriteString(")")
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return e.Err }

var paletteNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

var fontWeightKeywords = map[string]bool{
	"normal":  true,
	"bold":    true,
	"bolder":  true,
	"lighter": true,
}

// Validate checks every invariant of s and returns the first violation.
// Palettes are checked in sorted order so the reported key is stable.
func Validate(s Spec) error {
	if len(s.Colors) == 0 {
		return &ValidationError{Key: "colors", Index: -1, Err: ErrNoColors}
	}

	for _, name := range s.PaletteNames() {
		key := "colors." + name
		if !paletteNameRegex.MatchString(name) {
			return &ValidationError{Key: key, Index: -1, Detail: strconv.Quote(name), Err: ErrInvalidPaletteName}
		}
		ramp := s.Colors[name]
		if len(ramp) != RampSize {
			return &ValidationError{Key: key, Index: -1, Detail: fmt.Sprintf("got %d", len(ramp)), Err: ErrRampLength}
		}
		for i, shade := range ramp {
			if !hexRegex.MatchString(shade) {
				return &ValidationError{Key: key, Index: i, Detail: strconv.Quote(shade), Err: ErrInvalidColor}
			}
		}
	}

	if _, ok := s.Colors[s.PrimaryColor]; !ok {
		return &ValidationError{Key: s.PrimaryColor, Index: -1, Detail: "primary_color", Err: ErrUnknownPrimary}
	}

	if err := validateFontStack("typography.font_family", s.Typography.FontFamily); err != nil {
		return err
	}
	if err := validateFontStack("typography.headings.font_family", s.Typography.Headings.FontFamily); err != nil {
		return err
	}

	if !validFontWeight(s.Typography.Headings.FontWeight) {
		return &ValidationError{
			Key:    "typography.headings.font_weight",
			Index:  -1,
			Detail: strconv.Quote(s.Typography.Headings.FontWeight),
			Err:    ErrInvalidWeight,
		}
	}

	return nil
}

func validateFontStack(key string, stack []string) error {
	if len(stack) == 0 {
		return &ValidationError{Key: key, Index: -1, Err: ErrEmptyFontStack}
	}
	for i, name := range stack {
		if strings.TrimSpace(name) == "" || strings.ContainsAny(name, ";{}<>\\\"") || strings.ContainsFunc(name, unicode.IsControl) {
			return &ValidationError{Key: key, Index: i, Detail: strconv.Quote(name), Err: ErrInvalidFontName}
		}
	}
	return nil
}

func validFontWeight(w string) bool {
	if fontWeightKeywords[w] {
		return true
	}
	n, err := strconv.Atoi(w)
	if err != nil {
		return false
	}
	return n >= 1 && n <= 1000
}
