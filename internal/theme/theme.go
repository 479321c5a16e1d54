package theme

import (
	"maps"
	"slices"
)

// RampSize is the number of shades every color ramp carries.
const RampSize = 10

// PrimaryShade is the index of the base shade within a ramp.
const PrimaryShade = 5

// ColorRamp is an ordered list of #RRGGBB shades, lightest first.
type ColorRamp []string

// Spec is the declared form of a theme as written in Go or in a theme file.
// A Spec is not trusted until it has been passed through New.
type Spec struct {
	Name         string               `toml:"name" yaml:"name" json:"name"`
	PrimaryColor string               `toml:"primary_color" yaml:"primary_color" json:"primary_color"`
	Colors       map[string]ColorRamp `toml:"colors" yaml:"colors" json:"colors"`
	Typography   Typography           `toml:"typography" yaml:"typography" json:"typography"`
}

// Typography holds the body and heading font settings.
type Typography struct {
	FontFamily []string `toml:"font_family" yaml:"font_family" json:"font_family"` // Fallback order, first match wins
	Headings   Headings `toml:"headings" yaml:"headings" json:"headings"`
}

// Headings holds the font settings shared by h1-h6.
type Headings struct {
	FontFamily []string `toml:"font_family" yaml:"font_family" json:"font_family"`
	FontWeight string   `toml:"font_weight" yaml:"font_weight" json:"font_weight"` // 1-1000 or a CSS keyword
}

// Clone returns a deep copy of the spec.
func (s Spec) Clone() Spec {
	out := s
	if s.Colors != nil {
		out.Colors = make(map[string]ColorRamp, len(s.Colors))
		for name, ramp := range s.Colors {
			out.Colors[name] = slices.Clone(ramp)
		}
	}
	out.Typography.FontFamily = slices.Clone(s.Typography.FontFamily)
	out.Typography.Headings.FontFamily = slices.Clone(s.Typography.Headings.FontFamily)
	return out
}

// PaletteNames returns the palette keys in sorted order.
func (s Spec) PaletteNames() []string {
	return slices.Sorted(maps.Keys(s.Colors))
}

// Theme is a validated, read-only theme. The zero value is not usable;
// construct one with New, MustNew or Default.
type Theme struct {
	spec Spec
}

// New validates s and returns an immutable Theme built from a copy of it.
// On failure the returned error is a *ValidationError.
func New(s Spec) (*Theme, error) {
	if err := Validate(s); err != nil {
		return nil, err
	}
	return &Theme{spec: s.Clone()}, nil
}

// MustNew is like New but panics if s is invalid.
func MustNew(s Spec) *Theme {
	t, err := New(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the theme name.
func (t *Theme) Name() string {
	return t.spec.Name
}

// Spec returns a copy of the underlying declaration.
func (t *Theme) Spec() Spec {
	return t.spec.Clone()
}

// PaletteNames returns the palette keys in sorted order.
func (t *Theme) PaletteNames() []string {
	return t.spec.PaletteNames()
}

// Ramp returns a copy of the named ramp.
func (t *Theme) Ramp(name string) (ColorRamp, bool) {
	ramp, ok := t.spec.Colors[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(ramp), true
}

// PrimaryColor returns the key of the primary palette.
func (t *Theme) PrimaryColor() string {
	return t.spec.PrimaryColor
}

// PrimaryRamp returns a copy of the primary palette.
func (t *Theme) PrimaryRamp() ColorRamp {
	return slices.Clone(t.spec.Colors[t.spec.PrimaryColor])
}

// Shade returns a single shade of the named palette.
func (t *Theme) Shade(name string, index int) (string, bool) {
	ramp, ok := t.spec.Colors[name]
	if !ok || index < 0 || index >= len(ramp) {
		return "", false
	}
	return ramp[index], true
}

// Filled returns the base shade of the named palette.
func (t *Theme) Filled(name string) (string, bool) {
	return t.Shade(name, PrimaryShade)
}

// Typography returns a copy of the font settings.
func (t *Theme) Typography() Typography {
	return t.spec.Clone().Typography
}
