package theme

import (
	"fmt"
	"regexp"
	"strings"
)

// VarPrefix prefixes every CSS custom property the theme emits.
const VarPrefix = "--raio"

var cssIdentRegex = regexp.MustCompile(`^-?[A-Za-z_][A-Za-z0-9_-]*$`)

// ColorVar returns the custom property name of a single shade.
func ColorVar(palette string, index int) string {
	return fmt.Sprintf("%s-color-%s-%d", VarPrefix, palette, index)
}

// FormatFontStack renders a font stack as a CSS font-family value. Names
// that are not plain identifiers are quoted.
func FormatFontStack(stack []string) string {
	parts := make([]string, 0, len(stack))
	for _, name := range stack {
		name = strings.TrimSpace(name)
		if cssIdentRegex.MatchString(name) {
			parts = append(parts, name)
			continue
		}
		parts = append(parts, `"`+name+`"`)
	}
	return strings.Join(parts, ", ")
}

// CSS renders the theme as a :root block of custom properties followed by
// base body and heading rules that consume them.
func (t *Theme) CSS() string {
	var b strings.Builder

	b.WriteString(":root {\n")
	for _, name := range t.PaletteNames() {
		ramp := t.spec.Colors[name]
		for i, shade := range ramp {
			fmt.Fprintf(&b, "  %s: %s;\n", ColorVar(name, i), shade)
		}
		fmt.Fprintf(&b, "  %s-color-%s-filled: var(%s);\n", VarPrefix, name, ColorVar(name, PrimaryShade))
	}

	primary := t.spec.PrimaryColor
	for i := range RampSize {
		fmt.Fprintf(&b, "  %s-primary-color-%d: var(%s);\n", VarPrefix, i, ColorVar(primary, i))
	}
	filled, _ := t.Filled(primary)
	fmt.Fprintf(&b, "  %s-primary-color-filled: var(%s);\n", VarPrefix, ColorVar(primary, PrimaryShade))
	fmt.Fprintf(&b, "  %s-primary-color-contrast: %s;\n", VarPrefix, ContrastText(filled))

	typo := t.spec.Typography
	fmt.Fprintf(&b, "  %s-font-family: %s;\n", VarPrefix, FormatFontStack(typo.FontFamily))
	fmt.Fprintf(&b, "  %s-font-family-headings: %s;\n", VarPrefix, FormatFontStack(typo.Headings.FontFamily))
	fmt.Fprintf(&b, "  %s-heading-font-weight: %s;\n", VarPrefix, typo.Headings.FontWeight)
	b.WriteString("}\n")

	fmt.Fprintf(&b, "body {\n  font-family: var(%s-font-family);\n}\n", VarPrefix)
	fmt.Fprintf(&b, "h1, h2, h3, h4, h5, h6 {\n  font-family: var(%s-font-family-headings);\n  font-weight: var(%s-heading-font-weight);\n}\n", VarPrefix, VarPrefix)

	return b.String()
}
