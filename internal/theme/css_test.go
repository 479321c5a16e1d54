package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSS_DeclaresEveryShade(t *testing.T) {
	th := Default()
	css := th.CSS()

	for _, name := range th.PaletteNames() {
		ramp, _ := th.Ramp(name)
		for i, shade := range ramp {
			assert.Contains(t, css, ColorVar(name, i)+": "+shade+";")
		}
		assert.Contains(t, css, "--raio-color-"+name+"-filled: var(--raio-color-"+name+"-5);")
	}
}

func TestCSS_PrimaryAliases(t *testing.T) {
	css := Default().CSS()

	assert.Contains(t, css, "--raio-primary-color-0: var(--raio-color-raioGreen-0);")
	assert.Contains(t, css, "--raio-primary-color-9: var(--raio-color-raioGreen-9);")
	assert.Contains(t, css, "--raio-primary-color-filled: var(--raio-color-raioGreen-5);")
	assert.Contains(t, css, "--raio-primary-color-contrast: #000000;")
}

func TestCSS_FollowsPrimaryColor(t *testing.T) {
	s := DefaultSpec()
	s.PrimaryColor = "raioDark"
	th, err := New(s)
	require.NoError(t, err)

	css := th.CSS()
	assert.Contains(t, css, "--raio-primary-color-filled: var(--raio-color-raioDark-5);")
	assert.Contains(t, css, "--raio-primary-color-contrast: #FFFFFF;")
}

func TestCSS_Typography(t *testing.T) {
	css := Default().CSS()

	assert.Contains(t, css, "--raio-font-family: Inter, system-ui, sans-serif;")
	assert.Contains(t, css, "--raio-font-family-headings: Inter, system-ui, sans-serif;")
	assert.Contains(t, css, "--raio-heading-font-weight: 700;")
	assert.Contains(t, css, "font-family: var(--raio-font-family);")
	assert.Contains(t, css, "font-weight: var(--raio-heading-font-weight);")
}

func TestCSS_BalancedBraces(t *testing.T) {
	css := Default().CSS()
	assert.Equal(t, strings.Count(css, "{"), strings.Count(css, "}"))
	assert.NotContains(t, css, "</")
}

func TestCSS_Deterministic(t *testing.T) {
	assert.Equal(t, Default().CSS(), Default().CSS())
}

func TestFormatFontStack(t *testing.T) {
	tests := []struct {
		name  string
		stack []string
		want  string
	}{
		{"identifiers", []string{"Inter", "system-ui", "sans-serif"}, "Inter, system-ui, sans-serif"},
		{"spaces quoted", []string{"Open Sans", "Helvetica Neue", "sans-serif"}, `"Open Sans", "Helvetica Neue", sans-serif`},
		{"leading digit quoted", []string{"3Dumb"}, `"3Dumb"`},
		{"trimmed", []string{" Inter "}, "Inter"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFontStack(tt.stack))
		})
	}
}
