package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_UnknownPrimaryFailsFast(t *testing.T) {
	s := DefaultSpec()
	s.PrimaryColor = "doesNotExist"

	th, err := New(s)
	require.Error(t, err)
	assert.Nil(t, th)
	assert.ErrorIs(t, err, ErrUnknownPrimary)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "doesNotExist", verr.Key)
}

func TestValidate_RampLengthBoundary(t *testing.T) {
	for _, n := range []int{0, 1, 9, 11} {
		s := DefaultSpec()
		ramp := make(ColorRamp, n)
		for i := range ramp {
			ramp[i] = "#00FF88"
		}
		s.Colors["raioGreen"] = ramp

		err := Validate(s)
		require.Error(t, err, "length %d", n)
		assert.ErrorIs(t, err, ErrRampLength)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "colors.raioGreen", verr.Key)
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Spec)
		wantErr error
		wantKey string
		wantIdx int
	}{
		{
			name:    "no colors",
			mutate:  func(s *Spec) { s.Colors = nil },
			wantErr: ErrNoColors,
			wantKey: "colors",
			wantIdx: -1,
		},
		{
			name:    "malformed hex",
			mutate:  func(s *Spec) { s.Colors["raioDark"][3] = "#CED4D" },
			wantErr: ErrInvalidColor,
			wantKey: "colors.raioDark",
			wantIdx: 3,
		},
		{
			name:    "named color",
			mutate:  func(s *Spec) { s.Colors["raioGreen"][0] = "green" },
			wantErr: ErrInvalidColor,
			wantKey: "colors.raioGreen",
			wantIdx: 0,
		},
		{
			name:    "shorthand hex",
			mutate:  func(s *Spec) { s.Colors["raioGreen"][9] = "#0F8" },
			wantErr: ErrInvalidColor,
			wantKey: "colors.raioGreen",
			wantIdx: 9,
		},
		{
			name: "palette name with space",
			mutate: func(s *Spec) {
				s.Colors["raio green"] = s.Colors["raioGreen"]
			},
			wantErr: ErrInvalidPaletteName,
			wantKey: "colors.raio green",
			wantIdx: -1,
		},
		{
			name:    "empty primary",
			mutate:  func(s *Spec) { s.PrimaryColor = "" },
			wantErr: ErrUnknownPrimary,
			wantKey: "",
			wantIdx: -1,
		},
		{
			name:    "empty body font stack",
			mutate:  func(s *Spec) { s.Typography.FontFamily = nil },
			wantErr: ErrEmptyFontStack,
			wantKey: "typography.font_family",
			wantIdx: -1,
		},
		{
			name:    "blank heading font",
			mutate:  func(s *Spec) { s.Typography.Headings.FontFamily[1] = "  " },
			wantErr: ErrInvalidFontName,
			wantKey: "typography.headings.font_family",
			wantIdx: 1,
		},
		{
			name:    "font name breaking out of css",
			mutate:  func(s *Spec) { s.Typography.FontFamily[0] = "Inter;}</style>" },
			wantErr: ErrInvalidFontName,
			wantKey: "typography.font_family",
			wantIdx: 0,
		},
		{
			name:    "carriage return in font name",
			mutate:  func(s *Spec) { s.Typography.FontFamily[0] = "Inter\rX" },
			wantErr: ErrInvalidFontName,
			wantKey: "typography.font_family",
			wantIdx: 0,
		},
		{
			name:    "form feed in heading font",
			mutate:  func(s *Spec) { s.Typography.Headings.FontFamily[2] = "sans\fserif" },
			wantErr: ErrInvalidFontName,
			wantKey: "typography.headings.font_family",
			wantIdx: 2,
		},
		{
			name:    "tab in font name",
			mutate:  func(s *Spec) { s.Typography.FontFamily[1] = "system\tui" },
			wantErr: ErrInvalidFontName,
			wantKey: "typography.font_family",
			wantIdx: 1,
		},
		{
			name:    "weight out of range",
			mutate:  func(s *Spec) { s.Typography.Headings.FontWeight = "1200" },
			wantErr: ErrInvalidWeight,
			wantKey: "typography.headings.font_weight",
			wantIdx: -1,
		},
		{
			name:    "weight garbage",
			mutate:  func(s *Spec) { s.Typography.Headings.FontWeight = "heavy" },
			wantErr: ErrInvalidWeight,
			wantKey: "typography.headings.font_weight",
			wantIdx: -1,
		},
		{
			name:    "empty weight",
			mutate:  func(s *Spec) { s.Typography.Headings.FontWeight = "" },
			wantErr: ErrInvalidWeight,
			wantKey: "typography.headings.font_weight",
			wantIdx: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSpec()
			tt.mutate(&s)

			err := Validate(s)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantKey, verr.Key)
			assert.Equal(t, tt.wantIdx, verr.Index)
		})
	}
}

func TestValidate_AcceptsWeights(t *testing.T) {
	for _, w := range []string{"1", "400", "700", "1000", "normal", "bold", "bolder", "lighter"} {
		t.Run(w, func(t *testing.T) {
			s := DefaultSpec()
			s.Typography.Headings.FontWeight = w
			assert.NoError(t, Validate(s))
		})
	}
}

func TestValidate_AcceptsLowercaseHex(t *testing.T) {
	s := DefaultSpec()
	s.Colors["raioGreen"][0] = "#e8fff2"
	assert.NoError(t, Validate(s))
}

func TestValidationError_Message(t *testing.T) {
	s := DefaultSpec()
	s.Colors["raioGreen"] = s.Colors["raioGreen"][:9]

	err := Validate(s)
	require.Error(t, err)
	assert.Equal(t, "theme: colors.raioGreen: color ramp must have exactly 10 shades (got 9)", err.Error())

	s = DefaultSpec()
	s.Colors["raioDark"][2] = "nope"
	err = Validate(s)
	require.Error(t, err)
	assert.Equal(t, `theme: colors.raioDark[2]: invalid hex color ("nope")`, err.Error())
}

func TestValidate_StableKeyOrder(t *testing.T) {
	s := DefaultSpec()
	s.Colors["raioDark"] = s.Colors["raioDark"][:3]
	s.Colors["raioGreen"] = s.Colors["raioGreen"][:3]

	for range 20 {
		var verr *ValidationError
		require.True(t, errors.As(Validate(s), &verr))
		assert.Equal(t, "colors.raioDark", verr.Key)
	}
}
