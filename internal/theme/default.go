package theme

// DefaultThemeName is the name of the built-in theme.
const DefaultThemeName = "raio"

// DefaultSpec returns the Raio Energia design tokens. Every call builds
// fresh maps and slices, so callers may modify the result freely.
func DefaultSpec() Spec {
	return Spec{
		Name:         DefaultThemeName,
		PrimaryColor: "raioGreen",
		Colors: map[string]ColorRamp{
			"raioGreen": {
				"#E8FFF2",
				"#D1FFE5",
				"#A3FFD1",
				"#74FFBC",
				"#4AFFA8",
				"#00FF88", // brand green
				"#00E675",
				"#00CC62",
				"#00B34F",
				"#00993C",
			},
			"raioDark": {
				"#F8F9FA",
				"#E9ECEF",
				"#DEE2E6",
				"#CED4DA",
				"#ADB5BD",
				"#6C757D",
				"#495057",
				"#343A40",
				"#212529",
				"#1A1D20",
			},
		},
		Typography: Typography{
			FontFamily: []string{"Inter", "system-ui", "sans-serif"},
			Headings: Headings{
				FontFamily: []string{"Inter", "system-ui", "sans-serif"},
				FontWeight: "700",
			},
		},
	}
}

// Default returns the validated built-in theme.
func Default() *Theme {
	return MustNew(DefaultSpec())
}
