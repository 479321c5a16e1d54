package ui

import "github.com/raioenergia/raio-frontend/internal/theme"

// RootText is the placeholder content of the root component.
const RootText = "Raio Energia - Frontend"

// Root builds the application's top-level tree: a theming boundary around
// a single static text container.
func Root(t *theme.Theme) (Node, error) {
	p, err := NewProvider(t, El("div", nil, Text(RootText)))
	if err != nil {
		return nil, err
	}
	return p, nil
}
