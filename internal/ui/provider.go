package ui

import (
	"errors"
	"io"
	"strings"

	"github.com/raioenergia/raio-frontend/internal/theme"
)

// ErrNoTheme is returned when a themed node is built without a theme.
var ErrNoTheme = errors.New("ui: theme is required")

// Provider is the theming boundary. It emits the theme's custom properties
// once and wraps its children in an element tagged with the theme name, so
// every descendant inherits the same palette and typography.
type Provider struct {
	theme    *theme.Theme
	children []Node
}

// NewProvider wraps children in a theming boundary for t.
func NewProvider(t *theme.Theme, children ...Node) (*Provider, error) {
	if t == nil {
		return nil, ErrNoTheme
	}
	return &Provider{theme: t, children: children}, nil
}

// Theme returns the theme the boundary applies.
func (p *Provider) Theme() *theme.Theme {
	return p.theme
}

// Render writes the stylesheet followed by the wrapped subtree.
func (p *Provider) Render(w io.Writer) error {
	css := p.theme.CSS()
	// Validated tokens cannot contain markup; guard anyway since the CSS is
	// emitted unescaped.
	if strings.Contains(strings.ToLower(css), "</style") {
		return &RenderError{Reason: "stylesheet contains closing tag", Name: p.theme.Name()}
	}

	if _, err := io.WriteString(w, "<style data-raio-styles=\"true\">\n"+css+"</style>"); err != nil {
		return err
	}

	wrapper := El("div", []Attr{
		{Name: "class", Value: "raio-root"},
		{Name: "data-raio-theme", Value: p.theme.Name()},
		{Name: "data-raio-primary-color", Value: p.theme.PrimaryColor()},
	}, p.children...)
	return wrapper.Render(w)
}
