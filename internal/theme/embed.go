package theme

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// EmbeddedThemes contains all bundled theme files.
//
//go:embed themes/*.toml
var EmbeddedThemes embed.FS

// GetEmbeddedTheme retrieves the raw TOML of a bundled theme.
func GetEmbeddedTheme(name string) ([]byte, bool) {
	data, err := EmbeddedThemes.ReadFile("themes/" + name + ".toml")
	if err != nil {
		return nil, false
	}
	return data, true
}

// LoadEmbeddedTheme decodes and validates a bundled theme.
func LoadEmbeddedTheme(name string) (*Theme, error) {
	data, ok := GetEmbeddedTheme(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	spec, err := Decode(data, FormatTOML)
	if err != nil {
		return nil, fmt.Errorf("bundled theme %s: %w", name, err)
	}
	if spec.Name == "" {
		spec.Name = name
	}
	return New(spec)
}

// ListEmbeddedThemes returns the names of all bundled themes.
func ListEmbeddedThemes() []string {
	entries, err := fs.ReadDir(EmbeddedThemes, "themes")
	if err != nil {
		return []string{DefaultThemeName}
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if ext := filepath.Ext(name); ext == ".toml" {
			names = append(names, strings.TrimSuffix(name, ext))
		}
	}
	return names
}

// IsEmbeddedTheme checks if a theme name is bundled.
func IsEmbeddedTheme(name string) bool {
	_, found := GetEmbeddedTheme(name)
	return found
}
