package theme

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
)

// ErrThemeNotFound is returned when a name resolves to neither a user
// theme nor a bundled one.
var ErrThemeNotFound = errors.New("theme not found")

// Source describes where the active theme came from.
type Source struct {
	Name    string
	Path    string // Empty for bundled themes
	Bundled bool
}

// ThemeInfo provides basic theme information for listing.
type ThemeInfo struct {
	Name    string
	Path    string
	Bundled bool
}

// Loader resolves theme names and holds the active theme. The active
// *Theme is itself immutable; Reload swaps in a new one.
type Loader struct {
	mu        sync.Mutex
	logger    *slog.Logger
	themesDir string
	source    Source
	current   atomic.Pointer[Theme]
}

// NewLoader creates a loader that looks for user themes in themesDir.
// An empty themesDir restricts resolution to bundled themes.
func NewLoader(themesDir string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger:    logger,
		themesDir: themesDir,
	}
}

// Load resolves name and makes it the active theme.
//
// Resolution order:
//  1. A path to a theme file (contains a separator or a known extension)
//  2. User themes directory: <name>.toml, .yaml, .yml, .json
//  3. Bundled themes
//
// A theme that exists but fails validation is an error; there is no
// fallback to another theme.
func (l *Loader) Load(name string) (*Theme, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if name == "" {
		name = DefaultThemeName
	}

	if path, ok := l.resolvePath(name); ok {
		t, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		l.source = Source{Name: t.Name(), Path: path}
		l.current.Store(t)
		l.logger.Info("loaded user theme", "name", t.Name(), "path", path)
		return t, nil
	}

	if IsEmbeddedTheme(name) {
		t, err := LoadEmbeddedTheme(name)
		if err != nil {
			return nil, err
		}
		l.source = Source{Name: name, Bundled: true}
		l.current.Store(t)
		l.logger.Info("loaded bundled theme", "name", name)
		return t, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
}

func (l *Loader) resolvePath(name string) (string, bool) {
	if strings.ContainsRune(name, filepath.Separator) || isThemeFile(name) {
		return name, true
	}
	if l.themesDir == "" {
		return "", false
	}
	for _, ext := range Extensions {
		path := filepath.Join(l.themesDir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

func isThemeFile(name string) bool {
	ext := filepath.Ext(name)
	for _, known := range Extensions {
		if ext == known {
			return true
		}
	}
	return false
}

// Current returns the active theme, or nil before the first Load.
func (l *Loader) Current() *Theme {
	return l.current.Load()
}

// Source returns where the active theme was loaded from.
func (l *Loader) Source() Source {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.source
}

// Reload re-reads the active theme file. Bundled themes never change.
// If the file no longer validates the previous theme stays active and the
// error is returned. changed reports whether the tokens differ.
func (l *Loader) Reload() (changed bool, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.source.Path == "" {
		return false, nil
	}

	t, err := LoadFile(l.source.Path)
	if err != nil {
		l.logger.Warn("theme reload failed, keeping previous theme", "path", l.source.Path, "error", err)
		return false, err
	}

	prev := l.current.Load()
	if prev != nil && reflect.DeepEqual(prev.spec, t.spec) {
		return false, nil
	}

	l.current.Store(t)
	l.source.Name = t.Name()
	l.logger.Info("reloaded theme", "name", t.Name(), "path", l.source.Path)
	return true, nil
}

// List returns bundled themes followed by user themes. A user theme with
// the same name as a bundled one replaces it in the listing. When several
// files share a name, the one Load resolves (by Extensions order) is listed.
func (l *Loader) List() ([]ThemeInfo, error) {
	var themes []ThemeInfo
	index := make(map[string]int)

	for _, name := range ListEmbeddedThemes() {
		index[name] = len(themes)
		themes = append(themes, ThemeInfo{Name: name, Bundled: true})
	}

	if l.themesDir == "" {
		return themes, nil
	}

	entries, err := os.ReadDir(l.themesDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return themes, nil
		}
		return themes, err
	}

	for _, entry := range entries {
		if entry.IsDir() || !isThemeFile(entry.Name()) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		path := filepath.Join(l.themesDir, entry.Name())
		// List the file Load would pick for name, not the first in directory order.
		if resolved, ok := l.resolvePath(name); !ok || resolved != path {
			continue
		}
		info := ThemeInfo{Name: name, Path: path}
		if i, seen := index[name]; seen {
			if themes[i].Bundled {
				themes[i] = info
			}
			continue
		}
		index[name] = len(themes)
		themes = append(themes, info)
	}

	return themes, nil
}
