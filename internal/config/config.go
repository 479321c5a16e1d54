// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultHost     = "localhost"
	DefaultPort     = 3000
	DefaultTitle    = "Raio Energia"
	DefaultLang     = "en"
	DefaultViewport = "width=device-width, initial-scale=1.0"
	DefaultMountID  = "root"
	DefaultTheme    = "raio"
	DefaultOutDir   = "dist"
)

// Config represents the raio configuration.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	HTML      HTMLConfig      `toml:"html"`
	Theme     ThemeConfig     `toml:"theme"`
	Build     BuildConfig     `toml:"build"`
	Clipboard ClipboardConfig `toml:"clipboard"`
}

// ServerConfig holds dev server options.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// HTMLConfig holds the document shell settings.
type HTMLConfig struct {
	Title    string `toml:"title"`
	Lang     string `toml:"lang"`
	Viewport string `toml:"viewport"`
	MountID  string `toml:"mount_id"`
}

// ThemeConfig selects the theme.
type ThemeConfig struct {
	Name      string `toml:"name"`       // Theme name or path to a theme file
	Dir       string `toml:"dir"`        // User themes directory (empty = default)
	HotReload bool   `toml:"hot_reload"` // Watch the theme file in dev mode
}

// BuildConfig holds static export options.
type BuildConfig struct {
	OutDir string `toml:"out_dir"`
}

// ClipboardConfig holds clipboard settings (theme preview only).
type ClipboardConfig struct {
	Command string `toml:"command"` // Auto-detected if empty
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		HTML: HTMLConfig{
			Title:    DefaultTitle,
			Lang:     DefaultLang,
			Viewport: DefaultViewport,
			MountID:  DefaultMountID,
		},
		Theme: ThemeConfig{
			Name:      DefaultTheme,
			Dir:       "",
			HotReload: true,
		},
		Build: BuildConfig{
			OutDir: DefaultOutDir,
		},
		Clipboard: ClipboardConfig{
			Command: "", // Auto-detect
		},
	}
}

// configHome returns XDG_CONFIG_HOME, falling back to ~/.config.
func configHome() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return configHome
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	home := configHome()
	if home == "" {
		return ""
	}
	return filepath.Join(home, "raio", "config.toml")
}

// ThemesDir returns the directory user themes are read from.
func (c *Config) ThemesDir() string {
	if c.Theme.Dir != "" {
		return c.Theme.Dir
	}
	home := configHome()
	if home == "" {
		return ""
	}
	return filepath.Join(home, "raio", "themes")
}

// Addr returns the listen address of the dev server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings the server or document cannot work with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range 1-65535", c.Server.Port)
	}
	if c.HTML.Title == "" {
		return errors.New("html.title must not be empty")
	}
	if c.HTML.MountID == "" {
		return errors.New("html.mount_id must not be empty")
	}
	if c.Build.OutDir == "" {
		return errors.New("build.out_dir must not be empty")
	}
	return nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
