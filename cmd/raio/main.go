// raio serves and builds the Raio Energia front-end.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/raioenergia/raio-frontend/internal/config"
	"github.com/raioenergia/raio-frontend/internal/theme"
)

// Version metadata injected via ldflags.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// errExit signals a non-zero exit after the command has already reported
// its own error.
var errExit = errors.New("exit")

// app holds state shared by subcommands for one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configPath string
	verbose    bool
	colorMode  string

	cfg    *config.Config
	logger *slog.Logger
	styles styles
}

// run executes the raio CLI with the given args.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errExit) {
			fmt.Fprintf(stderr, "raio: %v\n", err)
		}
		return 1
	}
	return 0
}

// newRootCmd creates the root cobra command with all subcommands.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "raio",
		Short:         "Serve and build the Raio Energia front-end",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			switch a.colorMode {
			case "always", "auto", "never":
			default:
				return fmt.Errorf("invalid --color value %q: must be always, auto, or never", a.colorMode)
			}
			// Restyled from the active theme once a command loads one.
			a.styles = newStyles(a.colorMode, stdout, theme.Default())
			a.setupLogger()

			cfg, err := config.LoadConfig(a.configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			a.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file (default: $XDG_CONFIG_HOME/raio/config.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&a.colorMode, "color", "auto", "Color output: always, auto, never")

	root.AddCommand(
		newServeCmd(a),
		newBuildCmd(a),
		newThemeCmd(a),
		newVersionCmd(stdout),
	)
	return root
}

// setupLogger configures the slog logger for this invocation.
func (a *app) setupLogger() {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level})
	a.logger = slog.New(handler)
	slog.SetDefault(a.logger)
}

// loadTheme resolves name (or the configured theme when empty) into a
// loader holding it as the current theme. Output styles follow the loaded
// theme.
func (a *app) loadTheme(name string) (*theme.Loader, error) {
	if name == "" {
		name = a.cfg.Theme.Name
	}
	loader := theme.NewLoader(a.cfg.ThemesDir(), a.logger)
	t, err := loader.Load(name)
	if err != nil {
		return nil, err
	}
	a.styles = newStyles(a.colorMode, a.stdout, t)
	return loader, nil
}
