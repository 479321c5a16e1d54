package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raioenergia/raio-frontend/internal/theme"
	"github.com/raioenergia/raio-frontend/internal/tui"
)

func newThemeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect and validate themes",
	}
	cmd.AddCommand(
		newThemeListCmd(a),
		newThemeShowCmd(a),
		newThemeValidateCmd(a),
		newThemePreviewCmd(a),
	)
	return cmd
}

func newThemeListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List bundled and user themes",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			loader := theme.NewLoader(a.cfg.ThemesDir(), a.logger)
			themes, err := loader.List()
			if err != nil {
				return err
			}
			for _, info := range themes {
				marker := " "
				if info.Name == a.cfg.Theme.Name {
					marker = "*"
				}
				where := "(bundled)"
				if !info.Bundled {
					where = info.Path
				}
				fmt.Fprintf(a.stdout, "%s %-16s %s\n", marker, info.Name, a.styles.Dim.Render(where))
			}
			return nil
		},
	}
}

func newThemeShowCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Print a theme as toml, yaml, json or css",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var name string
			if len(args) > 0 {
				name = args[0]
			}
			loader, err := a.loadTheme(name)
			if err != nil {
				return err
			}
			t := loader.Current()

			if format == "css" {
				fmt.Fprint(a.stdout, t.CSS())
				return nil
			}
			f, err := theme.ParseFormat(format)
			if err != nil {
				return err
			}
			data, err := theme.Encode(t.Spec(), f)
			if err != nil {
				return err
			}
			_, err = a.stdout.Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", "Output format: toml, yaml, json, css")
	return cmd
}

func newThemeValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a theme file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			t, err := theme.LoadFile(args[0])
			if err != nil {
				fmt.Fprintf(a.stderr, "%s %v\n", a.styles.Error.Render("invalid:"), err)
				return errExit
			}
			fmt.Fprintf(a.stdout, "%s %s (%d palettes, primary %s)\n",
				a.styles.Success.Render("ok:"), t.Name(), len(t.PaletteNames()), t.PrimaryColor())
			return nil
		},
	}
}

func newThemePreviewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "preview [name]",
		Short: "Preview a theme's color ramps in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var name string
			if len(args) > 0 {
				name = args[0]
			}
			loader, err := a.loadTheme(name)
			if err != nil {
				return err
			}
			return tui.Run(loader.Current(), a.cfg)
		},
	}
}
