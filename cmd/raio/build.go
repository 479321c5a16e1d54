package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/raioenergia/raio-frontend/internal/page"
)

func newBuildCmd(a *app) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the front-end as static files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if outDir == "" {
				outDir = a.cfg.Build.OutDir
			}

			loader, err := a.loadTheme("")
			if err != nil {
				return err
			}

			report, err := page.Export(outDir, loader.Current(), page.Options{
				Title:    a.cfg.HTML.Title,
				Lang:     a.cfg.HTML.Lang,
				Viewport: a.cfg.HTML.Viewport,
				MountID:  a.cfg.HTML.MountID,
				Logger:   a.logger,
			})
			if err != nil {
				return err
			}

			for _, f := range report.Manifest.Files {
				fmt.Fprintf(a.stdout, "  %-12s %s\n", f.Path, a.styles.Dim.Render(humanize.Bytes(uint64(f.Size))))
			}
			fmt.Fprintf(a.stdout, "%s %s (%s, build %s)\n",
				a.styles.Success.Render("built"), report.OutDir,
				humanize.Bytes(uint64(report.TotalSize())), report.Manifest.BuildID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default from config)")
	return cmd
}
