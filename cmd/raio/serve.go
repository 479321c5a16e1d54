package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/raioenergia/raio-frontend/internal/page"
	"github.com/raioenergia/raio-frontend/internal/theme"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var (
		host string
		port int
		dev  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the front-end over HTTP",
		Long: `Serve the front-end document, its stylesheet and theme tokens.

With --dev the page reloads itself whenever the theme file changes
(when theme.hot_reload is enabled) and responses are not cached.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("host") {
				a.cfg.Server.Host = host
			}
			if cmd.Flags().Changed("port") {
				a.cfg.Server.Port = port
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, dev)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Listen host (default from config)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Listen port (default from config)")
	cmd.Flags().BoolVar(&dev, "dev", false, "Development mode: live reload, no caching")
	return cmd
}

func (a *app) serve(ctx context.Context, dev bool) error {
	ln, err := net.Listen("tcp", a.cfg.Addr())
	if err != nil {
		return err
	}
	return a.serveOn(ctx, ln, dev)
}

// serveOn serves on ln until ctx is cancelled. ln is closed on return.
func (a *app) serveOn(ctx context.Context, ln net.Listener, dev bool) error {
	loader, err := a.loadTheme("")
	if err != nil {
		_ = ln.Close()
		return err
	}

	handler := page.NewHandler(loader, page.Options{
		Title:    a.cfg.HTML.Title,
		Lang:     a.cfg.HTML.Lang,
		Viewport: a.cfg.HTML.Viewport,
		MountID:  a.cfg.HTML.MountID,
		Dev:      dev,
		Logger:   a.logger,
	})

	if dev && a.cfg.Theme.HotReload {
		watcher := theme.NewWatcher(loader, a.logger)
		watcher.SetChangeCallback(func(t *theme.Theme) {
			a.logger.Info("theme reloaded", "theme", t.Name())
			handler.Reload().Notify()
		})
		if err := watcher.Start(ctx); err != nil {
			_ = ln.Close()
			return fmt.Errorf("starting theme watcher: %w", err)
		}
		defer watcher.Stop()
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if reload := handler.Reload(); reload != nil {
		// Shutdown does not cancel in-flight requests; end the reload streams.
		srv.RegisterOnShutdown(reload.Close)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	src := loader.Source()
	fmt.Fprintf(a.stdout, "%s http://%s %s\n",
		a.styles.Title.Render("raio"), ln.Addr(), a.styles.Dim.Render("(theme "+src.Name+")"))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	a.logger.Debug("server stopped")
	return nil
}
