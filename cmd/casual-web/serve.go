package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/casual-erp/casual-web/ccli"
	"github.com/casual-erp/casual-web/hooks"
	"github.com/casual-erp/casual-web/ui"
)

// app holds what every subcommand shares once the configuration is loaded.
type app struct {
	cfg    *appConfig
	logger *slog.Logger
}

// newInvoker builds the cli invoker. Development mode logs every call
// through the hook registry.
func (a *app) newInvoker() (*ccli.Invoker, *hooks.Registry, error) {
	registry := hooks.NewRegistry()
	if !a.cfg.Production() {
		hooks.NewLoggingHooks(a.logger).Register(registry)
	}
	invCfg := a.cfg.invokerConfig(a.logger)
	invCfg.Hooks = registry
	inv, err := ccli.New(invCfg)
	if err != nil {
		return nil, nil, err
	}
	return inv, registry, nil
}

func newServeCommand(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web frontend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), app)
		},
	}
	cmd.Flags().String("addr", defaultAddr, "listen address")
	cmd.Flags().String("public-dir", ui.DefaultPublicDir, "static asset directory")
	cmd.Flags().String("output-dir", ui.DefaultOutputDir, "directory casual-cli writes PDFs to")
	return cmd
}

// serve runs the HTTP server until ctx is done, then drains in-flight
// requests for at most the shutdown timeout.
func serve(ctx context.Context, app *app) error {
	cfg, logger := app.cfg, app.logger

	if err := os.MkdirAll(cfg.UI.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	inv, registry, err := app.newInvoker()
	if err != nil {
		return err
	}
	uiCfg := cfg.uiConfig(logger)
	uiCfg.Hooks = registry
	handler, err := ui.NewHandler(inv, uiCfg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening",
			"addr", srv.Addr,
			"production", cfg.Production(),
			"output_dir", cfg.UI.OutputDir,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
