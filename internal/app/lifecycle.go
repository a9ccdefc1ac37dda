package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/fx"

	"github.com/3-lines-studio/gjallar/internal/config"
	"github.com/3-lines-studio/gjallar/internal/config/logger"
	"github.com/3-lines-studio/gjallar/internal/server"
	"github.com/3-lines-studio/gjallar/internal/telemetry"
	"github.com/3-lines-studio/gjallar/internal/usecase"
	"github.com/3-lines-studio/gjallar/internal/watcher"
)

// RegisterDev builds once, then starts the watcher and the listener. A
// failing first build still starts the server so the browser shows it.
func RegisterDev(
	lc fx.Lifecycle,
	build *usecase.DevBuildService,
	hub *server.ReloadHub,
	w watcher.Watcher,
	srv *server.Server,
	reporter *telemetry.Reporter,
	log logger.Logger,
) {
	log = log.WithComponent("DEV")
	watchCtx, cancel := context.WithCancel(context.Background())

	rebuild := func(ctx context.Context, files []string) {
		log.Info().Strs("files", files).Msg("Change detected, rebuilding")

		if err := build.Rebuild(ctx); err != nil {
			reporter.Capture(err)
		}

		hub.Notify()
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := build.Rebuild(ctx); err != nil {
				reporter.Capture(err)
				log.Warn().Err(err).Msg("Initial build failed, serving the error page until fixed")
			}

			if err := w.Start(watchCtx, rebuild); err != nil {
				return fmt.Errorf("failed to start watcher: %w", err)
			}

			return srv.Start()
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			w.Close()
			reporter.Flush()

			return srv.Shutdown(ctx)
		},
	})
}

// RegisterPreview serves the existing build and warns when there is none.
func RegisterPreview(lc fx.Lifecycle, cfg config.Config, srv *server.Server, reporter *telemetry.Reporter, log logger.Logger) {
	log = log.WithComponent("PREVIEW")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if _, err := os.Stat(cfg.Build.OutDir); err != nil {
				log.Warn().Str("outDir", cfg.Build.OutDir).Msg("No build output found, run `gjallar build` first")
			}

			return srv.Start()
		},
		OnStop: func(ctx context.Context) error {
			reporter.Flush()
			return srv.Shutdown(ctx)
		},
	})
}
