package app

import (
	"io"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/3-lines-studio/gjallar/internal/adapters/esbuild"
	"github.com/3-lines-studio/gjallar/internal/config"
	"github.com/3-lines-studio/gjallar/internal/config/logger"
	"github.com/3-lines-studio/gjallar/internal/devproxy"
	"github.com/3-lines-studio/gjallar/internal/server"
	"github.com/3-lines-studio/gjallar/internal/telemetry"
	"github.com/3-lines-studio/gjallar/internal/usecase"
	"github.com/3-lines-studio/gjallar/internal/watcher"
)

// common provides what every long-running command needs
func common(cfg config.Config, log logger.Logger) fx.Option {
	return fx.Options(
		fx.WithLogger(createFxLogger(cfg, os.Stdout)),
		fx.Supply(cfg),
		fx.Provide(func() logger.Logger { return log }),
		fx.Provide(newReporter),
	)
}

// DevModule provides the in-memory builder, watcher, proxy and dev server
var DevModule = fx.Options(
	fx.Provide(
		fx.Annotate(esbuild.NewBundler, fx.As(new(usecase.Bundler))),
		usecase.NewDevBuildService,
		server.NewReloadHub,
		newProxyMiddleware,
		watcher.NewWatcher,
		newDevServer,
	),
	fx.Invoke(RegisterDev),
)

// PreviewModule provides the server that serves a finished build
var PreviewModule = fx.Options(
	fx.Provide(newPreviewServer),
	fx.Invoke(RegisterPreview),
)

// NewDev creates the fx application behind `gjallar dev`
func NewDev(cfg config.Config, log logger.Logger, opts ...fx.Option) *fx.App {
	return fx.New(append([]fx.Option{common(cfg, log), DevModule}, opts...)...)
}

// NewPreview creates the fx application behind `gjallar preview`
func NewPreview(cfg config.Config, log logger.Logger, opts ...fx.Option) *fx.App {
	return fx.New(append([]fx.Option{common(cfg, log), PreviewModule}, opts...)...)
}

func newReporter(cfg config.Config, log logger.Logger) (*telemetry.Reporter, error) {
	return telemetry.NewReporter(cfg.Sentry, log)
}

func newProxyMiddleware(cfg config.Config, log logger.Logger) (server.Middleware, error) {
	if len(cfg.Server.Proxy) == 0 {
		return nil, nil
	}

	p, err := devproxy.New(cfg.Server.Proxy, log)
	if err != nil {
		return nil, err
	}

	return p.Middleware, nil
}

func newDevServer(cfg config.Config, build *usecase.DevBuildService, hub *server.ReloadHub, proxy server.Middleware, log logger.Logger) *server.Server {
	return server.New(cfg.Addr(), server.NewDevRouter(cfg, build, hub, proxy, log), log)
}

func newPreviewServer(cfg config.Config, log logger.Logger) *server.Server {
	return server.New(cfg.PreviewAddr(), server.NewPreviewRouter(cfg, log), log)
}

// createFxLogger returns an FX logger based on the config
func createFxLogger(cfg config.Config, w io.Writer) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.DebugLevel {
			return &fxevent.ConsoleLogger{W: w}
		}

		return fxevent.NopLogger
	}
}
