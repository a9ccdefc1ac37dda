package telemetry

import (
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/3-lines-studio/gjallar/internal/config"
	"github.com/3-lines-studio/gjallar/internal/config/logger"
)

const flushTimeout = 2 * time.Second

// Reporter sends build and server failures to Sentry. With no DSN
// configured every method is a no-op.
type Reporter struct {
	enabled bool
	log     logger.Logger
}

func NewReporter(cfg config.Sentry, log logger.Logger) (*Reporter, error) {
	r := &Reporter{log: log.WithComponent("SENTRY")}
	if cfg.DSN == "" {
		return r, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     "gjallar@" + config.Version,
	})
	if err != nil {
		return nil, err
	}

	r.enabled = true
	r.log.Debug().Str("environment", cfg.Environment).Msg("Error reporting enabled")
	return r, nil
}

func (r *Reporter) Enabled() bool {
	return r.enabled
}

func (r *Reporter) Capture(err error) {
	if !r.enabled || err == nil {
		return
	}
	sentry.CaptureException(err)
}

// Flush waits for queued events before the process exits.
func (r *Reporter) Flush() {
	if !r.enabled {
		return
	}
	if !sentry.Flush(flushTimeout) {
		r.log.Warn().Msg("Timed out flushing error reports")
	}
}
