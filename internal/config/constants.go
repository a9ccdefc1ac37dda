package config

import "time"

// Version is stamped at build time via -ldflags
var Version = "dev"

// Config file and environment
const (
	DefaultFile = "gjallar.yaml"
	EnvFile     = ".env"

	EnvPort      = "GJALLAR_PORT"
	EnvOutDir    = "GJALLAR_OUT_DIR"
	EnvLogLevel  = "GJALLAR_LOG_LEVEL"
	EnvLogFormat = "GJALLAR_LOG_FORMAT"
	EnvSentryDSN = "SENTRY_DSN"

	keyDelimiter = "::"
)

// Build defaults
const (
	OutDir    = "dist"
	Base      = "/"
	PublicDir = "public"
	Target    = "es2020"

	AssetsDir    = "assets"
	ManifestFile = "manifest.json"
)

// Server defaults
const (
	Host        = "localhost"
	Port        = 3000
	PreviewPort = 4173

	ReloadPath = "/__gjallar/reload"
)

// Watch defaults
const (
	WatchDebounce = 100 * time.Millisecond
)

// Logging defaults
const (
	LogLevel  = "info"
	LogFormat = "console"
)

// Targets lists the JavaScript targets accepted by build.target
var Targets = []string{"es2017", "es2018", "es2019", "es2020", "es2021", "es2022", "es2023", "es2024", "esnext"}

// DefaultWatchIgnore lists patterns never treated as source changes
var DefaultWatchIgnore = []string{"**/node_modules/**", "**/.git/**"}
