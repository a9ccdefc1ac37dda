package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3-lines-studio/gjallar/internal/errors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// newProject writes the given config next to two entry sources
func newProject(t *testing.T, yaml string) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "src", "landing", "main.js"), "1\n")
	writeFile(t, filepath.Join(dir, "src", "protected", "main.js"), "2\n")
	writeFile(t, filepath.Join(dir, DefaultFile), yaml)

	return dir
}

func validConfig(t *testing.T) Config {
	t.Helper()
	dir := newProject(t, "")

	cfg := DefaultConfig()
	cfg.Root = dir
	cfg.Entries = []Entry{{Name: "landing", Source: "src/landing/main.js"}}
	cfg.Build.OutDir = filepath.Join(dir, "dist")

	return cfg
}

func Test_Load(t *testing.T) {
	dir := newProject(t, `
entries:
  protected: src/protected/main.js
  landing: src/landing/main.js
build:
  outDir: out
  base: app
  minify: false
server:
  port: 8080
  proxy:
    /api:
      target: http://localhost:8000
      changeOrigin: true
    /auth: http://localhost:9000
watch:
  debounce: 250ms
`)

	cfg, err := Load(filepath.Join(dir, DefaultFile))
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.Root)
	assert.Equal(t, []Entry{
		{Name: "landing", Source: "src/landing/main.js"},
		{Name: "protected", Source: "src/protected/main.js"},
	}, cfg.Entries)
	assert.Equal(t, filepath.Join(dir, "out"), cfg.Build.OutDir)
	assert.Equal(t, filepath.Join(dir, PublicDir), cfg.Build.PublicDir)
	assert.Equal(t, "/app/", cfg.Build.Base)
	assert.False(t, cfg.Build.Minify)
	assert.True(t, cfg.Build.Manifest)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, PreviewPort, cfg.Server.PreviewPort)
	assert.Equal(t, 250*time.Millisecond, cfg.Watch.Debounce)
	assert.Equal(t, []ProxyRule{
		{Prefix: "/api", Target: "http://localhost:8000", ChangeOrigin: true},
		{Prefix: "/auth", Target: "http://localhost:9000"},
	}, cfg.Server.Proxy)
	assert.Equal(t, "localhost:8080", cfg.Addr())
	assert.Equal(t, filepath.Join(dir, "out", ManifestFile), cfg.ManifestPath())
}

func Test_LoadDefaults(t *testing.T) {
	dir := newProject(t, "entries:\n  landing: src/landing/main.js\n")

	cfg, err := Load(filepath.Join(dir, DefaultFile))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, OutDir), cfg.Build.OutDir)
	assert.Equal(t, Base, cfg.Build.Base)
	assert.Equal(t, Target, cfg.Build.Target)
	assert.Equal(t, Port, cfg.Server.Port)
	assert.Equal(t, DefaultWatchIgnore, cfg.Watch.Ignore)
	assert.Equal(t, WatchDebounce, cfg.Watch.Debounce)
	assert.Equal(t, LogLevel, cfg.Logging.Level)
	assert.Empty(t, cfg.Server.Proxy)
}

func Test_LoadEnvOverrides(t *testing.T) {
	dir := newProject(t, "entries:\n  landing: src/landing/main.js\nserver:\n  port: 3000\n")
	t.Setenv(EnvPort, "5000")

	cfg, err := Load(filepath.Join(dir, DefaultFile))
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
}

func Test_LoadDotEnv(t *testing.T) {
	dir := newProject(t, "entries:\n  landing: src/landing/main.js\n")
	writeFile(t, filepath.Join(dir, EnvFile), EnvLogLevel+"=debug\n")
	t.Setenv(EnvLogLevel, "")
	require.NoError(t, os.Unsetenv(EnvLogLevel))

	cfg, err := Load(filepath.Join(dir, DefaultFile))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
}

func Test_LoadErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  error
	}{
		{"no entries", "build:\n  outDir: dist\n", errors.ErrNoEntries},
		{"entries not a mapping", "entries:\n  - src/landing/main.js\n", errors.ErrFailedToParseConfig},
		{"bad yaml", "entries: [\n", errors.ErrFailedToParseConfig},
		{"bad name", "entries:\n  Landing Page: src/landing/main.js\n", errors.ErrInvalidEntryName},
		{"missing source", "entries:\n  landing: src/nope.js\n", errors.ErrEntryNotFound},
		{"source is directory", "entries:\n  landing: src/landing\n", errors.ErrEntryIsDirectory},
		{"out dir is root", "entries:\n  landing: src/landing/main.js\nbuild:\n  outDir: .\n", errors.ErrUnsafeOutDir},
		{"out dir is parent", "entries:\n  landing: src/landing/main.js\nbuild:\n  outDir: ..\n", errors.ErrUnsafeOutDir},
		{"bad target", "entries:\n  landing: src/landing/main.js\nbuild:\n  target: es5\n", errors.ErrInvalidTarget},
		{"bad port", "entries:\n  landing: src/landing/main.js\nserver:\n  port: 0\n", errors.ErrInvalidPort},
		{"bad proxy prefix", "entries:\n  landing: src/landing/main.js\nserver:\n  proxy:\n    api: http://localhost:8000\n", errors.ErrInvalidProxyPrefix},
		{"bad proxy target", "entries:\n  landing: src/landing/main.js\nserver:\n  proxy:\n    /api: localhost:8000\n", errors.ErrInvalidProxyTarget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := newProject(t, tt.yaml)

			_, err := Load(filepath.Join(dir, DefaultFile))

			require.ErrorIs(t, err, tt.err)
		})
	}
}

func Test_LoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), DefaultFile))

	require.ErrorIs(t, err, errors.ErrFailedToReadConfig)
}

func Test_ValidateDuplicateNames(t *testing.T) {
	cfg := validConfig(t)
	cfg.Entries = append(cfg.Entries, Entry{Name: "landing", Source: "src/protected/main.js"})

	err := cfg.Validate()

	require.ErrorIs(t, err, errors.ErrInvalidConfig)
	require.ErrorIs(t, err, errors.ErrDuplicateEntryName)
}

func Test_ValidateOutDirInsideRootIsAllowed(t *testing.T) {
	cfg := validConfig(t)
	cfg.Build.OutDir = filepath.Join(cfg.Root, "build", "web")

	require.NoError(t, cfg.Validate())
}

func Test_SourcePath(t *testing.T) {
	cfg := validConfig(t)

	assert.Equal(t, filepath.Join(cfg.Root, "src", "landing", "main.js"), cfg.SourcePath(cfg.Entries[0]))
}

func Test_NormalizeBase(t *testing.T) {
	tests := map[string]string{
		"":      "/",
		"/":     "/",
		"app":   "/app/",
		"/app":  "/app/",
		"app/":  "/app/",
		"/a/b/": "/a/b/",
	}

	for in, want := range tests {
		assert.Equal(t, want, normalizeBase(in), in)
	}
}
