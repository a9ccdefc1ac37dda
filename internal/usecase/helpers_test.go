package usecase

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/3-lines-studio/gjallar/internal/adapters/cli"
	"github.com/3-lines-studio/gjallar/internal/config"
	"github.com/3-lines-studio/gjallar/internal/core"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// newProject lays out a two-entry project in a temp dir and returns its config.
func newProject(t *testing.T) config.Config {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "landing", "main.js"), "console.log('landing')\n")
	writeFile(t, filepath.Join(root, "src", "protected", "main.js"), "console.log('protected')\n")

	cfg := config.DefaultConfig()
	cfg.Root = root
	cfg.Entries = []config.Entry{
		{Name: "landing", Source: "src/landing/main.js"},
		{Name: "protected", Source: "src/protected/main.js"},
	}
	cfg.Build.OutDir = filepath.Join(root, "dist")
	cfg.Build.PublicDir = filepath.Join(root, "public")
	return cfg
}

func newTestOutput() (*cli.Output, *bytes.Buffer) {
	var buf bytes.Buffer
	return cli.NewOutputWithWriters(&buf, &buf, false), &buf
}

func artifactsFor(entry, hash string) []core.Artifact {
	return []core.Artifact{
		{Entry: entry, Path: "assets/" + entry + "." + hash + ".js", Kind: core.KindScript, Contents: []byte("console.log('" + entry + "')")},
		{Entry: entry, Path: "assets/" + entry + "." + hash + ".css", Kind: core.KindStyle, Contents: []byte("body{}")},
	}
}
