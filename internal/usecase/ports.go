package usecase

import (
	"io"

	"github.com/3-lines-studio/gjallar/internal/adapters/fs"
	"github.com/3-lines-studio/gjallar/internal/core"
)

//go:generate mockgen -source=ports.go -destination=ports_mock.go -package=usecase

type Bundler interface {
	Bundle(req core.BundleRequest) ([]core.Artifact, error)
}

type CLIOutput interface {
	PrintHeader(msg string)
	PrintStep(msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
	PrintFile(path string, size int)
	PrintDone(msg string)
	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
	Out() io.Writer
	Err() io.Writer
}

type FileSystem = fs.FileSystem

type TemplateSource = fs.ReadOnlyFileSystem
