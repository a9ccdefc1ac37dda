package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrNoEntries          = errors.New("no entry points declared")
	ErrInvalidEntryName   = errors.New("invalid entry point name")
	ErrDuplicateEntryName = errors.New("duplicate entry point name")
	ErrEntryNotFound      = errors.New("entry point source not found")
	ErrEntryIsDirectory   = errors.New("entry point source is a directory")

	ErrOutDirRequired = errors.New("output directory is required")
	ErrUnsafeOutDir   = errors.New("output directory must not contain the project root")

	ErrInvalidPort        = errors.New("port must be between 1 and 65535")
	ErrInvalidProxyPrefix = errors.New("proxy prefix must start with /")
	ErrInvalidProxyTarget = errors.New("proxy target must be an absolute http(s) URL")
	ErrInvalidTarget      = errors.New("unsupported build target")

	ErrBundleFailed      = errors.New("bundle failed")
	ErrMissingEntryChunk = errors.New("bundle produced no JavaScript output")
	ErrBuildFailed       = errors.New("build failed")
	ErrNoSuccessfulBuild = errors.New("no successful build available")

	ErrManifestNotFound  = errors.New("manifest not found")
	ErrDirectoryNotEmpty = errors.New("directory is not empty")
)

var (
	Is  = errors.Is
	As  = errors.As
	New = errors.New
)
