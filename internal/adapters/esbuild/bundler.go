package esbuild

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/3-lines-studio/gjallar/internal/config/logger"
	"github.com/3-lines-studio/gjallar/internal/core"
	"github.com/3-lines-studio/gjallar/internal/errors"
)

// virtualOutDir anchors output paths. Nothing is written there.
const virtualOutDir = ".gjallar-out"

var targets = map[string]api.Target{
	"es2017": api.ES2017,
	"es2018": api.ES2018,
	"es2019": api.ES2019,
	"es2020": api.ES2020,
	"es2021": api.ES2021,
	"es2022": api.ES2022,
	"es2023": api.ES2023,
	"es2024": api.ES2024,
	"esnext": api.ESNext,
}

var loaders = map[string]api.Loader{
	".js":    api.LoaderJS,
	".jsx":   api.LoaderJSX,
	".ts":    api.LoaderTS,
	".tsx":   api.LoaderTSX,
	".css":   api.LoaderCSS,
	".json":  api.LoaderJSON,
	".svg":   api.LoaderFile,
	".png":   api.LoaderFile,
	".jpg":   api.LoaderFile,
	".jpeg":  api.LoaderFile,
	".gif":   api.LoaderFile,
	".webp":  api.LoaderFile,
	".woff":  api.LoaderFile,
	".woff2": api.LoaderFile,
}

type Bundler struct {
	log logger.Logger
}

func NewBundler(log logger.Logger) *Bundler {
	return &Bundler{log: log.WithComponent("BUNDLER")}
}

// Bundle runs one in-memory esbuild pass for a single entry point and
// returns its output files relative to the output directory.
func (b *Bundler) Bundle(req core.BundleRequest) ([]core.Artifact, error) {
	target, ok := targets[strings.ToLower(req.Target)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrInvalidTarget, req.Target)
	}

	outDir := filepath.Join(req.Root, virtualOutDir)
	opts := api.BuildOptions{
		EntryPoints:       []string{filepath.Join(req.Root, filepath.FromSlash(req.Source))},
		AbsWorkingDir:     req.Root,
		Outdir:            outDir,
		EntryNames:        req.Naming,
		ChunkNames:        core.AssetsDir + "/[name].[hash]",
		AssetNames:        core.AssetsDir + "/[name].[hash]",
		Bundle:            true,
		Write:             false,
		Format:            api.FormatESModule,
		Platform:          api.PlatformBrowser,
		Target:            target,
		Loader:            loaders,
		MinifyWhitespace:  req.Minify,
		MinifyIdentifiers: req.Minify,
		MinifySyntax:      req.Minify,
		LogLevel:          api.LogLevelSilent,
	}
	if req.Sourcemap {
		opts.Sourcemap = api.SourceMapLinked
	}

	b.log.Debug().Str("entry", req.Entry).Str("source", req.Source).Msg("Bundling entry")

	result := api.Build(opts)
	if len(result.Errors) > 0 {
		msgs := api.FormatMessages(result.Errors, api.FormatMessagesOptions{Kind: api.ErrorMessage})
		return nil, fmt.Errorf("%w: %s: %s", errors.ErrBundleFailed, req.Entry, strings.TrimSpace(strings.Join(msgs, "\n")))
	}
	for _, w := range api.FormatMessages(result.Warnings, api.FormatMessagesOptions{Kind: api.WarningMessage}) {
		b.log.Warn().Str("entry", req.Entry).Msg(strings.TrimSpace(w))
	}

	artifacts := make([]core.Artifact, 0, len(result.OutputFiles))
	for _, f := range result.OutputFiles {
		rel, err := filepath.Rel(outDir, f.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", errors.ErrBundleFailed, req.Entry, err)
		}
		rel = filepath.ToSlash(rel)
		artifacts = append(artifacts, core.Artifact{
			Entry:    req.Entry,
			Path:     rel,
			Kind:     core.KindForPath(rel),
			Contents: f.Contents,
		})
	}

	if script, _ := core.EntryChunk(artifacts); script == "" {
		return nil, fmt.Errorf("%w: %s", errors.ErrMissingEntryChunk, req.Entry)
	}

	return artifacts, nil
}
