package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/3-lines-studio/gjallar/internal/config"
	"github.com/3-lines-studio/gjallar/internal/config/logger"
	"github.com/3-lines-studio/gjallar/internal/core"
	"github.com/3-lines-studio/gjallar/internal/errors"
)

// DevSnapshot is one complete in-memory build, keyed by artifact path.
type DevSnapshot struct {
	Files    map[string]core.Artifact
	Manifest core.Manifest
}

// DevBuildService rebuilds all entries into memory and serves the last
// good snapshot. A failed rebuild keeps that snapshot but marks pages as
// broken until the next success.
type DevBuildService struct {
	bundler Bundler
	cfg     config.Config
	log     logger.Logger

	buildMu sync.Mutex

	mu       sync.RWMutex
	snapshot *DevSnapshot
	lastErr  error
}

func NewDevBuildService(bundler Bundler, cfg config.Config, log logger.Logger) *DevBuildService {
	return &DevBuildService{
		bundler: bundler,
		cfg:     cfg,
		log:     log.WithComponent("DEV-BUILD"),
	}
}

func (s *DevBuildService) Rebuild(ctx context.Context) error {
	s.buildMu.Lock()
	defer s.buildMu.Unlock()

	start := time.Now()
	files := make(map[string]core.Artifact)
	manifest := core.Manifest{}
	var failures []string

	for _, entry := range s.cfg.Entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		artifacts, err := s.bundler.Bundle(core.BundleRequest{
			Entry:     entry.Name,
			Source:    entry.Source,
			Root:      s.cfg.Root,
			Naming:    core.DevNaming(entry.Name),
			Sourcemap: true,
			Target:    s.cfg.Build.Target,
		})
		if err != nil {
			failures = append(failures, err.Error())
			continue
		}

		for _, a := range artifacts {
			files[a.Path] = a
		}

		script, css := core.EntryChunk(artifacts)
		manifest[entry.Name] = core.ManifestChunk{
			File:    script,
			Name:    entry.Name,
			Src:     entry.Source,
			IsEntry: true,
			CSS:     css,
		}
	}

	if len(failures) > 0 {
		err := fmt.Errorf("%w: %s", errors.ErrBuildFailed, strings.Join(failures, "\n"))
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()

		s.log.Error().Err(err).Int("failed", len(failures)).Msg("Rebuild failed, keeping previous assets")
		return err
	}

	s.mu.Lock()
	s.snapshot = &DevSnapshot{
		Files:    files,
		Manifest: manifest,
	}
	s.lastErr = nil
	s.mu.Unlock()

	s.log.Info().Int("entries", len(manifest)).Dur("took", time.Since(start)).Msg("Rebuilt")
	return nil
}

// Asset returns a built file by its path relative to the assets base.
func (s *DevBuildService) Asset(path string) (core.Artifact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil {
		return core.Artifact{}, false
	}
	a, ok := s.snapshot.Files[strings.TrimPrefix(path, "/")]
	return a, ok
}

// Assets resolves the URLs a page loads. It fails while the latest
// rebuild is broken so the page shows the build error.
func (s *DevBuildService) Assets(entry string) (core.PageAssets, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.lastErr != nil {
		return core.PageAssets{}, s.lastErr
	}
	if s.snapshot == nil {
		return core.PageAssets{}, errors.ErrNoSuccessfulBuild
	}

	script, css := core.GetAssets(s.snapshot.Manifest, entry)
	assets := core.PageAssets{Script: core.AssetURL(s.cfg.Build.Base, script)}
	for _, c := range css {
		assets.CSS = append(assets.CSS, core.AssetURL(s.cfg.Build.Base, c))
	}
	return assets, nil
}

func (s *DevBuildService) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}
