package usecase

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"sort"

	"github.com/3-lines-studio/gjallar/internal/adapters/cli"
	"github.com/3-lines-studio/gjallar/internal/config"
	"github.com/3-lines-studio/gjallar/internal/core"
	"github.com/3-lines-studio/gjallar/internal/errors"
)

type BuildResult struct {
	OutDir   string
	Manifest core.Manifest
	Files    []string
}

type BuildService struct {
	bundler Bundler
	fs      FileSystem
	cli     CLIOutput
}

func NewBuildService(bundler Bundler, fs FileSystem, cli CLIOutput) *BuildService {
	return &BuildService{
		bundler: bundler,
		fs:      fs,
		cli:     cli,
	}
}

// Build bundles every entry into a staging directory and swaps it into
// the output directory only when all entries succeeded.
func (s *BuildService) Build(ctx context.Context, cfg config.Config) (BuildResult, error) {
	s.cli.PrintHeader("gjallar build")

	if err := cfg.Validate(); err != nil {
		s.cli.PrintError("%v", err)
		return BuildResult{}, err
	}

	outDir := cfg.Build.OutDir
	report := cli.NewBuildReport(s.cli, outDir)
	report.SetEntryCount(len(cfg.Entries))

	parent := filepath.Dir(outDir)
	if err := s.fs.MkdirAll(parent, 0755); err != nil {
		return BuildResult{}, fmt.Errorf("failed to create %s: %w", parent, err)
	}
	staging, err := s.fs.MkdirTemp(parent, "."+filepath.Base(outDir)+"-staging-*")
	if err != nil {
		return BuildResult{}, fmt.Errorf("failed to create staging dir: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = s.fs.RemoveAll(staging)
		}
	}()

	stepBundle := report.StartStep("Bundling entries")
	artifacts := make(map[string][]core.Artifact, len(cfg.Entries))
	var bundleErrs []error

	for _, entry := range cfg.Entries {
		if err := ctx.Err(); err != nil {
			report.EndStep(stepBundle, false, err.Error())
			report.Render()
			return BuildResult{}, err
		}

		out, err := s.bundler.Bundle(core.BundleRequest{
			Entry:     entry.Name,
			Source:    entry.Source,
			Root:      cfg.Root,
			Naming:    core.ProductionNaming(entry.Name),
			Minify:    cfg.Build.Minify,
			Sourcemap: cfg.Build.Sourcemap,
			Target:    cfg.Build.Target,
		})
		if err != nil {
			report.AddError(entry.Name, "Bundle failed", []string{err.Error()})
			bundleErrs = append(bundleErrs, err)
			continue
		}
		artifacts[entry.Name] = out
	}

	report.EndStep(stepBundle, len(bundleErrs) == 0, "")
	if len(bundleErrs) > 0 {
		report.Render()
		return BuildResult{}, fmt.Errorf("%w: %d of %d entries failed: %w", errors.ErrBuildFailed, len(bundleErrs), len(cfg.Entries), bundleErrs[0])
	}

	if cfg.Build.PublicDir != "" && s.fs.IsDir(cfg.Build.PublicDir) {
		stepPublic := report.StartStep("Copying public assets")
		if err := s.copyDirRecursive(cfg.Build.PublicDir, staging); err != nil {
			report.AddWarning("public", "Failed to copy public assets", []string{err.Error()})
			report.EndStep(stepPublic, true, err.Error())
		} else {
			report.EndStep(stepPublic, true, "")
		}
	}

	stepWrite := report.StartStep("Writing assets")
	manifest := core.Manifest{}
	var files []string

	for _, entry := range cfg.Entries {
		for _, a := range artifacts[entry.Name] {
			if err := s.writeArtifact(staging, a); err != nil {
				report.EndStep(stepWrite, false, err.Error())
				report.Render()
				return BuildResult{}, err
			}
			files = append(files, a.Path)
		}

		script, css := core.EntryChunk(artifacts[entry.Name])
		manifest[entry.Name] = core.ManifestChunk{
			File:    script,
			Name:    entry.Name,
			Src:     entry.Source,
			IsEntry: true,
			CSS:     css,
		}
	}
	report.EndStep(stepWrite, true, "")

	if cfg.Build.Manifest {
		stepManifest := report.StartStep("Writing manifest")
		data, err := manifest.Marshal()
		if err != nil {
			report.EndStep(stepManifest, false, err.Error())
			report.Render()
			return BuildResult{}, fmt.Errorf("failed to encode manifest: %w", err)
		}
		if err := s.fs.WriteFile(filepath.Join(staging, config.ManifestFile), data, 0644); err != nil {
			report.EndStep(stepManifest, false, err.Error())
			report.Render()
			return BuildResult{}, fmt.Errorf("failed to write manifest: %w", err)
		}
		files = append(files, config.ManifestFile)
		report.EndStep(stepManifest, true, "")
	}

	if err := s.commit(staging, outDir); err != nil {
		report.AddError("output", "Failed to replace output directory", []string{err.Error()})
		report.Render()
		return BuildResult{}, err
	}
	committed = true

	sort.Strings(files)
	for _, entry := range cfg.Entries {
		for _, a := range artifacts[entry.Name] {
			s.cli.PrintFile(path.Join(filepath.Base(outDir), a.Path), len(a.Contents))
		}
	}
	report.Render()

	return BuildResult{
		OutDir:   outDir,
		Manifest: manifest,
		Files:    files,
	}, nil
}

// commit swaps staging into outDir. The previous output is parked beside
// staging and put back if the final rename fails.
func (s *BuildService) commit(staging, outDir string) error {
	previous := staging + "-previous"

	hadPrevious := s.fs.FileExists(outDir)
	if hadPrevious {
		if err := s.fs.Rename(outDir, previous); err != nil {
			return fmt.Errorf("failed to move %s aside: %w", outDir, err)
		}
	}

	if err := s.fs.Rename(staging, outDir); err != nil {
		if hadPrevious {
			if restoreErr := s.fs.Rename(previous, outDir); restoreErr != nil {
				return fmt.Errorf("failed to move build into %s: %w (previous output kept at %s: %w)", outDir, err, previous, restoreErr)
			}
		}
		return fmt.Errorf("failed to move build into %s: %w", outDir, err)
	}

	if hadPrevious {
		if err := s.fs.RemoveAll(previous); err != nil {
			s.cli.PrintWarning("Failed to remove previous output %s: %v", previous, err)
		}
	}

	return nil
}

func (s *BuildService) writeArtifact(dir string, a core.Artifact) error {
	dst := filepath.Join(dir, filepath.FromSlash(a.Path))
	if err := s.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", a.Path, err)
	}
	if err := s.fs.WriteFile(dst, a.Contents, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", a.Path, err)
	}
	return nil
}

func (s *BuildService) copyDirRecursive(src, dst string) error {
	entries, err := s.fs.ReadDir(src)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", src, err)
	}

	if err := s.fs.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dst, err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := s.copyDirRecursive(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}

		data, err := s.fs.ReadFile(srcPath)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", srcPath, err)
		}
		if err := s.fs.WriteFile(dstPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", dstPath, err)
		}
	}

	return nil
}
