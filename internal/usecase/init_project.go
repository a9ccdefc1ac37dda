package usecase

import (
	"fmt"
	iofs "io/fs"
	"path/filepath"

	"github.com/3-lines-studio/gjallar/internal/errors"
	"github.com/3-lines-studio/gjallar/internal/templates"
)

type InitInput struct {
	ProjectDir string
	Name       string
}

type InitOutput struct {
	Files []string
}

type InitService struct {
	source TemplateSource
	fs     FileSystem
	cli    CLIOutput
}

func NewInitService(source TemplateSource, fs FileSystem, cli CLIOutput) *InitService {
	return &InitService{
		source: source,
		fs:     fs,
		cli:    cli,
	}
}

func (s *InitService) InitProject(input InitInput) (InitOutput, error) {
	s.cli.PrintHeader("gjallar init")

	if s.fs.FileExists(input.ProjectDir) {
		entries, err := s.fs.ReadDir(input.ProjectDir)
		if err != nil {
			return InitOutput{}, fmt.Errorf("failed to read directory: %w", err)
		}

		if len(entries) > 0 {
			return InitOutput{}, fmt.Errorf("%w: %s", errors.ErrDirectoryNotEmpty, input.ProjectDir)
		}
	}

	name := input.Name
	if name == "" {
		name = templates.DeriveProjectName(input.ProjectDir)
	}
	data := templates.TemplateData{Name: name}

	var written []string
	err := s.source.WalkDir(".", func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		content, err := s.source.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read template %s: %w", path, err)
		}

		target, isTemplate := templates.ProcessFilename(path)
		dst := filepath.Join(input.ProjectDir, filepath.FromSlash(target))

		if err := s.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", target, err)
		}

		if err := s.fs.WriteFile(dst, templates.ProcessContent(content, isTemplate, data), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}

		written = append(written, target)
		s.cli.PrintFile(target, len(content))
		return nil
	})
	if err != nil {
		return InitOutput{}, err
	}

	s.cli.PrintSuccess("Project %s initialized in %s", name, input.ProjectDir)
	s.cli.PrintDone(fmt.Sprintf("\n  Next: cd %s && gjallar dev", input.ProjectDir))
	return InitOutput{Files: written}, nil
}
