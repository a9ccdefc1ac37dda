package templates

import (
	"embed"
	"io/fs"
	"path/filepath"
	"strings"
)

//go:embed all:starter
var starterFS embed.FS

// Starter returns the project scaffold written by `gjallar init`.
func Starter() (fs.FS, error) {
	return fs.Sub(starterFS, "starter")
}

type TemplateData struct {
	Name string
}

func ProcessFilename(filename string) (string, bool) {
	if before, ok := strings.CutSuffix(filename, ".tmpl"); ok {
		return before, true
	}
	return filename, false
}

func ProcessContent(content []byte, isTemplate bool, data TemplateData) []byte {
	if !isTemplate {
		return content
	}

	return []byte(strings.ReplaceAll(string(content), "{{.Name}}", data.Name))
}

func DeriveProjectName(projectDir string) string {
	base := filepath.Base(projectDir)
	if base == "." || base == "/" || base == "" {
		return "myapp"
	}
	return base
}
