package templates

import (
	"io/fs"
	"strings"
	"testing"
)

func TestProcessFilename(t *testing.T) {
	tests := []struct {
		name         string
		filename     string
		wantFilename string
		wantIsTmpl   bool
	}{
		{
			name:         "tmpl file gets processed",
			filename:     "gjallar.yaml.tmpl",
			wantFilename: "gjallar.yaml",
			wantIsTmpl:   true,
		},
		{
			name:         "regular file unchanged",
			filename:     "src/landing/main.js",
			wantFilename: "src/landing/main.js",
			wantIsTmpl:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotFilename, gotIsTmpl := ProcessFilename(tt.filename)
			if gotFilename != tt.wantFilename {
				t.Errorf("ProcessFilename(%q) filename = %q, want %q", tt.filename, gotFilename, tt.wantFilename)
			}
			if gotIsTmpl != tt.wantIsTmpl {
				t.Errorf("ProcessFilename(%q) isTmpl = %v, want %v", tt.filename, gotIsTmpl, tt.wantIsTmpl)
			}
		})
	}
}

func TestProcessContent(t *testing.T) {
	data := TemplateData{Name: "shop"}

	got := string(ProcessContent([]byte("# {{.Name}} config"), true, data))
	if got != "# shop config" {
		t.Errorf("ProcessContent() = %q, want %q", got, "# shop config")
	}

	got = string(ProcessContent([]byte("# {{.Name}} config"), false, data))
	if got != "# {{.Name}} config" {
		t.Errorf("ProcessContent() on plain file = %q, want input unchanged", got)
	}
}

func TestDeriveProjectName(t *testing.T) {
	tests := map[string]string{
		"/home/me/shop": "shop",
		".":             "myapp",
		"/":             "myapp",
	}

	for dir, want := range tests {
		if got := DeriveProjectName(dir); got != want {
			t.Errorf("DeriveProjectName(%q) = %q, want %q", dir, got, want)
		}
	}
}

func TestStarterContents(t *testing.T) {
	starter, err := Starter()
	if err != nil {
		t.Fatalf("Starter() error = %v", err)
	}

	required := []string{
		"gjallar.yaml.tmpl",
		"src/landing/main.js",
		"src/protected/main.js",
		"public/robots.txt",
		".gitignore",
	}
	for _, path := range required {
		if _, err := fs.Stat(starter, path); err != nil {
			t.Errorf("starter is missing %s: %v", path, err)
		}
	}

	cfg, err := fs.ReadFile(starter, "gjallar.yaml.tmpl")
	if err != nil {
		t.Fatalf("read config template: %v", err)
	}
	if !strings.Contains(string(cfg), "changeOrigin: true") {
		t.Errorf("config template must proxy /api with changeOrigin")
	}
}
