package core

import (
	"path"
	"strings"
)

type ArtifactKind int

const (
	KindScript ArtifactKind = iota
	KindStyle
	KindSourceMap
	KindOther
)

func (k ArtifactKind) String() string {
	switch k {
	case KindScript:
		return "script"
	case KindStyle:
		return "style"
	case KindSourceMap:
		return "sourcemap"
	default:
		return "other"
	}
}

// Artifact is one bundled output file. Path is relative to the output
// directory and always uses forward slashes.
type Artifact struct {
	Entry    string
	Path     string
	Kind     ArtifactKind
	Contents []byte
}

type BundleRequest struct {
	Entry     string
	Source    string
	Root      string
	Naming    string
	Minify    bool
	Sourcemap bool
	Target    string
}

func KindForPath(p string) ArtifactKind {
	switch {
	case strings.HasSuffix(p, ".map"):
		return KindSourceMap
	case path.Ext(p) == ".js":
		return KindScript
	case path.Ext(p) == ".css":
		return KindStyle
	default:
		return KindOther
	}
}

// EntryChunk returns the entry's script and stylesheet paths.
func EntryChunk(artifacts []Artifact) (script string, css []string) {
	for _, a := range artifacts {
		switch a.Kind {
		case KindScript:
			if script == "" {
				script = a.Path
			}
		case KindStyle:
			css = append(css, a.Path)
		}
	}
	return script, css
}

// PageAssets holds the URLs a page document references.
type PageAssets struct {
	Script string
	CSS    []string
}
