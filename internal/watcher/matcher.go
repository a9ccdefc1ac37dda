package watcher

import (
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Matcher decides which project paths must not trigger a rebuild
type Matcher interface {
	Ignored(path string) bool
	IgnoredDir(dirPath string) bool
}

type matcher struct {
	ignores []glob.Glob
}

// NewMatcher compiles ignore globs; paths are slash-separated and relative to the project root
func NewMatcher(ignores []string) (Matcher, error) {
	m := &matcher{
		ignores: make([]glob.Glob, 0, len(ignores)),
	}

	for _, p := range expandPatterns(ignores) {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, err
		}

		m.ignores = append(m.ignores, g)
	}

	return m, nil
}

// expandPatterns expands patterns starting with **/ to also match at root level
func expandPatterns(patterns []string) []string {
	expanded := make([]string, 0, len(patterns)*2)

	for _, p := range patterns {
		expanded = append(expanded, p)

		if rootVariant, ok := strings.CutPrefix(p, "**/"); ok {
			expanded = append(expanded, rootVariant)
		}
	}

	return expanded
}

func (m *matcher) Ignored(path string) bool {
	path = normalizePath(path)

	for _, ignore := range m.ignores {
		if ignore.Match(path) {
			return true
		}
	}

	return false
}

// IgnoredDir reports whether everything below dirPath is ignored
func (m *matcher) IgnoredDir(dirPath string) bool {
	return m.Ignored(dirPath + "/_probe")
}

func normalizePath(path string) string {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")

	return path
}
