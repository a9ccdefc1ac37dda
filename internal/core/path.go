package core

import (
	"strings"
)

func NormalizePath(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if path != "/" && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

// MatchPrefix reports whether path falls under prefix on a segment boundary:
// "/api" matches "/api" and "/api/x" but not "/apix".
func MatchPrefix(prefix, path string) bool {
	prefix = NormalizePath(prefix)
	if prefix == "/" {
		return true
	}
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, prefix+"/")
}

// LongestPrefix returns the index of the most specific matching prefix, or -1.
func LongestPrefix(prefixes []string, path string) int {
	best, bestLen := -1, -1
	for i, p := range prefixes {
		if !MatchPrefix(p, path) {
			continue
		}
		if l := len(NormalizePath(p)); l > bestLen {
			best, bestLen = i, l
		}
	}
	return best
}
