package core

import (
	"mime"
	"path"
	"strings"
)

// bundleTypes overrides the system mime table for bundler output.
var bundleTypes = map[string]string{
	".js":   "text/javascript; charset=utf-8",
	".mjs":  "text/javascript; charset=utf-8",
	".css":  "text/css; charset=utf-8",
	".map":  "application/json",
	".html": "text/html; charset=utf-8",
}

// ContentType returns the Content-Type for an output or public file name.
func ContentType(name string) string {
	ext := strings.ToLower(path.Ext(name))
	if ct, ok := bundleTypes[ext]; ok {
		return ct
	}

	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}

	return "application/octet-stream"
}
