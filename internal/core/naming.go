package core

import "strings"

const AssetsDir = "assets"

func ProductionNaming(entryName string) string {
	return AssetsDir + "/" + entryName + ".[hash]"
}

func DevNaming(entryName string) string {
	return AssetsDir + "/" + entryName
}

func FallbackScriptPath(entryName string) string {
	return DevNaming(entryName) + ".js"
}

func AssetURL(base, file string) string {
	if base == "" {
		base = "/"
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + strings.TrimPrefix(file, "/")
}
