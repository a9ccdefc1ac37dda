package core

import "testing"

func TestNaming(t *testing.T) {
	if got := ProductionNaming("landing"); got != "assets/landing.[hash]" {
		t.Errorf("ProductionNaming = %q", got)
	}
	if got := DevNaming("protected"); got != "assets/protected" {
		t.Errorf("DevNaming = %q", got)
	}
	if got := FallbackScriptPath("landing"); got != "assets/landing.js" {
		t.Errorf("FallbackScriptPath = %q", got)
	}
}

func TestAssetURL(t *testing.T) {
	tests := []struct {
		base, file, want string
	}{
		{"/", "assets/landing.js", "/assets/landing.js"},
		{"/build/", "assets/landing.js", "/build/assets/landing.js"},
		{"/build", "/assets/landing.js", "/build/assets/landing.js"},
		{"", "assets/landing.js", "/assets/landing.js"},
	}

	for _, tt := range tests {
		if got := AssetURL(tt.base, tt.file); got != tt.want {
			t.Errorf("AssetURL(%q, %q) = %q, want %q", tt.base, tt.file, got, tt.want)
		}
	}
}

func TestKindForPath(t *testing.T) {
	tests := map[string]ArtifactKind{
		"assets/landing.ABC.js":     KindScript,
		"assets/landing.ABC.css":    KindStyle,
		"assets/landing.ABC.js.map": KindSourceMap,
		"assets/logo.ABC.svg":       KindOther,
	}

	for p, want := range tests {
		if got := KindForPath(p); got != want {
			t.Errorf("KindForPath(%q) = %v, want %v", p, got, want)
		}
	}
}

func TestEntryChunk(t *testing.T) {
	script, css := EntryChunk([]Artifact{
		{Path: "assets/landing.A.js.map", Kind: KindSourceMap},
		{Path: "assets/landing.A.css", Kind: KindStyle},
		{Path: "assets/landing.A.js", Kind: KindScript},
	})

	if script != "assets/landing.A.js" {
		t.Errorf("script = %q", script)
	}
	if len(css) != 1 || css[0] != "assets/landing.A.css" {
		t.Errorf("css = %v", css)
	}
}
