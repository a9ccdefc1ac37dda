package core

import (
	"encoding/json"
	"sort"
)

type ManifestChunk struct {
	File    string   `json:"file"`
	Name    string   `json:"name"`
	Src     string   `json:"src"`
	IsEntry bool     `json:"isEntry"`
	CSS     []string `json:"css,omitempty"`
}

// Manifest maps each logical entry name to its built chunk.
type Manifest map[string]ManifestChunk

func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = Manifest{}
	}
	return m, nil
}

func (m Manifest) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (m Manifest) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func GetAssets(man Manifest, entryName string) (script string, css []string) {
	if chunk, ok := man[entryName]; ok && chunk.File != "" {
		return chunk.File, chunk.CSS
	}
	return FallbackScriptPath(entryName), nil
}
