package assets

import (
	"fmt"
	iofs "io/fs"

	"github.com/3-lines-studio/gjallar/internal/core"
	"github.com/3-lines-studio/gjallar/internal/errors"
)

// LoadManifest reads and decodes a manifest from fsys.
func LoadManifest(fsys iofs.FS, path string) (core.Manifest, error) {
	data, err := iofs.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", errors.ErrManifestNotFound, path)
		}
		return nil, err
	}

	man, err := core.ParseManifest(data)
	if err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return man, nil
}

// ManifestResolver maps entry names to asset URLs from a build's
// manifest.json, re-read on every lookup so a fresh build is picked up.
// A missing manifest or key falls back to assets/<entry>.js.
type ManifestResolver struct {
	fsys iofs.FS
	path string
	base string
}

func NewManifestResolver(fsys iofs.FS, manifestPath, base string) *ManifestResolver {
	return &ManifestResolver{
		fsys: fsys,
		path: manifestPath,
		base: base,
	}
}

func (r *ManifestResolver) Assets(entry string) (core.PageAssets, error) {
	man, err := LoadManifest(r.fsys, r.path)
	if err != nil && !errors.Is(err, errors.ErrManifestNotFound) {
		return core.PageAssets{}, err
	}

	script, css := core.GetAssets(man, entry)

	assets := core.PageAssets{Script: core.AssetURL(r.base, script)}
	for _, c := range css {
		assets.CSS = append(assets.CSS, core.AssetURL(r.base, c))
	}
	return assets, nil
}
