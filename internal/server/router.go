package server

import (
	iofs "io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	adhttp "github.com/3-lines-studio/gjallar/internal/adapters/http"
	"github.com/3-lines-studio/gjallar/internal/assets"
	"github.com/3-lines-studio/gjallar/internal/config"
	"github.com/3-lines-studio/gjallar/internal/config/logger"
	"github.com/3-lines-studio/gjallar/internal/core"
	"github.com/3-lines-studio/gjallar/internal/page"
)

// DevBuild is the in-memory build the dev router serves pages and assets from.
type DevBuild interface {
	Assets(entry string) (core.PageAssets, error)
	Asset(path string) (core.Artifact, bool)
}

// Middleware runs before routing; the dev proxy is the only one today.
type Middleware func(http.Handler) http.Handler

// NewDevRouter wires pages, in-memory assets, live reload and public files.
// Proxied prefixes are handled before any route is matched.
func NewDevRouter(cfg config.Config, build DevBuild, hub *ReloadHub, proxy Middleware, log logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Logger(log))
	r.Use(Recoverer(log))
	r.Use(middleware.GetHead)
	if proxy != nil {
		r.Use(proxy)
	}

	opts := page.DocumentOptions{Dev: true, ReloadPath: config.ReloadPath}
	for _, p := range page.All() {
		r.Get(p.Route, page.NewHandler(p, build, opts, log).ServeHTTP)
	}

	r.Get(config.ReloadPath, hub.ServeHTTP)
	mountAssets(r, cfg.Build.Base, adhttp.NewMemoryAssetHandler(build))

	r.NotFound(adhttp.NewPublicHandler(dirFS(cfg.Build.PublicDir), http.NotFoundHandler()).ServeHTTP)

	return r
}

// NewPreviewRouter serves a finished build from outDir. Pages resolve
// their bundles through manifest.json the same way the backend does.
func NewPreviewRouter(cfg config.Config, log logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(Logger(log))
	r.Use(Recoverer(log))
	r.Use(middleware.GetHead)

	out := os.DirFS(cfg.Build.OutDir)
	resolver := assets.NewManifestResolver(out, config.ManifestFile, cfg.Build.Base)

	for _, p := range page.All() {
		r.Get(p.Route, page.NewHandler(p, resolver, page.DocumentOptions{}, log).ServeHTTP)
	}

	mountAssets(r, cfg.Build.Base, adhttp.NewAssetHandler(out, true))

	r.NotFound(adhttp.NewPublicHandler(out, http.NotFoundHandler()).ServeHTTP)

	return r
}

// mountAssets routes <base>assets/* to h with the base stripped, so h sees
// paths like /assets/landing.js.
func mountAssets(r chi.Router, base string, h http.Handler) {
	prefix := strings.TrimSuffix(base, "/")
	r.Handle(prefix+"/"+core.AssetsDir+"/*", http.StripPrefix(prefix, h))
}

func dirFS(dir string) iofs.FS {
	if dir == "" {
		return nil
	}
	return os.DirFS(dir)
}
