package http

import (
	iofs "io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/3-lines-studio/gjallar/internal/core"
)

// MemoryAssets is the in-memory build the dev server serves from.
type MemoryAssets interface {
	Asset(path string) (core.Artifact, bool)
}

type AssetHandler struct {
	fsys      iofs.FS
	memory    MemoryAssets
	immutable bool
}

// NewAssetHandler serves built files from a directory tree. Hashed build
// output never changes, so responses may be cached forever.
func NewAssetHandler(fsys iofs.FS, immutable bool) http.Handler {
	return &AssetHandler{
		fsys:      fsys,
		immutable: immutable,
	}
}

// NewMemoryAssetHandler serves the dev build's current snapshot.
func NewMemoryAssetHandler(memory MemoryAssets) http.Handler {
	return &AssetHandler{
		memory: memory,
	}
}

func (h *AssetHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	name := cleanPath(req.URL.Path)
	if name == "" {
		http.NotFound(w, req)
		return
	}

	if h.memory != nil {
		h.serveFromMemory(w, req, name)
		return
	}
	h.serveFromFS(w, req, name)
}

func (h *AssetHandler) serveFromMemory(w http.ResponseWriter, req *http.Request, name string) {
	artifact, ok := h.memory.Asset(name)
	if !ok {
		http.NotFound(w, req)
		return
	}

	w.Header().Set("Content-Type", core.ContentType(name))
	w.Header().Set("Cache-Control", "no-store")
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(artifact.Contents)
}

func (h *AssetHandler) serveFromFS(w http.ResponseWriter, req *http.Request, name string) {
	info, err := iofs.Stat(h.fsys, name)
	if err != nil || info.IsDir() {
		http.NotFound(w, req)
		return
	}

	data, err := iofs.ReadFile(h.fsys, name)
	if err != nil {
		http.NotFound(w, req)
		return
	}

	w.Header().Set("Content-Type", core.ContentType(name))
	if h.immutable {
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	}
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(data)
}

type PublicHandler struct {
	fsys iofs.FS
	next http.Handler
}

// NewPublicHandler serves files from fsys when they exist and hands every
// other request to next.
func NewPublicHandler(fsys iofs.FS, next http.Handler) http.Handler {
	return &PublicHandler{
		fsys: fsys,
		next: next,
	}
}

func (h *PublicHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	name := cleanPath(req.URL.Path)
	if name == "" || h.fsys == nil {
		h.next.ServeHTTP(w, req)
		return
	}

	info, err := iofs.Stat(h.fsys, name)
	if err != nil || info.IsDir() {
		h.next.ServeHTTP(w, req)
		return
	}

	data, err := iofs.ReadFile(h.fsys, name)
	if err != nil {
		h.next.ServeHTTP(w, req)
		return
	}

	w.Header().Set("Content-Type", core.ContentType(name))
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(data)
}

// cleanPath turns a request path into an io/fs name, rejecting escapes.
func cleanPath(p string) string {
	name := strings.TrimPrefix(path.Clean("/"+p), "/")
	if name == "" || name == "." || !iofs.ValidPath(name) {
		return ""
	}
	return name
}
