package page

import (
	"bytes"
	"html"
	"net/http"

	"github.com/3-lines-studio/gjallar/internal/config/logger"
	"github.com/3-lines-studio/gjallar/internal/core"
)

// AssetResolver maps an entry name to the asset URLs its document loads.
type AssetResolver interface {
	Assets(entry string) (core.PageAssets, error)
}

// requestIDHeader is set on incoming requests by the server middleware
const requestIDHeader = "X-Request-Id"

type Handler struct {
	page     Page
	resolver AssetResolver
	opts     DocumentOptions
	log      logger.Logger
}

func NewHandler(p Page, resolver AssetResolver, opts DocumentOptions, log logger.Logger) *Handler {
	return &Handler{
		page:     p,
		resolver: resolver,
		opts:     opts,
		log:      log,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	assets, err := h.resolver.Assets(h.page.Name)
	if err != nil {
		h.log.Error().Err(err).Str("page", h.page.Name).Msg("Failed to resolve page assets")
		h.serveError(w, req, err)
		return
	}

	var buf bytes.Buffer
	if err := RenderDocument(&buf, h.page, assets, h.opts); err != nil {
		h.log.Error().Err(err).Str("page", h.page.Name).Msg("Failed to render page")
		h.serveError(w, req, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if h.opts.Dev {
		w.Header().Set("Cache-Control", "no-store")
	}
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) serveError(w http.ResponseWriter, req *http.Request, err error) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusInternalServerError)

	var buf bytes.Buffer
	tmplErr := renderError(&buf, errorData{
		Page:       h.page.Name,
		Message:    err.Error(),
		RequestID:  req.Header.Get(requestIDHeader),
		Dev:        h.opts.Dev,
		ReloadPath: h.opts.ReloadPath,
	})
	if tmplErr != nil {
		_, _ = w.Write([]byte("<pre>" + html.EscapeString(err.Error()) + "</pre>"))
		return
	}
	_, _ = w.Write(buf.Bytes())
}
