package devproxy

import (
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/3-lines-studio/gjallar/internal/config"
	"github.com/3-lines-studio/gjallar/internal/config/logger"
	"github.com/3-lines-studio/gjallar/internal/errors"
)

type seenRequest struct {
	path   string
	query  string
	host   string
	origin string
	xff    string
}

func newBackend(t *testing.T, name string, seen chan<- seenRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen <- seenRequest{
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			host:   r.Host,
			origin: r.Header.Get("Origin"),
			xff:    r.Header.Get("X-Forwarded-For"),
		}
		_, _ = io.WriteString(w, name)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newMockLog(ctrl *gomock.Controller) *logger.MockLogger {
	log := logger.NewMockLogger(ctrl)
	log.EXPECT().WithComponent("PROXY").Return(log)
	log.EXPECT().Debug().Return(nil).AnyTimes()
	log.EXPECT().Error().Return(nil).AnyTimes()
	return log
}

func fallthroughHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "router")
	})
}

func Test_ProxyKeepsPathAndChangesOrigin(t *testing.T) {
	ctrl := gomock.NewController(t)
	seen := make(chan seenRequest, 1)
	backend := newBackend(t, "api", seen)

	p, err := New([]config.ProxyRule{{Prefix: "/api", Target: backend.URL, ChangeOrigin: true}}, newMockLog(ctrl))
	require.NoError(t, err)

	front := httptest.NewServer(p.Middleware(fallthroughHandler()))
	defer front.Close()

	req, err := http.NewRequest(http.MethodGet, front.URL+"/api/logoutcas?next=%2F", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", front.URL)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "api", string(body))

	got := <-seen
	backendURL, _ := url.Parse(backend.URL)
	assert.Equal(t, "/api/logoutcas", got.path)
	assert.Equal(t, "next=%2F", got.query)
	assert.Equal(t, backendURL.Host, got.host)
	assert.Equal(t, backend.URL, got.origin)
	assert.NotEmpty(t, got.xff)
}

func Test_ProxyKeepsHostWithoutChangeOrigin(t *testing.T) {
	ctrl := gomock.NewController(t)
	seen := make(chan seenRequest, 1)
	backend := newBackend(t, "api", seen)

	p, err := New([]config.ProxyRule{{Prefix: "/api", Target: backend.URL}}, newMockLog(ctrl))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "http://localhost:3000/api", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	p.Middleware(fallthroughHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	got := <-seen
	assert.Equal(t, "/api", got.path)
	assert.Equal(t, "localhost:3000", got.host)
	assert.Equal(t, "http://localhost:3000", got.origin)
}

func Test_ProxyFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	p, err := New([]config.ProxyRule{{Prefix: "/api", Target: "http://127.0.0.1:1"}}, newMockLog(ctrl))
	require.NoError(t, err)

	for _, path := range []string{"/", "/protected", "/apix", "/assets/api.js"} {
		rec := httptest.NewRecorder()
		p.Middleware(fallthroughHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, "router", rec.Body.String(), path)
	}
}

func Test_ProxyUnreachableTarget(t *testing.T) {
	ctrl := gomock.NewController(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	p, err := New([]config.ProxyRule{{Prefix: "/api", Target: "http://" + addr, ChangeOrigin: true}}, newMockLog(ctrl))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	p.Middleware(fallthroughHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func Test_ProxyLongestPrefixWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	seenAPI := make(chan seenRequest, 1)
	seenAuth := make(chan seenRequest, 1)
	api := newBackend(t, "api", seenAPI)
	auth := newBackend(t, "auth", seenAuth)

	p, err := New([]config.ProxyRule{
		{Prefix: "/api", Target: api.URL},
		{Prefix: "/api/auth", Target: auth.URL},
	}, newMockLog(ctrl))
	require.NoError(t, err)

	r, ok := p.match("/api/auth/login")
	require.True(t, ok)
	assert.Equal(t, "/api/auth", r.rule.Prefix)

	rec := httptest.NewRecorder()
	p.Middleware(fallthroughHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/auth/login", nil))
	assert.Equal(t, "auth", rec.Body.String())
	assert.Equal(t, "/api/auth/login", (<-seenAuth).path)

	rec = httptest.NewRecorder()
	p.Middleware(fallthroughHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users", nil))
	assert.Equal(t, "api", rec.Body.String())
	<-seenAPI
}

func Test_NewRejectsBadTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := logger.NewMockLogger(ctrl)
	log.EXPECT().WithComponent("PROXY").Return(log)

	_, err := New([]config.ProxyRule{{Prefix: "/api", Target: "localhost"}}, log)
	assert.True(t, errors.Is(err, errors.ErrInvalidProxyTarget))
}
