package devproxy

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/3-lines-studio/gjallar/internal/config"
	"github.com/3-lines-studio/gjallar/internal/config/logger"
	"github.com/3-lines-studio/gjallar/internal/core"
	"github.com/3-lines-studio/gjallar/internal/errors"
)

type route struct {
	rule   config.ProxyRule
	target *url.URL
	proxy  *httputil.ReverseProxy
}

// Proxy forwards requests under configured prefixes to backend targets,
// keeping the original path. Requests matching no prefix pass through.
type Proxy struct {
	routes   []route
	prefixes []string
	log      logger.Logger
}

func New(rules []config.ProxyRule, log logger.Logger) (*Proxy, error) {
	p := &Proxy{log: log.WithComponent("PROXY")}

	for _, rule := range rules {
		target, err := url.Parse(rule.Target)
		if err != nil || target.Host == "" {
			return nil, fmt.Errorf("%w: %s -> %q", errors.ErrInvalidProxyTarget, rule.Prefix, rule.Target)
		}

		p.routes = append(p.routes, route{
			rule:   rule,
			target: target,
			proxy:  p.newReverseProxy(rule, target),
		})
		p.prefixes = append(p.prefixes, rule.Prefix)
	}

	return p, nil
}

func (p *Proxy) newReverseProxy(rule config.ProxyRule, target *url.URL) *httputil.ReverseProxy {
	origin := target.Scheme + "://" + target.Host

	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()

			if rule.ChangeOrigin {
				pr.Out.Host = target.Host
				if pr.In.Header.Get("Origin") != "" {
					pr.Out.Header.Set("Origin", origin)
				}
				return
			}
			pr.Out.Host = pr.In.Host
		},
		ErrorHandler: func(w http.ResponseWriter, req *http.Request, err error) {
			p.log.Error().Err(err).
				Str("prefix", rule.Prefix).
				Str("target", rule.Target).
				Str("path", req.URL.Path).
				Msg("Proxy target unreachable")
			w.WriteHeader(http.StatusBadGateway)
		},
	}
}

// match returns the route whose prefix is the longest match for path.
func (p *Proxy) match(path string) (route, bool) {
	i := core.LongestPrefix(p.prefixes, path)
	if i < 0 {
		return route{}, false
	}
	return p.routes[i], true
}

// Middleware proxies matching requests and hands the rest to next.
func (p *Proxy) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r, ok := p.match(req.URL.Path)
		if !ok {
			next.ServeHTTP(w, req)
			return
		}

		p.log.Debug().Str("path", req.URL.Path).Str("target", r.rule.Target).Msg("Proxying request")
		r.proxy.ServeHTTP(w, req)
	})
}
