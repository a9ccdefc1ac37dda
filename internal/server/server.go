package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/3-lines-studio/gjallar/internal/config/logger"
)

// Server is an HTTP listener with an explicit start/stop lifecycle.
type Server struct {
	srv    *http.Server
	ln     net.Listener
	cancel context.CancelFunc
	log    logger.Logger
}

func New(addr string, handler http.Handler, log logger.Logger) *Server {
	// Request contexts derive from base so Shutdown can end open event streams.
	base, cancel := context.WithCancel(context.Background())

	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			IdleTimeout:       120 * time.Second,
			BaseContext:       func(net.Listener) context.Context { return base },
		},
		cancel: cancel,
		log:    log.WithComponent("SERVER"),
	}
}

// Start binds the address and serves in the background. Binding errors
// are returned synchronously.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("Server stopped unexpectedly")
		}
	}()

	s.log.Info().Msgf("Listening on http://%s", s.Addr())
	return nil
}

// Addr returns the bound address, which differs from the configured one
// when port 0 was requested.
func (s *Server) Addr() string {
	if s.ln != nil {
		return s.ln.Addr().String()
	}
	return s.srv.Addr
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down server")
	s.cancel()
	return s.srv.Shutdown(ctx)
}
