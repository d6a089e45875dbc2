package inspect

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// ReadHeaderTimeout is the timeout for reading request headers.
const ReadHeaderTimeout = 5 * time.Second

// Server runs the inspect HTTP listener.
type Server struct {
	name       string
	config     Config
	server     *http.Server
	listener   net.Listener
	onServeErr func()
}

// NewServer creates a Server named name serving handler.
// The config gets its defaults and is validated before use. onServeErr, if
// non-nil, is called when serving stops on a fatal error.
func NewServer(name string, handler http.Handler, cfg Config, onServeErr func()) (*Server, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if handler == nil {
		return nil, ErrNilHandler
	}

	cfg.SetDefaults()

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &Server{
		name:   name,
		config: cfg,
		server: &http.Server{ //nolint:exhaustruct // only relevant fields needed
			Addr:              cfg.Address,
			Handler:           handler,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		listener:   nil,
		onServeErr: onServeErr,
	}, nil
}

// Addr returns the bound address once started, the configured one before.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}

	return s.config.Address
}

// Start listens on TCP and serves in a background goroutine.
func (s *Server) Start(ctx context.Context) error {
	listenCfg := net.ListenConfig{} //nolint:exhaustruct // zero-value defaults are fine

	listener, err := listenCfg.Listen(ctx, "tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrListenFailed, s.server.Addr, err)
	}

	s.listener = listener

	slog.Info("inspect listener started", "name", s.name, "address", s.Addr())

	go func() {
		serveErr := s.server.Serve(listener)
		if serveErr == nil || errors.Is(serveErr, http.ErrServerClosed) {
			return
		}

		slog.Error("inspect listener failed", "name", s.name, "error", serveErr)

		if s.onServeErr != nil {
			s.onServeErr()
		}
	}()

	return nil
}

// Stop shuts the server down, waiting for in-flight requests until ctx ends.
func (s *Server) Stop(ctx context.Context) error {
	slog.Info("inspect listener stopping", "name", s.name)

	err := s.server.Shutdown(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrShutdownFailed, err)
	}

	return nil
}
