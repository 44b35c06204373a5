package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/plantadash/plantsearch/internal/logger"
)

// Server is the companion HTTP server.
type Server struct {
	mu      sync.RWMutex
	ports   *Ports
	opts    Options
	handler http.Handler
}

// NewServer creates a server for ports.
func NewServer(ports *Ports, opts Options) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}
	opts.applyDefaults()

	s := &Server{
		ports: ports,
		opts:  opts,
	}
	s.handler = s.buildRouter()
	return s, nil
}

// SetPorts swaps the services used by later requests, e.g. after the
// dataset file changed and a fresh session was created.
func (s *Server) SetPorts(ports *Ports) error {
	if err := ports.Validate(); err != nil {
		return fmt.Errorf("validating ports: %w", err)
	}

	s.mu.Lock()
	s.ports = ports
	s.mu.Unlock()
	return nil
}

// currentPorts returns the ports for one request.
func (s *Server) currentPorts() *Ports {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ports
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves on addr until ctx is cancelled. Options.OnReady is called
// once the listener is bound.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("plantsearch server started on %s", ln.Addr())
		errCh <- srv.Serve(ln)
	}()
	if s.opts.OnReady != nil {
		s.opts.OnReady(ln.Addr())
	}

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("encode JSON response: %v", err)
	}
}
