package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Start runs the HTTP server until an interrupt or terminate signal arrives
// or the listener fails, then shuts everything down gracefully.
func (s *Server) Start() error {
	ctx, stop := shutdownSignals()
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is done or the listener fails. A listener failure,
// such as the address already being in use, is returned.
func (s *Server) Run(ctx context.Context) error {
	addr := s.Cfg.GetServerAddr()
	errc := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "addr", addr)
		errc <- s.E.Start(addr)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		slog.Info("Shutting down server")
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			serveErr = fmt.Errorf("server stopped unexpectedly: %w", err)
			slog.Error("Server stopped unexpectedly", "addr", addr, "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		return errors.Join(serveErr, fmt.Errorf("graceful shutdown: %w", err))
	}
	slog.Info("Server stopped")
	return serveErr
}
