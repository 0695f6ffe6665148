package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// HealthServer serves the liveness endpoint used by external uptime checks:
// GET / returns 200 with static text.
type HealthServer struct {
	logger *slog.Logger
	server *http.Server
}

// NewHealthServer creates the liveness server on the given address.
func NewHealthServer(logger *slog.Logger, addr string) *HealthServer {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Mr.Semicolon is alive"))
	})

	return &HealthServer{
		logger: logger.With("component", "health_server"),
		server: &http.Server{Addr: addr, Handler: mux},
	}
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (h *HealthServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- h.server.ListenAndServe()
	}()
	h.logger.Info("Liveness endpoint listening", "addr", h.server.Addr)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("liveness server: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.server.Shutdown(shutdownCtx); err != nil {
			h.logger.Error("Error shutting down liveness server", "error", err)
		}
		return nil
	}
}
