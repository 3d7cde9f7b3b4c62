// Package admin exposes the management HTTP API: dashboard aggregation,
// submission review, opportunities and support tickets.
package admin

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/net/netutil"
)

// maxConns bounds concurrent admin connections; the API serves a handful of
// staff, not the student body.
const maxConns = 64

// Server is the admin HTTP API server.
type Server struct {
	handler *Handler
	secret  string
	listen  string
	httpSrv *http.Server
}

// NewServer creates the admin server.
func NewServer(listen, jwtSecret string, handler *Handler) *Server {
	return &Server{
		handler: handler,
		secret:  jwtSecret,
		listen:  listen,
	}
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(Auth(s.secret))
	s.handler.RegisterRoutes(r)

	ln, err := net.Listen("tcp", s.listen)
	if err != nil {
		return err
	}
	ln = netutil.LimitListener(ln, maxConns)

	s.httpSrv = &http.Server{
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpSrv.Serve(ln)
	}()

	slog.Info("Admin API listening", "addr", s.listen)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// JSON writes a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, map[string]string{"error": msg})
}
