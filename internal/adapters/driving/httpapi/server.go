// Package httpapi exposes the corpus over HTTP: an answer endpoint
// speaking the {question, contexts} contract, a feed-fetch endpoint,
// and the full ask pipeline. The API endpoints accept POST only;
// rejecting other methods is the single transport-level check.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/custodia-labs/ansa-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ansa-cli/internal/core/ports/driving"
)

// DefaultAddr is where the server listens when no address is configured.
const DefaultAddr = "127.0.0.1:8745"

// shutdownTimeout bounds how long in-flight requests get on shutdown.
const shutdownTimeout = 5 * time.Second

// Config holds the server's address and its collaborators. Ask,
// Generator, and Fetcher are each optional; endpoints whose
// collaborator is missing respond 503.
type Config struct {
	Addr      string
	Ask       driving.AskService
	Generator driven.GenerationService
	Fetcher   driven.FeedFetcher
	Logger    *zap.Logger
}

// Server is the HTTP API server.
type Server struct {
	addr      string
	ask       driving.AskService
	generator driven.GenerationService
	fetcher   driven.FeedFetcher
	log       *zap.Logger
}

// NewServer creates a server from the config, applying defaults.
func NewServer(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Server{
		addr:      cfg.Addr,
		ask:       cfg.Ask,
		generator: cfg.Generator,
		fetcher:   cfg.Fetcher,
		log:       cfg.Logger,
	}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Handler builds the route table wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/api/answer", s.handleAnswer)
	mux.HandleFunc("/api/feed", s.handleFeed)
	mux.HandleFunc("/api/ask", s.handleAsk)
	return s.logRequests(mux)
}

// Run serves until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errC := make(chan error, 1)
	go func() {
		s.log.Info("http api listening", zap.String("addr", s.addr))
		err := srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errC <- err
	}()

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down http api")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errC
}

// statusRecorder captures the response status for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// logRequests logs one line per completed request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
