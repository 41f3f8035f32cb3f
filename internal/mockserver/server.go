// Package mockserver emulates the Discourses API wire contract for offline
// development and integration tests. Responses come from fixed per-era
// fixtures; no sentiment analysis happens here.
//
// Scenario markers let clients exercise error paths: a text containing
// "[ratelimit]" yields a 429 with an X-RateLimit-Reset header, and a batch
// item whose text contains "[fail]" gets a per-item error marker.
package mockserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fulmenhq/gofulmen/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Options configures the mock server.
type Options struct {
	Host string
	Port int

	// APIKey is the bearer token to require. Empty accepts any non-empty
	// token.
	APIKey string

	// Logger receives structured access logs. Nil disables logging.
	Logger *logging.Logger
}

// Server is the mock API server.
type Server struct {
	router *chi.Mux
	server *http.Server
	opts   Options
}

// New creates a mock server instance.
func New(opts Options) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(accessLog(opts.Logger))
	r.Use(middleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"message": "method not allowed"})
	})

	s := &Server{router: r, opts: opts}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Get("/version", s.handleVersion)

	s.router.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Post("/analyze/era", s.handleAnalyze)
		r.Post("/analyze/compare-eras", s.handleCompareEras)
		r.Post("/analyze/batch", s.handleBatch)
	})
}

// Start blocks serving HTTP until Shutdown or failure.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.opts.Host, s.opts.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	if s.opts.Logger != nil {
		s.opts.Logger.Info("Starting mock API server",
			zap.String("addr", addr),
			zap.Bool("auth_pinned", s.opts.APIKey != ""))
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.opts.Logger != nil {
		s.opts.Logger.Info("Shutting down mock API server")
	}
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
