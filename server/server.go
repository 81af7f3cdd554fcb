// Package server exposes the return-computation engine over a small JSON
// API, the equivalent of the desktop and web front ends: it only collects
// a code/date-range list and returns the engine's output rows.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/etnz/totalreturn"
	"github.com/etnz/totalreturn/eastmoney"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// Config is read from TRQ_* environment variables.
type Config struct {
	// Addr is the listen address.
	Addr string `default:":8080"`
	// Concurrency bounds the number of symbols computed at a time per batch.
	Concurrency int `default:"4"`
}

// LoadConfig reads the server configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("trq", &cfg)
	return cfg, err
}

// Searcher resolves free-form name/code terms, see eastmoney.Client.Search.
type Searcher interface {
	Search(ctx context.Context, term string) ([]eastmoney.SearchResult, error)
}

// Server wires the pipeline and the symbol lookup behind an HTTP router.
type Server struct {
	pipeline    *totalreturn.Pipeline
	search      Searcher
	concurrency int
	log         zerolog.Logger
}

// New returns a Server computing through md and searching through s.
func New(md totalreturn.MarketData, s Searcher, cfg Config, log zerolog.Logger) *Server {
	return &Server{
		pipeline:    totalreturn.NewPipeline(md),
		search:      s,
		concurrency: cfg.Concurrency,
		log:         log,
	}
}

// Router builds the chi router for the server.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Get("/healthz", s.handleHealth)
	r.Post("/api/compute", s.handleCompute)
	r.Get("/api/search", s.handleSearch)
	return r
}

// ListenAndServe runs the server until the listener fails.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info().Str("addr", addr).Msg("listening")
	return http.ListenAndServe(addr, s.Router())
}

// requestLogger logs one structured line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
