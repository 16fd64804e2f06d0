// Package api serves route queries over a loaded core.Graph as JSON over HTTP.
//
// Endpoints (all GET, under /api/v1):
//
//	/health       graph size
//	/stations     registered stations in registration order
//	/lines        line names in first-registration order
//	/connections  every directed connection
//	/route        ?from=&to=[&prefer_same_line=true]
//
// Route answers are cached in an LRU keyed by graph version, mode and the
// station pair, so any mutation of the graph retires stale entries.
package api

import (
	"io"
	"log"
	"net/http"
	"time"

	"github.com/bluele/gcache"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/katalvlaran/subway/core"
)

const (
	defaultCacheSize = 1024
	defaultCacheTTL  = time.Hour
)

// Option configures a Server.
type Option func(*Server)

// WithCacheSize sets the maximum number of cached route answers.
// Non-positive sizes keep the default.
func WithCacheSize(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.cacheSize = n
		}
	}
}

// WithCacheTTL sets how long a cached route answer stays valid.
// Non-positive durations keep the default.
func WithCacheTTL(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.cacheTTL = d
		}
	}
}

// WithAllowedOrigins sets the CORS allowed origins. Default is "*".
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		if len(origins) > 0 {
			s.origins = origins
		}
	}
}

// WithLogger sets the request logger. A nil logger discards output.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l == nil {
			l = log.New(io.Discard, "", 0)
		}
		s.logger = l
	}
}

// Server answers route queries against one graph.
type Server struct {
	graph     *core.Graph
	cache     gcache.Cache
	logger    *log.Logger
	origins   []string
	cacheSize int
	cacheTTL  time.Duration
}

// NewServer builds a Server over g. g must be fully loaded before the
// server starts taking traffic; later mutations are picked up through
// g.Version().
func NewServer(g *core.Graph, opts ...Option) *Server {
	s := &Server{
		graph:     g,
		logger:    log.Default(),
		origins:   []string{"*"},
		cacheSize: defaultCacheSize,
		cacheTTL:  defaultCacheTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.cache = gcache.New(s.cacheSize).
		LRU().
		Expiration(s.cacheTTL).
		Build()

	return s
}

// Router returns the mux router with every endpoint and middleware registered.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(recoveryMiddleware(s.logger))
	r.Use(loggingMiddleware(s.logger))

	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	v1.HandleFunc("/stations", s.handleStations).Methods(http.MethodGet)
	v1.HandleFunc("/lines", s.handleLines).Methods(http.MethodGet)
	v1.HandleFunc("/connections", s.handleConnections).Methods(http.MethodGet)
	v1.HandleFunc("/route", s.handleRoute).Methods(http.MethodGet)

	return r
}

// Handler returns the CORS-wrapped router, ready for http.Server.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Origin"},
		MaxAge:         86400,
	})

	return c.Handler(s.Router())
}

// PurgeCache drops every cached route answer.
func (s *Server) PurgeCache() {
	s.cache.Purge()
}
