package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/meur/blueprintlabs/internal/catalog"
	"github.com/meur/blueprintlabs/internal/preview"
	"github.com/meur/blueprintlabs/internal/storage"
	"go.uber.org/zap"
)

// Dependencies are the services the API reads from
type Dependencies struct {
	Session        *catalog.Session
	Resolver       *preview.Resolver
	Prober         preview.Prober
	Store          *storage.Store // optional
	Logger         *zap.Logger
	AllowedOrigins []string
}

// Server holds the HTTP server dependencies
type Server struct {
	session  *catalog.Session
	resolver *preview.Resolver
	prober   preview.Prober
	store    *storage.Store
	logger   *zap.Logger
	origins  []string
	router   chi.Router
}

// New creates a new API server
func New(deps Dependencies) *Server {
	s := &Server{
		session:  deps.Session,
		resolver: deps.Resolver,
		prober:   deps.Prober,
		store:    deps.Store,
		logger:   deps.Logger,
		origins:  deps.AllowedOrigins,
		router:   chi.NewRouter(),
	}
	if s.session == nil {
		s.session = catalog.NewSession(nil, nil)
	}
	if s.resolver == nil {
		s.resolver = preview.NewResolver()
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if len(s.origins) == 0 {
		s.origins = []string{"http://localhost:*"}
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

func (s *Server) setupRoutes() {
	s.router.Route("/api", func(r chi.Router) {
		// Catalog
		r.Get("/blueprints", s.handleGetBlueprints)
		r.Get("/filters", s.handleGetFilters)

		// Changelog
		r.Get("/changelog", s.handleGetChangelog)
		r.Get("/version", s.handleGetVersion)

		// Previews
		r.Get("/preview", s.handleGetPreview)

		// Imports
		r.Get("/snapshots", s.handleGetSnapshots)
	})

	// Health check
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

// --- Response helpers ---

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
