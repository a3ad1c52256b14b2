// Package api provides the HTTP API server and handlers for the InkMatch gallery.
package api

import (
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/inkmatch/inkmatch-server/internal/auth"
	"github.com/inkmatch/inkmatch-server/internal/http/response"
	"github.com/inkmatch/inkmatch-server/internal/ratelimit"
	"github.com/inkmatch/inkmatch-server/internal/search"
	"github.com/inkmatch/inkmatch-server/internal/store"
)

// apiVersion is the advertised API version in the OpenAPI document.
const apiVersion = "1.0.0"

// Server holds dependencies for HTTP handlers.
type Server struct {
	store       *store.Store
	services    *Services
	search      *search.Index
	tokens      *auth.TokenService
	likeLimiter *ratelimit.KeyedRateLimiter
	router      *chi.Mux
	api         huma.API
	logger      *slog.Logger
	name        string

	// recommendLimit is the top-artists count used when the client does
	// not pass one; zero falls through to the service default.
	recommendLimit int
}

// Options configures the API server.
type Options struct {
	Store       *store.Store
	Services    *Services
	Search      *search.Index
	Tokens      *auth.TokenService
	LikeLimiter *ratelimit.KeyedRateLimiter
	Logger      *slog.Logger
	Name        string

	RecommendLimit int
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(opts Options) *Server {
	s := &Server{
		store:       opts.Store,
		services:    opts.Services,
		search:      opts.Search,
		tokens:      opts.Tokens,
		likeLimiter: opts.LikeLimiter,
		router:      chi.NewRouter(),
		logger:      opts.Logger,
		name:        opts.Name,

		recommendLimit: opts.RecommendLimit,
	}

	s.setupMiddleware()

	humaConfig := huma.DefaultConfig(s.name, apiVersion)
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "PASETO",
		},
	}
	humaConfig.Transformers = append(humaConfig.Transformers, EnvelopeTransformer)

	s.api = humachi.New(s.router, humaConfig)
	RegisterErrorHandler()

	s.registerHealthRoutes()
	s.registerArtistRoutes()
	s.registerTattooRoutes()
	s.registerLikeRoutes()
	s.registerRecommendationRoutes()
	s.registerSearchRoutes()

	// Root stays outside huma: a plain service banner, no OpenAPI entry.
	s.router.Get("/", s.handleIndex)

	return s
}

// handleIndex identifies the service for anyone poking the root URL.
func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"name":    s.name,
		"version": apiVersion,
		"docs":    "/docs",
	}, s.logger)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures the middleware stack. Viewer identity runs
// before the handlers so every request, authenticated or not, carries a
// viewer ID for the like ledger.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	s.router.Use(authMiddleware(s.tokens))
	s.router.Use(viewerMiddleware())
}
