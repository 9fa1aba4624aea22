package server

import (
	"net/http"
	"strings"

	"github.com/agentstation/cyberui/internal/server/handlers"
	"github.com/agentstation/cyberui/internal/server/middleware"
	"github.com/agentstation/cyberui/internal/server/response"
)

// setupRouter creates the HTTP handler with routes and middleware.
func (s *Server) setupRouter() http.Handler {
	mux := http.NewServeMux()

	h := handlers.New(s.app, s.cache, s.logger)
	s.registerRoutes(mux, h)

	return s.applyMiddleware(mux)
}

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes(mux *http.ServeMux, h *handlers.Handlers) {
	prefix := s.config.PathPrefix

	// Favicon handler (return 204 No Content to avoid 404 logs)
	mux.HandleFunc("/favicon.ico", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("/health", method(http.MethodGet, h.HandleHealth))
	if prefix != "" {
		mux.HandleFunc(prefix+"/health", method(http.MethodGet, h.HandleHealth))
	}
	mux.HandleFunc(prefix+"/ready", method(http.MethodGet, h.HandleReady))

	mux.HandleFunc(prefix+"/components", method(http.MethodGet, h.HandleListComponents))
	mux.HandleFunc(prefix+"/components/", func(w http.ResponseWriter, r *http.Request) {
		parts := splitPath(strings.TrimPrefix(r.URL.Path, prefix+"/components/"))
		if len(parts) != 1 {
			response.NotFound(w, "Not found", "Expected "+prefix+"/components/{id}")
			return
		}
		if r.Method != http.MethodGet {
			response.MethodNotAllowed(w, r.Method)
			return
		}
		h.HandleGetComponent(w, r, parts[0])
	})

	mux.HandleFunc(prefix+"/categories", method(http.MethodGet, h.HandleListCategories))
	mux.HandleFunc(prefix+"/playground/code", method(http.MethodPost, h.HandlePlaygroundCode))
	mux.HandleFunc(prefix+"/preview/button", method(http.MethodPost, h.HandlePreviewButton))
}

// applyMiddleware wraps handler with the middleware chain. Recovery is
// outermost so panics in any other middleware are caught.
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	cfg := s.config
	chain := []func(http.Handler) http.Handler{
		middleware.Recovery(s.logger),
		middleware.Logger(s.logger),
	}

	if cfg.CORSEnabled {
		corsConfig := middleware.DefaultCORSConfig()
		if len(cfg.CORSOrigins) > 0 {
			corsConfig.AllowedOrigins = cfg.CORSOrigins
			corsConfig.AllowAll = false
		} else {
			corsConfig.AllowAll = true
		}
		chain = append(chain, middleware.CORS(corsConfig))
	}

	if s.rateLimiter != nil {
		chain = append(chain, middleware.RateLimit(s.rateLimiter))
	}

	return middleware.Chain(chain...)(handler)
}

// method restricts a handler to a single HTTP method.
func method(m string, fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != m {
			w.Header().Set("Allow", m)
			response.MethodNotAllowed(w, r.Method)
			return
		}
		fn(w, r)
	}
}

// splitPath splits a URL path into parts, removing empty strings.
func splitPath(path string) []string {
	parts := []string{}
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
