// Package server provides the HTTP server for the cyberui API.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/cyberui/internal/cmd/application"
	"github.com/agentstation/cyberui/internal/server/cache"
	"github.com/agentstation/cyberui/internal/server/middleware"
	"github.com/agentstation/cyberui/pkg/errors"
)

// Server holds the HTTP server state and dependencies.
type Server struct {
	app         application.Application
	cache       *cache.Cache
	rateLimiter *middleware.RateLimiter
	logger      *zerolog.Logger
	config      Config
	ctx         context.Context
	cancel      context.CancelFunc
	startTime   time.Time
}

// New creates a new server instance with the given configuration.
// The catalog is loaded eagerly so a broken catalog fails here rather than
// on the first request.
func New(app application.Application, cfg Config) (*Server, error) {
	logger := app.Logger()

	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = DefaultConfig().CacheTTL
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = DefaultConfig().ShutdownTimeout
	}
	cfg.PathPrefix = normalizePrefix(cfg.PathPrefix)

	if _, err := app.Catalog(); err != nil {
		return nil, errors.WrapResource("load", "catalog", "", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		app:       app,
		cache:     cache.New(cfg.CacheTTL, cfg.CacheTTL*2),
		logger:    logger,
		config:    cfg,
		ctx:       ctx,
		cancel:    cancel,
		startTime: time.Now(),
	}
	if cfg.RateLimit > 0 {
		s.rateLimiter = middleware.NewRateLimiter(cfg.RateLimit, logger)
	}

	logger.Debug().
		Str("prefix", cfg.PathPrefix).
		Dur("cache_ttl", cfg.CacheTTL).
		Int("rate_limit", cfg.RateLimit).
		Msg("Server instance created")
	return s, nil
}

// Start starts background services (rate limiter eviction).
func (s *Server) Start() {
	if s.rateLimiter != nil {
		go s.rateLimiter.Run(s.ctx)
	}
}

// Handler returns the configured http.Handler with middleware chain applied.
func (s *Server) Handler() http.Handler {
	return s.setupRouter()
}

// HTTPServer builds an *http.Server bound to the configured address.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         s.Addr(),
		Handler:      s.Handler(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}
}

// Addr returns the host:port listen address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
}

// ListenAndServe runs the HTTP server until ctx is cancelled, then shuts it
// down gracefully within the configured shutdown timeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	httpServer := s.HTTPServer()
	s.Start()

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info().
			Str("addr", httpServer.Addr).
			Str("service", "API").
			Msg("HTTP server listening")

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server failed: %w", err)
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		_ = s.Shutdown(context.Background())
		return err
	case <-ctx.Done():
		s.logger.Info().Msg("Shutdown signal received")

		// The parent context is already cancelled.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		if err := s.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn().Err(err).Msg("Background services shutdown had issues")
		}

		s.logger.Info().Msg("Server stopped gracefully")
		return nil
	}
}

// Shutdown stops background services.
func (s *Server) Shutdown(_ context.Context) error {
	s.cancel()
	return nil
}

// Cache returns the server's cache instance.
func (s *Server) Cache() *cache.Cache {
	return s.cache
}

// Config returns the effective configuration.
func (s *Server) Config() Config {
	return s.config
}

// StartTime returns the server start time for uptime calculations.
func (s *Server) StartTime() time.Time {
	return s.startTime
}

// normalizePrefix ensures a leading slash and no trailing slash.
// An empty prefix mounts the API at the root.
func normalizePrefix(prefix string) string {
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return prefix
}
