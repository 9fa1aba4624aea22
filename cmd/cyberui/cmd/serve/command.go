// Package serve provides the serve command, which exposes the catalog over
// a JSON HTTP API.
package serve

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/agentstation/cyberui/internal/cmd/application"
	"github.com/agentstation/cyberui/internal/cmd/emoji"
	"github.com/agentstation/cyberui/internal/server"
)

// AppContext is what serve needs from the app: the shared application
// plus server defaults from the config file and environment.
type AppContext interface {
	application.Application
	ServerConfig() server.Config
}

// NewCommand creates the serve command using app context.
func NewCommand(app AppContext) *cobra.Command {
	defaults := app.ServerConfig()

	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"server"},
		GroupID: "core",
		Short:   "Start the catalog REST API server",
		Long: `Start a REST API server for the component catalog.

Endpoints (under --prefix, default /api/v1):
  GET  /health, /ready
  GET  /components?category=&search=
  GET  /components/{id}
  GET  /categories
  POST /playground/code   {"selected":[{"id":"button","name":"Button"}]}
  POST /preview/button    {"variant":"ghost","props":{"size":"lg"}}

Features:
  - In-memory response caching with configurable TTL
  - Rate limiting (requests per minute per IP)
  - CORS support for web applications
  - Request logging and panic recovery
  - Graceful shutdown with connection draining

Flags default to the server.* keys of the config file and environment
(SERVER_PORT, SERVER_HOST, ...).`,
		Example: `  # Start on default port 8080
  cyberui serve

  # Enable CORS for specific origins
  cyberui serve --cors-origins "https://example.com,https://app.example.com"

  # Disable rate limiting, mount at the root
  cyberui serve --rate-limit 0 --prefix /`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := parseConfig(cmd, app.ServerConfig())
			if err != nil {
				return err
			}
			return runServer(cmd, app, cfg)
		},
	}

	cmd.Flags().Int("port", defaults.Port, "Server port")
	cmd.Flags().String("host", defaults.Host, "Bind address")
	cmd.Flags().String("prefix", defaults.PathPrefix, "API path prefix")

	cmd.Flags().Bool("cors", defaults.CORSEnabled, "Enable CORS for all origins")
	cmd.Flags().StringSlice("cors-origins", defaults.CORSOrigins, "Allowed CORS origins (comma-separated, implies --cors)")

	cmd.Flags().Int("rate-limit", defaults.RateLimit, "Requests per minute per IP (0 to disable)")
	cmd.Flags().Duration("cache-ttl", defaults.CacheTTL, "Response cache TTL")

	cmd.Flags().Duration("read-timeout", defaults.ReadTimeout, "HTTP read timeout")
	cmd.Flags().Duration("write-timeout", defaults.WriteTimeout, "HTTP write timeout")
	cmd.Flags().Duration("idle-timeout", defaults.IdleTimeout, "HTTP idle timeout")
	cmd.Flags().Duration("shutdown-timeout", defaults.ShutdownTimeout, "Graceful shutdown timeout")

	return cmd
}

// runServer starts the API server and blocks until the command context is
// cancelled.
func runServer(cmd *cobra.Command, app AppContext, cfg server.Config) error {
	logger := app.Logger()

	logger.Info().
		Int("port", cfg.Port).
		Str("host", cfg.Host).
		Str("prefix", cfg.PathPrefix).
		Bool("cors", cfg.CORSEnabled).
		Int("rate_limit", cfg.RateLimit).
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("Starting API server")

	srv, err := server.New(app, cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	out := cmd.ErrOrStderr()
	fmt.Fprintf(out, "API server listening on http://%s%s\n", srv.Addr(), srv.Config().PathPrefix)
	fmt.Fprintln(out, "   Press Ctrl+C to stop")

	if err := srv.ListenAndServe(cmd.Context()); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s API server stopped gracefully\n", emoji.Success)
	return nil
}

// parseConfig applies explicitly set flags over base, which carries the
// config file and environment values. HTTP_HOST and HTTP_PORT override
// both, matching common container conventions.
func parseConfig(cmd *cobra.Command, base server.Config) (server.Config, error) {
	cfg := base
	fs := cmd.Flags()
	if fs.Changed("port") {
		cfg.Port = mustGetInt(cmd, "port")
	}
	if fs.Changed("host") {
		cfg.Host = mustGetString(cmd, "host")
	}
	if fs.Changed("prefix") {
		cfg.PathPrefix = mustGetString(cmd, "prefix")
	}
	if fs.Changed("cors") {
		cfg.CORSEnabled = mustGetBool(cmd, "cors")
	}
	if fs.Changed("cors-origins") {
		cfg.CORSOrigins = mustGetStringSlice(cmd, "cors-origins")
	}
	if fs.Changed("rate-limit") {
		cfg.RateLimit = mustGetInt(cmd, "rate-limit")
	}
	if fs.Changed("cache-ttl") {
		cfg.CacheTTL = mustGetDuration(cmd, "cache-ttl")
	}
	if fs.Changed("read-timeout") {
		cfg.ReadTimeout = mustGetDuration(cmd, "read-timeout")
	}
	if fs.Changed("write-timeout") {
		cfg.WriteTimeout = mustGetDuration(cmd, "write-timeout")
	}
	if fs.Changed("idle-timeout") {
		cfg.IdleTimeout = mustGetDuration(cmd, "idle-timeout")
	}
	if fs.Changed("shutdown-timeout") {
		cfg.ShutdownTimeout = mustGetDuration(cmd, "shutdown-timeout")
	}

	if len(cfg.CORSOrigins) > 0 {
		cfg.CORSEnabled = true
	}

	if envPort := os.Getenv("HTTP_PORT"); envPort != "" {
		p, err := parsePort(envPort)
		if err != nil {
			return cfg, err
		}
		cfg.Port = p
	}
	if envHost := os.Getenv("HTTP_HOST"); envHost != "" {
		cfg.Host = envHost
	}

	if cfg.Port < 0 || cfg.Port > 65535 {
		return cfg, fmt.Errorf("port out of range: %d", cfg.Port)
	}
	if cfg.RateLimit < 0 {
		return cfg, fmt.Errorf("rate limit must be >= 0, got %d", cfg.RateLimit)
	}
	return cfg, nil
}

// parsePort safely parses a port string to integer.
func parsePort(portStr string) (int, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, fmt.Errorf("invalid port number: %s", portStr)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("port out of range: %d", port)
	}
	return port, nil
}

// mustGetInt retrieves an integer flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetInt(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

func mustGetStringSlice(cmd *cobra.Command, name string) []string {
	val, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

func mustGetDuration(cmd *cobra.Command, name string) time.Duration {
	val, err := cmd.Flags().GetDuration(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
