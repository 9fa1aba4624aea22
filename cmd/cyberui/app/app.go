// Package app provides the application context and dependency management
// for the cyberui CLI: configuration, logging and the component catalog.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/cyberui/internal/cmd/application"
	"github.com/agentstation/cyberui/internal/server"
	"github.com/agentstation/cyberui/pkg/catalogs"
	"github.com/agentstation/cyberui/pkg/errors"
)

var _ application.Application = (*App)(nil)

// App represents the cyberui application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Catalog is built once on first use.
	catalogOnce sync.Once
	catalog     catalogs.Reader
	catalogErr  error
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// NoColor reports whether styled output is disabled.
func (a *App) NoColor() bool {
	return a.config.NoColor
}

// ServerConfig returns the HTTP server settings resolved from config
// file, environment and defaults.
func (a *App) ServerConfig() server.Config {
	return a.config.Server
}

// Catalog returns the embedded component catalog, building it on first use.
// Safe for concurrent use.
func (a *App) Catalog() (catalogs.Reader, error) {
	a.catalogOnce.Do(func() {
		if a.catalog != nil {
			return
		}
		cat, err := catalogs.NewEmbedded()
		if err != nil {
			a.catalogErr = errors.WrapResource("load", "catalog", "embedded", err)
			return
		}
		a.catalog = cat
		a.logger.Debug().Int("components", cat.Len()).Msg("Catalog loaded")
	})
	return a.catalog, a.catalogErr
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithCatalog sets the catalog instead of loading the embedded one.
func WithCatalog(cat catalogs.Reader) Option {
	return func(a *App) error {
		a.catalog = cat
		return nil
	}
}
