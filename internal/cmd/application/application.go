// Package application provides the application interface for cyberui commands.
//
// Commands and the HTTP server accept this interface rather than the
// concrete App type so they can be exercised with a Mock in tests.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            cat, err := app.Catalog()
//	            if err != nil {
//	                return err
//	            }
//	            // ... use cat
//	            return nil
//	        },
//	    }
//	}
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/cyberui/pkg/catalogs"
)

// Application provides what commands need from the running app.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Catalog returns the component catalog. The catalog is immutable, so
	// the same value may be shared by every caller.
	Catalog() (catalogs.Reader, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml, wide).
	OutputFormat() string

	// NoColor reports whether styled terminal output is disabled.
	NoColor() bool

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
