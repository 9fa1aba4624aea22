// Package constants provides shared constants used throughout cyberui.
package constants

import "time"

// Catalog constants.
const (
	// AllCategory is the filter value that matches every component.
	AllCategory = "all"

	// EmptyPlaygroundCode is shown when no components are selected.
	EmptyPlaygroundCode = "// Select components to generate code"

	// ImportPathPrefix is the module path used in generated import lines.
	ImportPathPrefix = "@/components/ui/"
)

// Server defaults.
const (
	DefaultHost       = "localhost"
	DefaultPort       = 8080
	DefaultPathPrefix = "/api/v1"
	DefaultRateLimit  = 100 // requests per minute per IP
	DefaultCacheTTL   = 5 * time.Minute

	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultIdleTimeout     = 120 * time.Second
	DefaultShutdownTimeout = 5 * time.Second
)

// File permission constants.
const (
	// FilePermissions is the default permission for created files (rw-r--r--).
	FilePermissions = 0644
)
