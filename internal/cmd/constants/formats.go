// Package constants provides shared constants for CLI commands.
package constants

// Output format constants used throughout the CLI.
const (
	// FormatTable is the default table output format.
	FormatTable = "table"

	// FormatWide is an extended table format with more columns.
	FormatWide = "wide"

	// FormatJSON outputs data as JSON.
	FormatJSON = "json"

	// FormatYAML outputs data as YAML.
	FormatYAML = "yaml"
)

// Code snippet selectors for the show command.
const (
	// CodeExample is the short example snippet.
	CodeExample = "example"

	// CodeUsage is the extended usage snippet.
	CodeUsage = "usage"

	// CodeFull is the complete component source.
	CodeFull = "full"
)
