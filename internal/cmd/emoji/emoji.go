// Package emoji provides symbol constants for CLI output.
package emoji

// Symbol constants for CLI output.
const (
	// Success represents successful completion of an operation.
	// Used for: copied code, written files, server stopped.
	Success = "✓"

	// Error represents failures.
	Error = "✗"

	// Warning represents non-critical issues such as an unknown playground id.
	Warning = "!"

	// Info represents informational messages.
	Info = "i"

	// Selected marks a component included in the playground selection.
	Selected = "●"

	// Unselected marks a component not in the playground selection.
	Unselected = "○"

	// Cursor marks the focused row in the interactive playground.
	Cursor = ">"
)
