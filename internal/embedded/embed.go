// Package embedded holds the component catalog compiled into the binary.
package embedded

import (
	"embed"
	"io/fs"
)

//go:embed catalog/*.yaml
var files embed.FS

// FS returns the catalog filesystem rooted at the catalog directory, so
// readers open "components.yaml" and "categories.yaml" directly.
func FS() fs.FS {
	sub, err := fs.Sub(files, "catalog")
	if err != nil {
		// catalog/ is fixed at compile time
		panic(err)
	}
	return sub
}
