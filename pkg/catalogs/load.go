package catalogs

import (
	"io/fs"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/cyberui/pkg/errors"
)

// Catalog file names inside the catalog filesystem.
const (
	ComponentsFile = "components.yaml"
	CategoriesFile = "categories.yaml"
)

// load reads both catalog documents from fsys.
// A missing categories file is allowed and yields an empty tree.
func load(fsys fs.FS) ([]Component, []Category, error) {
	data, err := fs.ReadFile(fsys, ComponentsFile)
	if err != nil {
		return nil, nil, errors.WrapIO("read", ComponentsFile, err)
	}

	var components []Component
	if err := yaml.Unmarshal(data, &components); err != nil {
		return nil, nil, errors.WrapParse("yaml", ComponentsFile, err)
	}

	data, err = fs.ReadFile(fsys, CategoriesFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return components, nil, nil
		}
		return nil, nil, errors.WrapIO("read", CategoriesFile, err)
	}

	var categories []Category
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, nil, errors.WrapParse("yaml", CategoriesFile, err)
	}

	return components, categories, nil
}
