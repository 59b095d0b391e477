// Package templates loads the PR description template catalog and resolves a
// change category to one template. The catalog directory is a configuration
// value fixed at process start; its contents are re-read on every call so the
// catalog never goes stale and no state survives a request.
package templates

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrCatalogMissing indicates the template directory is absent, unreadable,
// or holds no files.
var ErrCatalogMissing = errors.New("template directory missing or empty")

// Descriptor is one template file: base name plus full text content.
type Descriptor struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type Catalog struct {
	dir string
}

func NewCatalog(dir string) Catalog {
	return Catalog{dir: dir}
}

// List reads every regular file in the catalog directory, in lexical order.
func (c Catalog) List() ([]Descriptor, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, ErrCatalogMissing
	}
	var descriptors []Descriptor
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		content, err := os.ReadFile(filepath.Join(c.dir, entry.Name()))
		if err != nil {
			return nil, ErrCatalogMissing
		}
		descriptors = append(descriptors, Descriptor{
			Name:    entry.Name(),
			Content: string(content),
		})
	}
	if len(descriptors) == 0 {
		return nil, ErrCatalogMissing
	}
	return descriptors, nil
}
