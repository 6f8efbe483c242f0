package pricing

import (
	"embed"
	"io/fs"
	"sync"
)

//go:embed tables/*.hcl
var embedded embed.FS

const tablesGlob = "tables/*.hcl"

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the catalog built from the embedded pricing documents.
// It is parsed once per process.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = LoadCatalog(embedded, tablesGlob)
		if defaultErr == nil {
			defaultCatalog.Freeze()
		}
	})
	return defaultCatalog, defaultErr
}

// LoadCatalog parses every document of fsys matching glob
func LoadCatalog(fsys fs.FS, glob string) (*Catalog, error) {
	return NewLoader().LoadFS(fsys, glob)
}

// LoadFile parses a single pricing document from disk
func LoadFile(path string) (*Catalog, error) {
	return NewLoader().LoadFile(path)
}
