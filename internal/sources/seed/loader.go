package seed

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// defaultCatalog is the built-in demo seed shipped with the binary, used
// whenever no catalog file is configured.
//
//go:embed catalog.yaml
var defaultCatalog []byte

// Loader reads and parses a catalog YAML document, from disk when a path is
// configured or from the embedded default otherwise.
type Loader struct {
	filePath string
}

// NewLoader creates a loader. An empty filePath selects the embedded
// catalog.
func NewLoader(filePath string) *Loader {
	return &Loader{filePath: filePath}
}

// Load reads and parses the catalog document.
func (l *Loader) Load() (*Document, error) {
	data := defaultCatalog
	if l.filePath != "" {
		b, err := os.ReadFile(l.filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file: %w", err)
		}
		data = b
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog yaml: %w", err)
	}

	return &doc, nil
}

// Embedded reports whether this loader serves the built-in catalog.
func (l *Loader) Embedded() bool {
	return l.filePath == ""
}
