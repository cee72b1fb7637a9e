// Package locale loads the auxiliary locale data attached to the snapshot.
// Whatever the provider returns (holiday lists, locale name, provider-defined
// fields) is passed through verbatim, never interpreted.
package locale

import (
	"encoding/json"
	"fmt"
	"os"
)

// Document is the provider's payload.
type Document map[string]any

// Provider yields the current locale document. Implementations are
// best-effort: an error means the caller substitutes an empty document and
// keeps going, not that the run aborts.
type Provider interface {
	Load() (Document, error)
}

// FileProvider reads the locale document from a JSON file at a fixed path.
type FileProvider struct {
	Path string
}

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{Path: path}
}

func (p *FileProvider) Load() (Document, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("read locale file: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse locale file %s: %w", p.Path, err)
	}
	return doc, nil
}
