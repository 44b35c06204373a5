package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/plantadash/plantsearch/internal/core/domain"
	"github.com/plantadash/plantsearch/internal/core/ports/driven"
)

// Ensure FileSource implements the interface.
var _ driven.DatasetSource = (*FileSource)(nil)

// FileSource loads records from a local dataset file.
type FileSource struct {
	path string
}

// NewFileSource creates a source for path. The format is chosen by
// extension when Load runs.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Location returns the file path.
func (s *FileSource) Location() string {
	return s.path
}

// Load reads and decodes the file.
func (s *FileSource) Load(ctx context.Context) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	decode, err := decoderFor(s.path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	return decode(data)
}

// decoderFor picks a decoder by file extension.
func decoderFor(path string) (func([]byte) ([]domain.Record, error), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DecodeJSON, nil
	case ".yaml", ".yml":
		return DecodeYAML, nil
	default:
		return nil, fmt.Errorf("dataset %q: %w", path, domain.ErrUnsupportedFormat)
	}
}
