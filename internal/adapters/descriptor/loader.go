// Package descriptor reads the package name and version from the sidecar descriptor file.
package descriptor

import (
	"os"
	"path/filepath"

	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/zerr"
)

// Loader implements ports.DescriptorLoader.
type Loader struct {
	Filename string
}

// NewLoader creates a Loader for domain.DescriptorFileName.
func NewLoader() *Loader {
	return &Loader{Filename: domain.DescriptorFileName}
}

// Load reads and parses the descriptor file in dir.
func (l *Loader) Load(dir string) (domain.Descriptor, error) {
	path := filepath.Join(dir, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is the recipe directory chosen by the user
	if err != nil {
		return domain.Descriptor{}, zerr.With(zerr.Wrap(err, "failed to read descriptor"), "path", path)
	}

	d, err := domain.ParseDescriptor(string(data))
	if err != nil {
		return domain.Descriptor{}, zerr.With(err, "path", path)
	}
	return d, nil
}
