package fs

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/recipe/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes package identities and file content hashes.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputePackageID hashes the header-only form of identity. Settings, options
// and requirements never contribute to the result.
func (h *Hasher) ComputePackageID(identity domain.PackageIdentity) (string, error) {
	id := identity.HeaderOnly()
	hasher := xxhash.New()

	_, _ = hasher.WriteString(id.Name)
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(id.Version)
	_, _ = hasher.Write([]byte{0})

	writeSection(hasher, id.Settings)
	writeSection(hasher, id.Options)
	writeSection(hasher, id.Requires)

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// writeSection hashes a map in key order, followed by a section separator.
func writeSection(hasher *xxhash.Digest, m map[string]string) {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		_, _ = hasher.WriteString(k)
		_, _ = hasher.Write([]byte{'='})
		_, _ = hasher.WriteString(m[k])
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0})
}
