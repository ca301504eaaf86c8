// Package domain contains the core models of the recipe: its descriptor, declared
// requirements, option overrides and the records the package manager host resolves.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/mod/semver"
)

// DescriptorFileName is the sidecar file holding the package name and version.
const DescriptorFileName = "name-version.txt"

// Descriptor is the package identity read from the descriptor file.
type Descriptor struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ParseDescriptor splits content on the first colon into a name and a version.
// Both parts are whitespace-trimmed and must be non-empty.
func ParseDescriptor(content string) (Descriptor, error) {
	name, version, ok := strings.Cut(content, ":")
	if !ok {
		return Descriptor{}, zerr.With(ErrInvalidDescriptor, "reason", "missing ':' separator")
	}

	d := Descriptor{
		Name:    strings.TrimSpace(name),
		Version: strings.TrimSpace(version),
	}
	if d.Name == "" {
		return Descriptor{}, zerr.With(ErrInvalidDescriptor, "reason", "empty name")
	}
	if d.Version == "" {
		err := zerr.With(ErrInvalidDescriptor, "reason", "empty version")
		return Descriptor{}, zerr.With(err, "name", d.Name)
	}
	return d, nil
}

// Ref returns the "name/version" reference of the package.
func (d Descriptor) Ref() string {
	return d.Name + "/" + d.Version
}

// SemVer returns the canonical semantic version of the descriptor, or "" when the
// version is not a semantic version (e.g. "cci.20200615").
func (d Descriptor) SemVer() string {
	v := d.Version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.Canonical(v)
}
