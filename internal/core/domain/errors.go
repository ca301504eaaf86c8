package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidDescriptor is returned when name-version.txt does not hold a "name:version" pair.
	ErrInvalidDescriptor = zerr.New("invalid descriptor")

	// ErrDependencyNotFound is returned when an option targets a package the recipe does not require.
	ErrDependencyNotFound = zerr.New("dependency not found")

	// ErrHostResolveFailed is returned when the package manager host cannot resolve the dependency graph.
	ErrHostResolveFailed = zerr.New("host failed to resolve dependencies")

	// ErrGenerateFailed is returned when the generated build file cannot be written.
	ErrGenerateFailed = zerr.New("failed to generate build file")

	// ErrImportFailed is returned when a runtime artifact cannot be copied into the output tree.
	ErrImportFailed = zerr.New("failed to import artifact")

	// ErrLockfileMissing is returned when an offline run finds no recorded resolution.
	ErrLockfileMissing = zerr.New("lockfile missing")
)
