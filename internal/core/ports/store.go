package ports

import "go.trai.ch/recipe/internal/core/domain"

// LockfileStore persists the last resolution.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type LockfileStore interface {
	// Get retrieves the lockfile stored in dir.
	// Returns nil, nil if not found.
	Get(dir string) (*domain.Lockfile, error)

	// Put stores the lockfile in dir.
	Put(dir string, lock domain.Lockfile) error
}
