package ports

import "go.trai.ch/recipe/internal/core/domain"

// Hasher defines the interface for computing package identities.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputePackageID computes the package ID for the given identity.
	ComputePackageID(identity domain.PackageIdentity) (string, error)
}
