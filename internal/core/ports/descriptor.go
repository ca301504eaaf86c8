package ports

import "go.trai.ch/recipe/internal/core/domain"

// DescriptorLoader reads the package name and version.
//
//go:generate go run go.uber.org/mock/mockgen -source=descriptor.go -destination=mocks/mock_descriptor.go -package=mocks
type DescriptorLoader interface {
	// Load reads the descriptor file located in the recipe directory dir.
	Load(dir string) (domain.Descriptor, error)
}
