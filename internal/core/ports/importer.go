package ports

import "go.trai.ch/recipe/internal/core/domain"

// ArtifactImporter copies runtime artifacts of resolved dependencies into the output tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=importer.go -destination=mocks/mock_importer.go -package=mocks
type ArtifactImporter interface {
	// Import copies matching artifacts into outputDir and returns the copied destination paths.
	Import(deps []domain.ResolvedDependency, outputDir string) ([]string, error)
}
