package ports

import "go.trai.ch/recipe/internal/core/domain"

// BuildFileGenerator writes the build-system include file describing resolved dependencies.
//
//go:generate go run go.uber.org/mock/mockgen -source=generator.go -destination=mocks/mock_generator.go -package=mocks
type BuildFileGenerator interface {
	// Generate writes the file into dir, replacing any previous one, and returns its path.
	Generate(deps []domain.ResolvedDependency, dir string) (string, error)
}
