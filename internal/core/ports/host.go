package ports

import (
	"context"

	"go.trai.ch/recipe/internal/core/domain"
)

// DependencyResolver is the package manager host that locates the recipe's requirements.
//
//go:generate go run go.uber.org/mock/mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type DependencyResolver interface {
	// Resolve installs the recipe's requirements with the given option overrides
	// into settings.BuildDir and returns every resolved dependency in host order.
	Resolve(
		ctx context.Context,
		recipe *domain.Recipe,
		opts domain.Options,
		settings *domain.Settings,
	) ([]domain.ResolvedDependency, error)
}
