package ports

import "go.trai.ch/recipe/internal/core/domain"

// ConfigLoader defines the interface for loading the tool settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings from the given recipe directory.
	// A missing settings file yields the defaults.
	Load(dir string) (*domain.Settings, error)
}
