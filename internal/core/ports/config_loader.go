package ports

import "go.trai.ch/ninjify/internal/core/domain"

// ConfigLoader defines the interface for loading the generation settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at the given path. A missing file
	// is not an error; defaults are returned instead.
	Load(path string) (domain.Config, error)
}
