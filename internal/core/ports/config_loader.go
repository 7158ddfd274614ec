package ports

import "go.trai.ch/gha-validator/internal/core/domain"

// ConfigLoader defines the interface for loading the validator configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file with the given name from cwd.
	Load(cwd, filename string) (*domain.Config, error)
}
