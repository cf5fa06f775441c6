package ports

import "go.trai.ch/glance/internal/core/domain"

// ConfigLoader defines the interface for loading the application configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load resolves the configuration for cwd. An empty path looks for glance.yaml in cwd
	// and falls back to defaults; an explicit path must exist.
	Load(cwd, path string) (*domain.Config, error)
}
