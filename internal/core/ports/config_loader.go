package ports

import "go.trai.ch/shipwright/internal/core/domain"

// ConfigLoader loads and validates the release pipeline configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration relative to the checkout directory.
	Load(checkout string) (*domain.ReleaseConfig, error)
}
