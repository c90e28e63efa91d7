package ports

import (
	"context"

	"go.trai.ch/shipwright/internal/core/domain"
)

// Freezer transforms a provisioned checkout into platform-native artifact
// bundles. One recipe per target, dispatched once at pipeline start.
//
//go:generate go run go.uber.org/mock/mockgen -source=freezer.go -destination=mocks/mock_freezer.go -package=mocks
type Freezer interface {
	// Freeze runs the recipe and returns the produced bundles. Bundle paths
	// are deterministic given the target and version; Freeze does not verify
	// their presence, the collector does.
	Freeze(ctx context.Context, checkout string, version domain.ReleaseVersion) ([]domain.ArtifactBundle, error)
}

// FreezerFactory selects the freeze recipe for a target.
type FreezerFactory interface {
	// ForTarget returns the freezer for the given matrix entry.
	ForTarget(target domain.Target, cfg *domain.ReleaseConfig) (Freezer, error)
}
