package ports

import (
	"context"

	"go.trai.ch/shipwright/internal/core/domain"
)

// Collector normalizes freeze output into the per-platform directory the
// archiving collaborator consumes.
//
//go:generate go run go.uber.org/mock/mockgen -source=collector.go -destination=mocks/mock_collector.go -package=mocks
type Collector interface {
	// Collect copies the bundles into the target's output directory,
	// dereferencing symlinks so the exported tree is self-contained, and
	// writes the artifact manifest. A missing or empty expected bundle is
	// domain.ErrArtifactMissing.
	Collect(ctx context.Context, target domain.Target, version domain.ReleaseVersion, bundles []domain.ArtifactBundle) error

	// Discard removes the target's output directory so a failed pipeline
	// leaves no partial artifacts under the output contract path.
	Discard(target domain.Target) error
}

// CollectorFactory binds a collector to the artifact root for one run.
type CollectorFactory interface {
	// ForOutput returns a collector writing under the given artifact root.
	ForOutput(dir string) Collector
}
