package ports

import (
	"context"

	"go.trai.ch/shipwright/internal/core/domain"
)

// VersionResolver derives the canonical release version from version-control
// history. It is a pure read of repository state.
//
//go:generate go run go.uber.org/mock/mockgen -source=version_resolver.go -destination=mocks/mock_version_resolver.go -package=mocks
type VersionResolver interface {
	// Resolve returns the release version for the checkout at repoPath.
	// It fails with domain.ErrShallowHistory when the history is truncated
	// and domain.ErrVersionUnresolved when no release tag is reachable;
	// it never silently defaults.
	Resolve(ctx context.Context, repoPath string) (domain.ReleaseVersion, error)
}
