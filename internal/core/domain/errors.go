package domain

import "errors"

var (
	// ErrShallowHistory is returned when the checkout has truncated history.
	// Version derivation needs reachability to the last release tag.
	ErrShallowHistory = errors.New("shallow repository history")

	// ErrVersionUnresolved is returned when no release version can be derived
	// from the repository history.
	ErrVersionUnresolved = errors.New("release version unresolved")

	// ErrUnknownPlatform is returned for a platform name outside the matrix.
	ErrUnknownPlatform = errors.New("unknown platform")

	// ErrNoTargets is returned when target selection leaves nothing to build.
	ErrNoTargets = errors.New("no platform targets selected")

	// ErrInvalidToolkit is returned for an inconsistent toolkit selection.
	ErrInvalidToolkit = errors.New("invalid toolkit configuration")

	// ErrToolkitMismatch is returned when the provisioned toolkit does not
	// match the toolkit the freeze recipe would link against.
	ErrToolkitMismatch = errors.New("provisioned toolkit does not match freeze target")

	// ErrProvisioningFailed is returned when a package manager or dependency
	// script exits nonzero. Never retried: it signals a stale manifest, not a
	// transient fault.
	ErrProvisioningFailed = errors.New("dependency provisioning failed")

	// ErrFreezeFailed is returned when the freeze or packaging step fails.
	ErrFreezeFailed = errors.New("artifact freeze failed")

	// ErrArtifactMissing is returned when an expected freeze output is absent
	// or empty after a reported-successful freeze.
	ErrArtifactMissing = errors.New("expected artifact missing")

	// ErrInvalidTransition is returned on a disallowed job state transition.
	ErrInvalidTransition = errors.New("invalid job state transition")

	// ErrVersionSkew is returned when sibling pipelines derive different
	// release versions from the same checkout.
	ErrVersionSkew = errors.New("release version differs between platform pipelines")

	// ErrPipelineFailed is the top-level error when at least one platform
	// pipeline failed.
	ErrPipelineFailed = errors.New("release pipeline failed")
)
