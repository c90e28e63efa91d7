package ports

import (
	"context"

	"go.trai.ch/shipwright/internal/core/domain"
)

// Provisioner installs or declares the dependency set one target needs before
// freezing. Implementations are strategy-specific: declarative manifest
// validation (Debian), a fixed package matrix (Windows/MSYS), or a single
// script (macOS). Provisioning either fully succeeds or fails the pipeline;
// there is no partial success and no retry.
//
//go:generate go run go.uber.org/mock/mockgen -source=provisioner.go -destination=mocks/mock_provisioner.go -package=mocks
type Provisioner interface {
	// Provision satisfies the target's dependency set inside the checkout and
	// returns a receipt of what was provisioned.
	Provision(ctx context.Context, checkout string) (*domain.ProvisionReceipt, error)
}

// ProvisionerFactory selects the provisioning strategy for a target.
type ProvisionerFactory interface {
	// ForTarget returns the provisioner for the given matrix entry.
	ForTarget(target domain.Target, cfg *domain.ReleaseConfig) (Provisioner, error)
}
