package provision

import (
	"context"
	"fmt"

	"go.trai.ch/shipwright/internal/core/domain"
	"go.trai.ch/shipwright/internal/core/ports"
	"go.trai.ch/zerr"
)

// ScriptProvisioner implements the scripted strategy (macOS): one dependency
// script resolves all native and interpreter-level packages itself. Its exit
// status is the whole answer; the provisioned package set is opaque here.
type ScriptProvisioner struct {
	target   domain.Target
	depsCmd  []string
	executor ports.Executor
}

// Provision runs the dependency script.
func (p *ScriptProvisioner) Provision(ctx context.Context, checkout string) (*domain.ProvisionReceipt, error) {
	if len(p.depsCmd) == 0 {
		failed := zerr.With(domain.ErrProvisioningFailed, "target", p.target.String())
		return nil, zerr.With(failed, "reason", "no dependency script configured")
	}

	cmd := &domain.Command{
		Name:       "dependency script",
		Args:       p.depsCmd,
		WorkingDir: checkout,
	}

	if err := p.executor.Run(ctx, cmd); err != nil {
		failed := fmt.Errorf("%w: %w", domain.ErrProvisioningFailed, err)
		return nil, zerr.With(failed, "target", p.target.String())
	}

	return &domain.ProvisionReceipt{
		Target:     p.target,
		GTK:        p.target.GTK,
		Libadwaita: p.target.Libadwaita,
		Packages:   domain.DependencySet{},
	}, nil
}
