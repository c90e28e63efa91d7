// Package provision implements the per-platform dependency provisioners.
//
// Three mutually exclusive strategies exist, selected by target: declarative
// manifest validation for Debian, a fixed package matrix for Windows/MSYS,
// and a single script for macOS. A provisioner either fully satisfies the
// target's dependency set or fails the pipeline; failures are never retried
// because they signal a stale or incompatible manifest, not a transient fault.
package provision

import (
	"go.trai.ch/shipwright/internal/core/domain"
	"go.trai.ch/shipwright/internal/core/ports"
	"go.trai.ch/zerr"
)

// Factory implements ports.ProvisionerFactory.
type Factory struct {
	executor ports.Executor
	logger   ports.Logger
}

// NewFactory creates a new Factory.
func NewFactory(executor ports.Executor, logger ports.Logger) *Factory {
	return &Factory{
		executor: executor,
		logger:   logger,
	}
}

// ForTarget returns the provisioning strategy for the given matrix entry.
func (f *Factory) ForTarget(target domain.Target, cfg *domain.ReleaseConfig) (ports.Provisioner, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}

	switch target.Platform {
	case domain.PlatformDebian:
		return &DebianProvisioner{target: target, controlPath: cfg.DebianControl, logger: f.logger}, nil
	case domain.PlatformFlatpak:
		return &FlatpakProvisioner{target: target, manifestPath: cfg.FlatpakManifest, appID: cfg.AppID}, nil
	case domain.PlatformWindowsX64, domain.PlatformWindowsX86:
		return &MSYSProvisioner{
			target:       target,
			extraDepsCmd: cfg.WindowsExtraDepsCmd,
			executor:     f.executor,
			logger:       f.logger,
		}, nil
	case domain.PlatformMacOS:
		return &ScriptProvisioner{target: target, depsCmd: cfg.MacDepsCmd, executor: f.executor}, nil
	default:
		return nil, zerr.With(domain.ErrUnknownPlatform, "platform", string(target.Platform))
	}
}
