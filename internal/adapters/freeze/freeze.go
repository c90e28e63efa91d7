// Package freeze implements the per-platform artifact freeze recipes.
//
// Each matrix entry dispatches to exactly one recipe at pipeline start:
// Debian builds a source distribution and packages it with the platform
// toolchain, Flatpak drives the external builder over a declarative manifest,
// and the Windows and macOS recipes invoke the freeze scripts that bundle the
// interpreter with the application. Recipes only invoke collaborators and
// name their deterministic outputs; verifying those outputs is the
// collector's job.
package freeze

import (
	"go.trai.ch/shipwright/internal/core/domain"
	"go.trai.ch/shipwright/internal/core/ports"
	"go.trai.ch/zerr"
)

// Factory implements ports.FreezerFactory.
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

// ForTarget returns the freeze recipe for the given matrix entry.
func (f *Factory) ForTarget(target domain.Target, cfg *domain.ReleaseConfig) (ports.Freezer, error) {
	if err := target.Validate(); err != nil {
		return nil, err
	}

	switch target.Platform {
	case domain.PlatformDebian:
		return &DebianFreezer{
			target:   target,
			cfg:      cfg,
			executor: f.executor,
			logger:   f.logger,
		}, nil
	case domain.PlatformFlatpak:
		return &FlatpakFreezer{target: target, cfg: cfg, executor: f.executor}, nil
	case domain.PlatformWindowsX64, domain.PlatformWindowsX86:
		return &WindowsFreezer{target: target, cfg: cfg, executor: f.executor}, nil
	case domain.PlatformMacOS:
		return &DarwinFreezer{target: target, cfg: cfg, executor: f.executor}, nil
	default:
		return nil, zerr.With(domain.ErrUnknownPlatform, "platform", string(target.Platform))
	}
}

// toolkitEnvironment is the ambient environment contract for freeze scripts:
// the script reads the architecture, GTK major version, and libadwaita flag
// from these variables and nothing else.
func toolkitEnvironment(target domain.Target) map[string]string {
	adwaita := "0"
	if target.Libadwaita {
		adwaita = "1"
	}
	return map[string]string{
		"SW_ARCH":        target.Arch,
		"SW_GTK_VERSION": target.GTK.EnvString(),
		"SW_LIBADWAITA":  adwaita,
	}
}
