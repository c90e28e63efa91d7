package provision

import (
	"context"
	"fmt"

	"go.trai.ch/shipwright/internal/core/domain"
	"go.trai.ch/shipwright/internal/core/ports"
	"go.trai.ch/zerr"
)

// MSYSProvisioner implements the imperative-matrix strategy for the Windows
// targets. For each {architecture, GTK version, libadwaita} combination a
// fixed list of native packages is installed through pacman, followed by an
// application-specific extras step for runtime needs the package manager does
// not cover (fonts, codecs). Either step failing aborts the pipeline.
type MSYSProvisioner struct {
	target       domain.Target
	extraDepsCmd []string
	executor     ports.Executor
	logger       ports.Logger
}

// basePackages are the unprefixed MSYS package names every Windows freeze
// needs, independent of toolkit version.
var basePackages = []string{
	"gettext",
	"gspell",
	"libwebp",
	"python",
	"python-build",
	"python-cx-freeze",
	"python-gobject",
	"python-pip",
}

// PackageMatrix returns the full pacman package list for one matrix entry.
// Names carry the architecture prefix; the toolkit package is selected by GTK
// major version and the libadwaita styling package is appended only when the
// flag is set.
func PackageMatrix(target domain.Target) domain.DependencySet {
	prefix := target.MSYSPrefix()
	deps := make(domain.DependencySet, len(basePackages)+2)

	for _, name := range basePackages {
		deps[prefix+name] = ""
	}

	switch target.GTK {
	case domain.GTK4:
		deps[prefix+"gtk4"] = ""
		if target.Libadwaita {
			deps[prefix+"libadwaita"] = ""
		}
	default:
		deps[prefix+"gtk3"] = ""
	}

	return deps
}

// Provision installs the package matrix and runs the extras step.
func (p *MSYSProvisioner) Provision(ctx context.Context, checkout string) (*domain.ProvisionReceipt, error) {
	deps := PackageMatrix(p.target)

	args := append([]string{"pacman", "-S", "--noconfirm", "--needed"}, deps.Names()...)
	install := &domain.Command{
		Name:       "pacman install",
		Args:       args,
		WorkingDir: checkout,
	}

	if err := p.executor.Run(ctx, install); err != nil {
		failed := fmt.Errorf("%w: %w", domain.ErrProvisioningFailed, err)
		return nil, zerr.With(failed, "target", p.target.String())
	}

	p.logger.Info(fmt.Sprintf("installed %d packages for %s", len(deps), p.target))

	if len(p.extraDepsCmd) > 0 {
		extras := &domain.Command{
			Name:       "runtime extras",
			Args:       p.extraDepsCmd,
			WorkingDir: checkout,
			Environment: map[string]string{
				"SW_ARCH":        p.target.Arch,
				"SW_GTK_VERSION": fmt.Sprintf("%d", p.target.GTK),
			},
		}
		if err := p.executor.Run(ctx, extras); err != nil {
			failed := fmt.Errorf("%w: %w", domain.ErrProvisioningFailed, err)
			return nil, zerr.With(failed, "step", "runtime extras")
		}
	}

	return &domain.ProvisionReceipt{
		Target:     p.target,
		GTK:        p.target.GTK,
		Libadwaita: p.target.Libadwaita,
		Packages:   deps,
	}, nil
}
