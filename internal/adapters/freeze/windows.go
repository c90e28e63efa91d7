package freeze

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/shipwright/internal/core/domain"
	"go.trai.ch/shipwright/internal/core/ports"
	"go.trai.ch/zerr"
)

// WindowsFreezer invokes the freeze script that bundles the application and
// its interpreter into a standalone directory tree and wraps it into an MSI
// installer. The script receives no arguments; architecture and toolkit
// selection travel through ambient environment variables. Both the raw
// directory and the installer are valid outputs.
type WindowsFreezer struct {
	target   domain.Target
	cfg      *domain.ReleaseConfig
	executor ports.Executor
}

// Freeze runs the Windows recipe.
func (f *WindowsFreezer) Freeze(ctx context.Context, checkout string, version domain.ReleaseVersion) ([]domain.ArtifactBundle, error) {
	if len(f.cfg.WindowsFreezeCmd) == 0 {
		failed := zerr.With(domain.ErrFreezeFailed, "target", f.target.String())
		return nil, zerr.With(failed, "reason", "no freeze command configured")
	}

	cmd := &domain.Command{
		Name:        "windows freeze",
		Args:        f.cfg.WindowsFreezeCmd,
		WorkingDir:  checkout,
		Environment: toolkitEnvironment(f.target),
	}
	if err := f.executor.Run(ctx, cmd); err != nil {
		return nil, zerr.Wrap(err, domain.ErrFreezeFailed.Error())
	}

	packageDir := filepath.Join(checkout, "build", "package", f.cfg.AppName)
	installer := filepath.Join(checkout, "build", "installer",
		fmt.Sprintf("%s-%s-%s.msi", f.cfg.AppName, version, f.target.Arch))

	return []domain.ArtifactBundle{
		{Kind: domain.ArtifactPackageDir, Path: packageDir, Dir: true},
		{Kind: domain.ArtifactInstaller, Path: installer},
	}, nil
}
