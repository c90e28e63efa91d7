package freeze

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/shipwright/internal/core/domain"
	"go.trai.ch/shipwright/internal/core/ports"
	"go.trai.ch/zerr"
)

// DarwinFreezer invokes the freeze script that bundles the application into a
// self-contained .app and wraps it into a disk image.
type DarwinFreezer struct {
	target   domain.Target
	cfg      *domain.ReleaseConfig
	executor ports.Executor
}

// Freeze runs the macOS recipe.
func (f *DarwinFreezer) Freeze(ctx context.Context, checkout string, version domain.ReleaseVersion) ([]domain.ArtifactBundle, error) {
	if len(f.cfg.MacFreezeCmd) == 0 {
		failed := zerr.With(domain.ErrFreezeFailed, "target", f.target.String())
		return nil, zerr.With(failed, "reason", "no freeze command configured")
	}

	cmd := &domain.Command{
		Name:        "macos freeze",
		Args:        f.cfg.MacFreezeCmd,
		WorkingDir:  checkout,
		Environment: toolkitEnvironment(f.target),
	}
	if err := f.executor.Run(ctx, cmd); err != nil {
		return nil, zerr.Wrap(err, domain.ErrFreezeFailed.Error())
	}

	dmg := filepath.Join(checkout, "build", "dmg", fmt.Sprintf("%s-%s.dmg", f.cfg.AppName, version))

	return []domain.ArtifactBundle{
		{Kind: domain.ArtifactDiskImage, Path: dmg},
	}, nil
}
