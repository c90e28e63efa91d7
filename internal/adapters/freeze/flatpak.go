package freeze

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/shipwright/internal/core/domain"
	"go.trai.ch/shipwright/internal/core/ports"
	"go.trai.ch/zerr"
)

// FlatpakFreezer drives the external builder over the declarative manifest
// and exports one portable bundle file. The manifest itself is never
// interpreted here; it names the runtime, build commands, and installed
// files for the builder.
type FlatpakFreezer struct {
	target   domain.Target
	cfg      *domain.ReleaseConfig
	executor ports.Executor
}

// Freeze runs the Flatpak recipe.
func (f *FlatpakFreezer) Freeze(ctx context.Context, checkout string, version domain.ReleaseVersion) ([]domain.ArtifactBundle, error) {
	if f.cfg.FlatpakManifest == "" {
		failed := zerr.With(domain.ErrFreezeFailed, "target", f.target.String())
		return nil, zerr.With(failed, "reason", "no flatpak manifest configured")
	}

	workDir := filepath.Join(checkout, "build", "flatpak")
	repoDir := filepath.Join(workDir, "repo")
	buildDir := filepath.Join(workDir, "builddir")

	build := &domain.Command{
		Name: "flatpak-builder",
		Args: []string{
			"flatpak-builder",
			"--force-clean",
			"--install-deps-from=flathub",
			"--repo=" + repoDir,
			buildDir,
			f.cfg.FlatpakManifest,
		},
		WorkingDir: checkout,
	}
	if err := f.executor.Run(ctx, build); err != nil {
		return nil, zerr.Wrap(err, domain.ErrFreezeFailed.Error())
	}

	bundlePath := filepath.Join(workDir, fmt.Sprintf("%s-%s.flatpak", f.cfg.AppName, version))
	bundle := &domain.Command{
		Name:       "flatpak build-bundle",
		Args:       []string{"flatpak", "build-bundle", repoDir, bundlePath, f.cfg.AppID},
		WorkingDir: checkout,
	}
	if err := f.executor.Run(ctx, bundle); err != nil {
		return nil, zerr.Wrap(err, domain.ErrFreezeFailed.Error())
	}

	return []domain.ArtifactBundle{
		{Kind: domain.ArtifactBundleFile, Path: bundlePath},
	}, nil
}
