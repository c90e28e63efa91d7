package freeze

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/shipwright/internal/core/domain"
	"go.trai.ch/shipwright/internal/core/ports"
	"go.trai.ch/zerr"
)

// DebianFreezer builds the source distribution, reconstructs the canonical
// upstream tarball name from it, and runs the platform packaging toolchain to
// produce source and binary packages in the checkout's parent directory.
type DebianFreezer struct {
	target   domain.Target
	cfg      *domain.ReleaseConfig
	executor ports.Executor
	logger   ports.Logger
}

// Freeze runs the Debian recipe.
func (f *DebianFreezer) Freeze(ctx context.Context, checkout string, version domain.ReleaseVersion) ([]domain.ArtifactBundle, error) {
	if len(f.cfg.SdistCmd) == 0 {
		failed := zerr.With(domain.ErrFreezeFailed, "target", f.target.String())
		return nil, zerr.With(failed, "reason", "no sdist command configured")
	}

	sdist := &domain.Command{
		Name:       "sdist",
		Args:       f.cfg.SdistCmd,
		WorkingDir: checkout,
	}
	if err := f.executor.Run(ctx, sdist); err != nil {
		return nil, zerr.Wrap(err, domain.ErrFreezeFailed.Error())
	}

	sdistPath := filepath.Join(checkout, "dist", fmt.Sprintf("%s-%s.tar.gz", f.cfg.AppName, version))
	origPath := filepath.Join(checkout, "..", fmt.Sprintf("%s_%s.orig.tar.gz", f.cfg.AppName, version))

	if err := copyFile(sdistPath, origPath); err != nil {
		failed := zerr.Wrap(err, domain.ErrFreezeFailed.Error())
		return nil, zerr.With(failed, "sdist", sdistPath)
	}
	f.logger.Info(fmt.Sprintf("upstream tarball %s", filepath.Base(origPath)))

	args := []string{"debuild", "-sa"}
	if !f.cfg.Signed {
		args = append(args, "-us", "-uc")
	}
	debuild := &domain.Command{
		Name:       "debuild",
		Args:       args,
		WorkingDir: checkout,
	}
	if err := f.executor.Run(ctx, debuild); err != nil {
		return nil, zerr.Wrap(err, domain.ErrFreezeFailed.Error())
	}

	// The packaging toolchain writes into the parent directory. The Debian
	// revision is fixed at -1: one upstream release maps to one package build.
	parent := filepath.Join(checkout, "..")
	return []domain.ArtifactBundle{
		{Kind: domain.ArtifactSourcePackage, Path: origPath},
		{Kind: domain.ArtifactSourcePackage, Path: filepath.Join(parent, fmt.Sprintf("%s_%s-1.dsc", f.cfg.AppName, version))},
		{Kind: domain.ArtifactBinaryPackage, Path: filepath.Join(parent, fmt.Sprintf("%s_%s-1_all.deb", f.cfg.AppName, version))},
	}, nil
}

// copyFile copies src to dst, preserving the source bytes exactly so the
// reconstructed upstream tarball unpacks to the sdist contents.
func copyFile(src, dst string) error {
	in, err := os.Open(src) //nolint:gosec // paths derive from config and version
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // read-only file

	out, err := os.Create(dst) //nolint:gosec // paths derive from config and version
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
