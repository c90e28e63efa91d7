// Package git resolves the release version from repository history.
package git

import (
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/shipwright/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver implements ports.VersionResolver by shelling out to the git binary.
// Resolution is a pure read of repository state: it requires complete history
// and fails hard on a shallow checkout, since a wrong version would propagate
// into every downstream package filename and installed-package metadata.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve derives the release version for the checkout at repoPath.
func (r *Resolver) Resolve(ctx context.Context, repoPath string) (domain.ReleaseVersion, error) {
	shallow, err := r.isShallow(ctx, repoPath)
	if err != nil {
		return domain.ReleaseVersion{}, err
	}
	if shallow {
		return domain.ReleaseVersion{}, zerr.With(domain.ErrShallowHistory, "repo", repoPath)
	}

	out, err := r.git(ctx, repoPath, "describe", "--abbrev=7", "--match", "v*")
	if err != nil {
		unresolved := zerr.Wrap(err, domain.ErrVersionUnresolved.Error())
		return domain.ReleaseVersion{}, zerr.With(unresolved, "repo", repoPath)
	}

	version, err := domain.ParseDescribe(out)
	if err != nil {
		return domain.ReleaseVersion{}, zerr.With(err, "repo", repoPath)
	}

	return version, nil
}

// isShallow checks whether the checkout has truncated history.
func (r *Resolver) isShallow(ctx context.Context, repoPath string) (bool, error) {
	out, err := r.git(ctx, repoPath, "rev-parse", "--is-shallow-repository")
	if err != nil {
		unresolved := zerr.Wrap(err, domain.ErrVersionUnresolved.Error())
		return false, zerr.With(unresolved, "repo", repoPath)
	}
	return out == "true", nil
}

func (r *Resolver) git(ctx context.Context, repoPath string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = repoPath

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr := strings.TrimSpace(string(exitErr.Stderr))
			gitErr := zerr.Wrap(exitErr, "git command failed")
			gitErr = zerr.With(gitErr, "args", strings.Join(args, " "))
			return "", zerr.With(gitErr, "stderr", stderr)
		}
		return "", zerr.With(zerr.Wrap(err, "git command failed"), "args", strings.Join(args, " "))
	}

	return strings.TrimSpace(string(output)), nil
}
