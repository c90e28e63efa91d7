package git_test

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
	gitadapter "go.trai.ch/shipwright/internal/adapters/git"
	"go.trai.ch/shipwright/internal/core/domain"
)

// initRepo creates a repository with one commit tagged v3.2.1.
func initRepo(t *testing.T) string {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	dir := t.TempDir()
	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %v: %s", args, out)
	}

	run("init", "--initial-branch=main")
	run("config", "user.email", "release@example.org")
	run("config", "user.name", "Release Bot")
	run("commit", "--allow-empty", "-m", "initial")
	run("tag", "-a", "v3.2.1", "-m", "release 3.2.1")

	return dir
}

func commitN(t *testing.T, dir string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		cmd := exec.Command("git", "commit", "--allow-empty", "-m", "work")
		cmd.Dir = dir
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git commit: %s", out)
	}
}

func TestResolve_ExactTag(t *testing.T) {
	dir := initRepo(t)

	resolver := gitadapter.NewResolver()
	version, err := resolver.Resolve(context.Background(), dir)
	require.NoError(t, err)

	require.Equal(t, "3.2.1", version.String())
	require.True(t, version.IsRelease())
}

func TestResolve_CommitsPastTag(t *testing.T) {
	dir := initRepo(t)
	commitN(t, dir, 4)

	resolver := gitadapter.NewResolver()
	version, err := resolver.Resolve(context.Background(), dir)
	require.NoError(t, err)

	require.False(t, version.IsRelease())
	require.Regexp(t, `^3\.2\.1-dev\.4\+g[0-9a-f]{7}$`, version.String())
}

func TestResolve_IdenticalAcrossInvocations(t *testing.T) {
	dir := initRepo(t)
	commitN(t, dir, 2)

	resolver := gitadapter.NewResolver()

	// Every platform job re-resolves independently; the result must be
	// byte-for-byte identical for the same commit.
	first, err := resolver.Resolve(context.Background(), dir)
	require.NoError(t, err)

	second, err := resolver.Resolve(context.Background(), dir)
	require.NoError(t, err)

	require.Equal(t, first.String(), second.String())
}

func TestResolve_NoTags(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	dir := t.TempDir()
	for _, args := range [][]string{
		{"init", "--initial-branch=main"},
		{"config", "user.email", "release@example.org"},
		{"config", "user.name", "Release Bot"},
		{"commit", "--allow-empty", "-m", "initial"},
	} {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %v: %s", args, out)
	}

	resolver := gitadapter.NewResolver()
	_, err := resolver.Resolve(context.Background(), dir)
	require.Error(t, err)
}

func TestResolve_ShallowClone(t *testing.T) {
	dir := initRepo(t)
	commitN(t, dir, 3)

	shallow := t.TempDir()
	cmd := exec.Command("git", "clone", "--depth", "1", "file://"+dir, shallow)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git clone: %s", out)

	resolver := gitadapter.NewResolver()
	_, err = resolver.Resolve(context.Background(), shallow)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrShallowHistory))
}
