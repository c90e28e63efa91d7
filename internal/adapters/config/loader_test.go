package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shipwright/internal/adapters/config"
	"go.trai.ch/zerr"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "release.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	path := writeConfig(t, `
version: "1"
application:
  name: harmonine
  id: org.harmonine.Harmonine
source:
  sdist_cmd: ["python3", "-m", "build", "--sdist"]
debian:
  control: packaging/debian/control
flatpak:
  manifest: packaging/flatpak/org.harmonine.Harmonine.yaml
windows:
  freeze_cmd: ["python3", "packaging/windows/freeze.py"]
  extra_deps_cmd: ["python3", "packaging/windows/dependencies.py"]
macos:
  deps_cmd: ["sh", "packaging/macos/dependencies.sh"]
  freeze_cmd: ["python3", "packaging/macos/freeze.py"]
output: build/artifacts
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "harmonine", cfg.AppName)
	assert.Equal(t, "org.harmonine.Harmonine", cfg.AppID)
	assert.Equal(t, []string{"python3", "-m", "build", "--sdist"}, cfg.SdistCmd)
	assert.Equal(t, "packaging/debian/control", cfg.DebianControl)
	assert.Equal(t, "packaging/flatpak/org.harmonine.Harmonine.yaml", cfg.FlatpakManifest)
	assert.Equal(t, "build/artifacts", cfg.OutputDir)
}

func TestLoad_MissingAppName(t *testing.T) {
	path := writeConfig(t, `
version: "1"
application:
  id: org.example.App
`)

	_, err := config.Load(path)
	require.Error(t, err)

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "application.name", zErr.Metadata()["field"])
}

func TestLoad_DefaultOutputDir(t *testing.T) {
	path := writeConfig(t, `
version: "1"
application:
  name: harmonine
  id: org.harmonine.Harmonine
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("build", "artifacts"), cfg.OutputDir)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "application: [not: a: mapping")

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoad_FileMissing(t *testing.T) {
	loader := &config.FileConfigLoader{Filename: "release.yaml"}
	_, err := loader.Load(t.TempDir())
	require.Error(t, err)
}
