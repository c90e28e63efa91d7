// Package config provides the release configuration loader.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/shipwright/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up at the checkout root.
const DefaultFilename = "release.yaml"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// Load reads the configuration relative to the checkout directory.
func (l *FileConfigLoader) Load(checkout string) (*domain.ReleaseConfig, error) {
	name := l.Filename
	if name == "" {
		name = DefaultFilename
	}
	if !filepath.IsAbs(name) {
		name = filepath.Join(checkout, name)
	}
	return Load(name)
}

// releaseFile is the structure of the release.yaml configuration file.
type releaseFile struct {
	Version     string         `yaml:"version"`
	Application applicationDTO `yaml:"application"`
	Source      sourceDTO      `yaml:"source"`
	Debian      debianDTO      `yaml:"debian"`
	Flatpak     flatpakDTO     `yaml:"flatpak"`
	Windows     windowsDTO     `yaml:"windows"`
	MacOS       macosDTO       `yaml:"macos"`
	Output      string         `yaml:"output"`
}

type applicationDTO struct {
	Name string `yaml:"name"`
	ID   string `yaml:"id"`
}

type sourceDTO struct {
	SdistCmd []string `yaml:"sdist_cmd"`
}

type debianDTO struct {
	Control string `yaml:"control"`
}

type flatpakDTO struct {
	Manifest string `yaml:"manifest"`
}

type windowsDTO struct {
	FreezeCmd    []string `yaml:"freeze_cmd"`
	ExtraDepsCmd []string `yaml:"extra_deps_cmd"`
}

type macosDTO struct {
	DepsCmd   []string `yaml:"deps_cmd"`
	FreezeCmd []string `yaml:"freeze_cmd"`
}

// Load reads a configuration file from the given path.
func Load(path string) (*domain.ReleaseConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file releaseFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	cfg := &domain.ReleaseConfig{
		AppName:             file.Application.Name,
		AppID:               file.Application.ID,
		SdistCmd:            file.Source.SdistCmd,
		DebianControl:       file.Debian.Control,
		FlatpakManifest:     file.Flatpak.Manifest,
		WindowsFreezeCmd:    file.Windows.FreezeCmd,
		WindowsExtraDepsCmd: file.Windows.ExtraDepsCmd,
		MacDepsCmd:          file.MacOS.DepsCmd,
		MacFreezeCmd:        file.MacOS.FreezeCmd,
		OutputDir:           file.Output,
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *domain.ReleaseConfig) error {
	if cfg.AppName == "" {
		return zerr.With(zerr.New("missing required field"), "field", "application.name")
	}
	if cfg.AppID == "" {
		return zerr.With(zerr.New("missing required field"), "field", "application.id")
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = filepath.Join("build", "artifacts")
	}
	return nil
}
