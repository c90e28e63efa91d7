// Package app implements the application layer for shipwright.
package app

import (
	"context"

	"go.trai.ch/shipwright/internal/adapters/config"
	"go.trai.ch/shipwright/internal/core/domain"
	"go.trai.ch/shipwright/internal/core/ports"
	"go.trai.ch/shipwright/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	runner       *pipeline.Runner
	logger       ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, runner *pipeline.Runner, logger ports.Logger) *App {
	return &App{
		configLoader: loader,
		runner:       runner,
		logger:       logger,
	}
}

// Options carries the per-invocation settings from the command line.
type Options struct {
	// Checkout is the source checkout to release; empty means the current
	// directory.
	Checkout string
	// ConfigPath overrides the release.yaml location.
	ConfigPath string
	// Platforms restricts the build to the named platforms; empty selects
	// the full matrix.
	Platforms []string
	// OutputDir overrides the artifact root from the configuration.
	OutputDir string
	// Signed enables package signing where the platform supports it.
	Signed bool
	// GTK forces a GTK major version onto every selected target; zero keeps
	// each entry's matrix default.
	GTK int
	// Libadwaita forces libadwaita onto every selected target. Only valid
	// together with GTK 4.
	Libadwaita bool
}

// Run executes the release pipeline for the selected targets.
func (a *App) Run(ctx context.Context, opts Options) error {
	checkout := opts.Checkout
	if checkout == "" {
		checkout = "."
	}

	var cfg *domain.ReleaseConfig
	var err error
	if opts.ConfigPath != "" {
		cfg, err = config.Load(opts.ConfigPath)
	} else {
		cfg, err = a.configLoader.Load(checkout)
	}
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	cfg.Signed = opts.Signed
	if opts.OutputDir != "" {
		cfg.OutputDir = opts.OutputDir
	}

	targets, err := SelectTargets(opts.Platforms, opts.GTK, opts.Libadwaita)
	if err != nil {
		return err
	}

	return a.runner.Run(ctx, checkout, cfg, targets)
}

// SelectTargets narrows the static matrix to the named platforms and applies
// the toolkit overrides. Every returned target is validated, so an override
// that produces an inconsistent toolkit (libadwaita on GTK 3) fails here
// rather than mid-pipeline.
func SelectTargets(platforms []string, gtk int, libadwaita bool) ([]domain.Target, error) {
	matrix := domain.DefaultMatrix()

	var targets []domain.Target
	if len(platforms) == 0 {
		targets = matrix
	} else {
		for _, name := range platforms {
			platform, err := domain.ParsePlatform(name)
			if err != nil {
				return nil, err
			}
			for _, t := range matrix {
				if t.Platform == platform {
					targets = append(targets, t)
				}
			}
		}
	}

	if len(targets) == 0 {
		return nil, domain.ErrNoTargets
	}

	for i := range targets {
		if gtk != 0 {
			targets[i].GTK = domain.GTKVersion(gtk)
		}
		if libadwaita {
			targets[i].Libadwaita = true
		}
		if err := targets[i].Validate(); err != nil {
			return nil, err
		}
	}
	return targets, nil
}
