package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.trai.ch/shipwright/internal/core/domain"
	"go.trai.ch/shipwright/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Runner executes one job per target concurrently. Jobs do not share a
// cancellation scope: one platform failing leaves its siblings running to
// completion, and every job error is reported, not just the first.
type Runner struct {
	resolver     ports.VersionResolver
	provisioners ports.ProvisionerFactory
	freezers     ports.FreezerFactory
	collectors   ports.CollectorFactory
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(
	resolver ports.VersionResolver,
	provisioners ports.ProvisionerFactory,
	freezers ports.FreezerFactory,
	collectors ports.CollectorFactory,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Runner {
	return &Runner{
		resolver:     resolver,
		provisioners: provisioners,
		freezers:     freezers,
		collectors:   collectors,
		telemetry:    telemetry,
		logger:       logger,
	}
}

// Run builds every target from the checkout. After all jobs finish, the
// versions the succeeded jobs derived must be identical; a skew means the
// checkout changed mid-run and the artifacts cannot be released together.
func (r *Runner) Run(ctx context.Context, checkout string, cfg *domain.ReleaseConfig, targets []domain.Target) error {
	if len(targets) == 0 {
		return domain.ErrNoTargets
	}

	outputDir := cfg.OutputDir
	if !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(checkout, outputDir)
	}
	collector := r.collectors.ForOutput(outputDir)

	versions := make([]domain.ReleaseVersion, len(targets))
	jobErrs := make([]error, len(targets))

	// A plain group, not WithContext: sibling jobs must not be cancelled
	// when one fails.
	var g errgroup.Group
	for i, target := range targets {
		job := NewJob(target, checkout, cfg, r.resolver, r.provisioners, r.freezers, collector, r.telemetry, r.logger)
		g.Go(func() error {
			versions[i], jobErrs[i] = job.Run(ctx)
			return jobErrs[i]
		})
	}
	_ = g.Wait()

	if err := errors.Join(jobErrs...); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPipelineFailed, err)
	}

	for i := 1; i < len(versions); i++ {
		if !versions[0].Equal(versions[i]) {
			skew := zerr.With(domain.ErrVersionSkew, targets[0].String(), versions[0].String())
			return zerr.With(skew, targets[i].String(), versions[i].String())
		}
	}
	return nil
}
