// Package pipeline drives the per-platform release jobs: provision the
// dependency set, freeze the application, collect the artifacts.
package pipeline

import (
	"context"
	"fmt"

	"go.trai.ch/shipwright/internal/core/domain"
	"go.trai.ch/shipwright/internal/core/ports"
	"go.trai.ch/zerr"
)

// Job runs one platform target through the release pipeline. Jobs are
// isolated from their siblings: a failure here never touches another
// platform's state or artifacts. Within the job the first error aborts it;
// nothing is retried.
type Job struct {
	target   domain.Target
	checkout string
	cfg      *domain.ReleaseConfig

	resolver     ports.VersionResolver
	provisioners ports.ProvisionerFactory
	freezers     ports.FreezerFactory
	collector    ports.Collector
	telemetry    ports.Telemetry
	logger       ports.Logger

	state domain.JobState
}

// NewJob creates a job for one matrix entry.
func NewJob(
	target domain.Target,
	checkout string,
	cfg *domain.ReleaseConfig,
	resolver ports.VersionResolver,
	provisioners ports.ProvisionerFactory,
	freezers ports.FreezerFactory,
	collector ports.Collector,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Job {
	return &Job{
		target:       target,
		checkout:     checkout,
		cfg:          cfg,
		resolver:     resolver,
		provisioners: provisioners,
		freezers:     freezers,
		collector:    collector,
		telemetry:    telemetry,
		logger:       logger,
		state:        domain.JobUnprovisioned,
	}
}

// State returns the job's current lifecycle state.
func (j *Job) State() domain.JobState {
	return j.state
}

// Run executes the job and returns the release version it built. On any
// error the job transitions to failed and its platform output directory is
// discarded, so the output contract path never holds partial artifacts.
func (j *Job) Run(ctx context.Context) (domain.ReleaseVersion, error) {
	version, err := j.resolver.Resolve(ctx, j.checkout)
	if err != nil {
		return domain.ReleaseVersion{}, j.fail(err)
	}
	j.logger.Info(fmt.Sprintf("%s: building %s", j.target, version))

	receipt, err := j.provision(ctx)
	if err != nil {
		return domain.ReleaseVersion{}, j.fail(err)
	}

	if !receipt.MatchesToolkit(j.target) {
		mismatch := zerr.With(domain.ErrToolkitMismatch, "provisioned_gtk", int(receipt.GTK))
		return domain.ReleaseVersion{}, j.fail(zerr.With(mismatch, "target_gtk", int(j.target.GTK)))
	}

	bundles, err := j.freeze(ctx, version)
	if err != nil {
		return domain.ReleaseVersion{}, j.fail(err)
	}

	if err := j.collect(ctx, version, bundles); err != nil {
		return domain.ReleaseVersion{}, j.fail(err)
	}

	j.logger.Info(fmt.Sprintf("%s: packaged %s", j.target, version))
	return version, nil
}

func (j *Job) provision(ctx context.Context) (*domain.ProvisionReceipt, error) {
	provisioner, err := j.provisioners.ForTarget(j.target, j.cfg)
	if err != nil {
		return nil, err
	}

	var receipt *domain.ProvisionReceipt
	err = j.step(ctx, fmt.Sprintf("provision %s", j.target), func(stepCtx context.Context) error {
		var stepErr error
		receipt, stepErr = provisioner.Provision(stepCtx, j.checkout)
		return stepErr
	})
	if err != nil {
		return nil, err
	}

	if j.state, err = domain.Transition(j.state, domain.JobProvisioned); err != nil {
		return nil, err
	}
	return receipt, nil
}

func (j *Job) freeze(ctx context.Context, version domain.ReleaseVersion) ([]domain.ArtifactBundle, error) {
	freezer, err := j.freezers.ForTarget(j.target, j.cfg)
	if err != nil {
		return nil, err
	}

	var bundles []domain.ArtifactBundle
	err = j.step(ctx, fmt.Sprintf("freeze %s", j.target), func(stepCtx context.Context) error {
		var stepErr error
		bundles, stepErr = freezer.Freeze(stepCtx, j.checkout, version)
		return stepErr
	})
	if err != nil {
		return nil, err
	}

	if j.state, err = domain.Transition(j.state, domain.JobFrozen); err != nil {
		return nil, err
	}
	return bundles, nil
}

func (j *Job) collect(ctx context.Context, version domain.ReleaseVersion, bundles []domain.ArtifactBundle) error {
	err := j.step(ctx, fmt.Sprintf("collect %s", j.target), func(stepCtx context.Context) error {
		return j.collector.Collect(stepCtx, j.target, version, bundles)
	})
	if err != nil {
		return err
	}

	j.state, err = domain.Transition(j.state, domain.JobPackaged)
	return err
}

// step records one pipeline phase as a telemetry vertex.
func (j *Job) step(ctx context.Context, name string, fn func(context.Context) error) error {
	stepCtx, vtx := j.telemetry.Record(ctx, name)
	err := fn(stepCtx)
	vtx.Complete(err)
	return err
}

// fail moves the job into its terminal failure state and discards any
// partial platform output.
func (j *Job) fail(err error) error {
	j.state, _ = domain.Transition(j.state, domain.JobFailed)

	if derr := j.collector.Discard(j.target); derr != nil {
		j.logger.Warn(fmt.Sprintf("%s: discarding partial output: %v", j.target, derr))
	}

	wrapped := zerr.Wrap(err, "platform pipeline failed")
	j.logger.Error(wrapped)
	return zerr.With(wrapped, "target", j.target.String())
}
