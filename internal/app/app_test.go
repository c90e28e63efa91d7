package app_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shipwright/internal/adapters/telemetry"
	"go.trai.ch/shipwright/internal/app"
	"go.trai.ch/shipwright/internal/core/domain"
	"go.trai.ch/shipwright/internal/core/ports"
	"go.trai.ch/shipwright/internal/core/ports/mocks"
	"go.trai.ch/shipwright/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

func TestSelectTargets_DefaultMatrix(t *testing.T) {
	targets, err := app.SelectTargets(nil, 0, false)
	require.NoError(t, err)
	assert.Len(t, targets, len(domain.DefaultMatrix()))
}

func TestSelectTargets_FiltersByPlatform(t *testing.T) {
	targets, err := app.SelectTargets([]string{"debian", "macos"}, 0, false)
	require.NoError(t, err)
	require.Len(t, targets, 2)
	assert.Equal(t, domain.PlatformDebian, targets[0].Platform)
	assert.Equal(t, domain.PlatformMacOS, targets[1].Platform)
}

func TestSelectTargets_UnknownPlatform(t *testing.T) {
	_, err := app.SelectTargets([]string{"haiku"}, 0, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownPlatform)
}

func TestSelectTargets_GTKOverride(t *testing.T) {
	targets, err := app.SelectTargets([]string{"debian"}, 4, false)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, domain.GTK4, targets[0].GTK)
}

func TestSelectTargets_LibadwaitaRequiresGTK4(t *testing.T) {
	// The Debian matrix entry defaults to GTK 3; forcing libadwaita without
	// also forcing GTK 4 is inconsistent.
	_, err := app.SelectTargets([]string{"debian"}, 0, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidToolkit)

	targets, err := app.SelectTargets([]string{"debian"}, 4, true)
	require.NoError(t, err)
	assert.True(t, targets[0].Libadwaita)
}

func TestAppRun_ReleasesSelectedPlatform(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockResolver := mocks.NewMockVersionResolver(ctrl)
	mockProvisioners := mocks.NewMockProvisionerFactory(ctrl)
	mockFreezers := mocks.NewMockFreezerFactory(ctrl)
	mockCollectors := mocks.NewMockCollectorFactory(ctrl)
	mockCollector := mocks.NewMockCollector(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	checkout := t.TempDir()
	cfg := &domain.ReleaseConfig{AppName: "harmonine", AppID: "org.harmonine.Harmonine", OutputDir: "build/artifacts"}
	v, err := domain.ParseDescribe("v3.2.1")
	require.NoError(t, err)

	debian := domain.Target{Platform: domain.PlatformDebian, Arch: "amd64", GTK: domain.GTK3}
	bundles := []domain.ArtifactBundle{{Kind: domain.ArtifactBinaryPackage, Path: "/tmp/a.deb"}}

	mockLoader.EXPECT().Load(checkout).Return(cfg, nil)
	mockCollectors.EXPECT().ForOutput(gomock.Any()).Return(mockCollector)
	mockResolver.EXPECT().Resolve(gomock.Any(), checkout).Return(v, nil)
	mockProvisioners.EXPECT().ForTarget(debian, gomock.Any()).DoAndReturn(
		func(target domain.Target, _ *domain.ReleaseConfig) (ports.Provisioner, error) {
			p := mocks.NewMockProvisioner(ctrl)
			p.EXPECT().Provision(gomock.Any(), checkout).Return(&domain.ProvisionReceipt{
				Target: target, GTK: target.GTK, Libadwaita: target.Libadwaita,
			}, nil)
			return p, nil
		})
	mockFreezers.EXPECT().ForTarget(debian, gomock.Any()).DoAndReturn(
		func(domain.Target, *domain.ReleaseConfig) (ports.Freezer, error) {
			f := mocks.NewMockFreezer(ctrl)
			f.EXPECT().Freeze(gomock.Any(), checkout, v).Return(bundles, nil)
			return f, nil
		})
	mockCollector.EXPECT().Collect(gomock.Any(), debian, v, bundles).Return(nil)

	runner := pipeline.NewRunner(mockResolver, mockProvisioners, mockFreezers, mockCollectors, telemetry.NewNoOp(), mockLogger)
	a := app.New(mockLoader, runner, mockLogger)

	err = a.Run(context.Background(), app.Options{
		Checkout:  checkout,
		Platforms: []string{"debian"},
	})
	require.NoError(t, err)
}

func TestAppRun_ConfigErrorIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockLoader.EXPECT().Load(gomock.Any()).Return(nil, os.ErrNotExist)

	runner := pipeline.NewRunner(
		mocks.NewMockVersionResolver(ctrl),
		mocks.NewMockProvisionerFactory(ctrl),
		mocks.NewMockFreezerFactory(ctrl),
		mocks.NewMockCollectorFactory(ctrl),
		telemetry.NewNoOp(),
		mockLogger,
	)
	a := app.New(mockLoader, runner, mockLogger)

	err := a.Run(context.Background(), app.Options{Checkout: t.TempDir()})
	require.Error(t, err)
}
