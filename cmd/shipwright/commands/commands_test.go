package commands_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shipwright/cmd/shipwright/commands"
	"go.trai.ch/shipwright/internal/adapters/telemetry"
	"go.trai.ch/shipwright/internal/app"
	"go.trai.ch/shipwright/internal/core/domain"
	"go.trai.ch/shipwright/internal/core/ports"
	"go.trai.ch/shipwright/internal/core/ports/mocks"
	"go.trai.ch/shipwright/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

type cliFixture struct {
	cli          *commands.CLI
	out          *bytes.Buffer
	loader       *mocks.MockConfigLoader
	resolver     *mocks.MockVersionResolver
	provisioners *mocks.MockProvisionerFactory
	freezers     *mocks.MockFreezerFactory
	collectors   *mocks.MockCollectorFactory
	collector    *mocks.MockCollector
}

func newCLIFixture(ctrl *gomock.Controller) *cliFixture {
	f := &cliFixture{
		out:          &bytes.Buffer{},
		loader:       mocks.NewMockConfigLoader(ctrl),
		resolver:     mocks.NewMockVersionResolver(ctrl),
		provisioners: mocks.NewMockProvisionerFactory(ctrl),
		freezers:     mocks.NewMockFreezerFactory(ctrl),
		collectors:   mocks.NewMockCollectorFactory(ctrl),
		collector:    mocks.NewMockCollector(ctrl),
	}

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	runner := pipeline.NewRunner(f.resolver, f.provisioners, f.freezers, f.collectors, telemetry.NewNoOp(), logger)
	f.cli = commands.New(app.New(f.loader, runner, logger))
	f.cli.SetOutput(f.out)
	return f
}

func TestPlatforms_PrintsMatrix(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCLIFixture(ctrl)
	f.cli.SetArgs([]string{"platforms"})
	require.NoError(t, f.cli.Execute(context.Background()))

	lines := strings.Split(strings.TrimSpace(f.out.String()), "\n")
	assert.Len(t, lines, len(domain.DefaultMatrix()))
	assert.Contains(t, f.out.String(), "debian/amd64 gtk3")
	assert.Contains(t, f.out.String(), "flatpak/x86_64 gtk4+libadwaita")
}

func TestVersion_PrintsBuildVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCLIFixture(ctrl)
	f.cli.SetArgs([]string{"version"})
	require.NoError(t, f.cli.Execute(context.Background()))
	assert.Equal(t, "dev", strings.TrimSpace(f.out.String()))
}

func TestRelease_UnknownPlatform(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCLIFixture(ctrl)
	f.loader.EXPECT().Load(gomock.Any()).Return(&domain.ReleaseConfig{
		AppName: "harmonine", AppID: "org.harmonine.Harmonine", OutputDir: "build/artifacts",
	}, nil)

	f.cli.SetArgs([]string{"release", "beos"})
	err := f.cli.Execute(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownPlatform)
}

func TestRelease_SinglePlatform(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCLIFixture(ctrl)
	cfg := &domain.ReleaseConfig{AppName: "harmonine", AppID: "org.harmonine.Harmonine", OutputDir: "build/artifacts"}
	v, err := domain.ParseDescribe("v3.2.1")
	require.NoError(t, err)

	debian := domain.Target{Platform: domain.PlatformDebian, Arch: "amd64", GTK: domain.GTK3}
	bundles := []domain.ArtifactBundle{{Kind: domain.ArtifactBinaryPackage, Path: "/tmp/a.deb"}}

	f.loader.EXPECT().Load(".").Return(cfg, nil)
	f.collectors.EXPECT().ForOutput(gomock.Any()).Return(f.collector)
	f.resolver.EXPECT().Resolve(gomock.Any(), ".").Return(v, nil)
	f.provisioners.EXPECT().ForTarget(debian, gomock.Any()).DoAndReturn(
		func(target domain.Target, _ *domain.ReleaseConfig) (ports.Provisioner, error) {
			p := mocks.NewMockProvisioner(ctrl)
			p.EXPECT().Provision(gomock.Any(), ".").Return(&domain.ProvisionReceipt{
				Target: target, GTK: target.GTK, Libadwaita: target.Libadwaita,
			}, nil)
			return p, nil
		})
	f.freezers.EXPECT().ForTarget(debian, gomock.Any()).DoAndReturn(
		func(domain.Target, *domain.ReleaseConfig) (ports.Freezer, error) {
			fz := mocks.NewMockFreezer(ctrl)
			fz.EXPECT().Freeze(gomock.Any(), ".", v).Return(bundles, nil)
			return fz, nil
		})
	f.collector.EXPECT().Collect(gomock.Any(), debian, v, bundles).Return(nil)

	f.cli.SetArgs([]string{"release", "debian"})
	require.NoError(t, f.cli.Execute(context.Background()))
}

func TestRelease_CheckoutFlag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newCLIFixture(ctrl)
	checkout := t.TempDir()
	cfg := &domain.ReleaseConfig{AppName: "harmonine", AppID: "org.harmonine.Harmonine", OutputDir: "build/artifacts"}
	v, err := domain.ParseDescribe("v3.2.1")
	require.NoError(t, err)

	debian := domain.Target{Platform: domain.PlatformDebian, Arch: "amd64", GTK: domain.GTK3}
	bundles := []domain.ArtifactBundle{{Kind: domain.ArtifactBinaryPackage, Path: "/tmp/a.deb"}}

	f.loader.EXPECT().Load(checkout).Return(cfg, nil)
	f.collectors.EXPECT().ForOutput(filepath.Join(checkout, "build/artifacts")).Return(f.collector)
	f.resolver.EXPECT().Resolve(gomock.Any(), checkout).Return(v, nil)
	f.provisioners.EXPECT().ForTarget(debian, gomock.Any()).DoAndReturn(
		func(target domain.Target, _ *domain.ReleaseConfig) (ports.Provisioner, error) {
			p := mocks.NewMockProvisioner(ctrl)
			p.EXPECT().Provision(gomock.Any(), checkout).Return(&domain.ProvisionReceipt{
				Target: target, GTK: target.GTK, Libadwaita: target.Libadwaita,
			}, nil)
			return p, nil
		})
	f.freezers.EXPECT().ForTarget(debian, gomock.Any()).DoAndReturn(
		func(domain.Target, *domain.ReleaseConfig) (ports.Freezer, error) {
			fz := mocks.NewMockFreezer(ctrl)
			fz.EXPECT().Freeze(gomock.Any(), checkout, v).Return(bundles, nil)
			return fz, nil
		})
	f.collector.EXPECT().Collect(gomock.Any(), debian, v, bundles).Return(nil)

	f.cli.SetArgs([]string{"release", "--checkout", checkout, "debian"})
	require.NoError(t, f.cli.Execute(context.Background()))
}
