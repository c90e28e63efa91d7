package provision

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/shipwright/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FlatpakProvisioner validates the declarative Flatpak manifest. The external
// builder resolves the runtime itself; provisioning only ensures the manifest
// exists, parses, and names the expected application ID and a runtime.
type FlatpakProvisioner struct {
	target       domain.Target
	manifestPath string
	appID        string
}

// flatpakManifest is the subset of the manifest the provisioner inspects.
type flatpakManifest struct {
	AppID   string `yaml:"app-id"`
	Runtime string `yaml:"runtime"`
	SDK     string `yaml:"sdk"`
}

// Provision checks the manifest.
func (p *FlatpakProvisioner) Provision(ctx context.Context, checkout string) (*domain.ProvisionReceipt, error) {
	path := filepath.Join(checkout, p.manifestPath)

	data, err := os.ReadFile(path) //nolint:gosec // path comes from validated config
	if err != nil {
		failed := fmt.Errorf("%w: %w", domain.ErrProvisioningFailed, err)
		return nil, zerr.With(failed, "manifest", path)
	}

	var manifest flatpakManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		failed := fmt.Errorf("%w: %w", domain.ErrProvisioningFailed, err)
		return nil, zerr.With(failed, "manifest", path)
	}

	if manifest.AppID != p.appID {
		failed := zerr.With(domain.ErrProvisioningFailed, "manifest_app_id", manifest.AppID)
		return nil, zerr.With(failed, "expected_app_id", p.appID)
	}
	if manifest.Runtime == "" {
		failed := zerr.With(domain.ErrProvisioningFailed, "manifest", path)
		return nil, zerr.With(failed, "reason", "manifest names no runtime")
	}

	return &domain.ProvisionReceipt{
		Target:     p.target,
		GTK:        p.target.GTK,
		Libadwaita: p.target.Libadwaita,
		Packages:   domain.DependencySet{manifest.Runtime: ""},
	}, nil
}
