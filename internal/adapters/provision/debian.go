package provision

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/shipwright/internal/core/domain"
	"go.trai.ch/shipwright/internal/core/ports"
	"go.trai.ch/zerr"
)

// DebianProvisioner implements the declarative strategy. Dependencies are
// declared in the package control manifest and resolved by the platform's own
// tooling; the provisioner only verifies that the manifest is syntactically
// valid and semantically consistent with the selected GTK major version. The
// manifest may offer alternative toolkit bindings joined by "|", so validation
// accepts a group when either alternative satisfies it.
type DebianProvisioner struct {
	target      domain.Target
	controlPath string
	logger      ports.Logger
}

// Provision validates the control manifest against the target toolkit and
// returns the dependency set the platform resolver will satisfy.
func (p *DebianProvisioner) Provision(ctx context.Context, checkout string) (*domain.ProvisionReceipt, error) {
	path := filepath.Join(checkout, p.controlPath)

	data, err := os.ReadFile(path) //nolint:gosec // path comes from validated config
	if err != nil {
		failed := fmt.Errorf("%w: %w", domain.ErrProvisioningFailed, err)
		return nil, zerr.With(failed, "control", path)
	}

	groups, err := parseControlDependencies(string(data))
	if err != nil {
		return nil, zerr.With(err, "control", path)
	}

	deps := make(domain.DependencySet)
	hasAdwaita := false

	for _, group := range groups {
		alt, ok := group.satisfiedBy(p.target.GTK)
		if !ok {
			failed := zerr.With(domain.ErrProvisioningFailed, "dependency_group", group.String())
			return nil, zerr.With(failed, "gtk_version", int(p.target.GTK))
		}
		deps[alt.name] = alt.constraint
		if strings.Contains(alt.name, "libadwaita") {
			hasAdwaita = true
		}
	}

	p.logger.Info(fmt.Sprintf("validated %d dependency groups against gtk%d", len(groups), p.target.GTK))

	return &domain.ProvisionReceipt{
		Target:     p.target,
		GTK:        p.target.GTK,
		Libadwaita: p.target.Libadwaita && hasAdwaita,
		Packages:   deps,
	}, nil
}

// dependency is one alternative inside a dependency group.
type dependency struct {
	name       string
	constraint string
}

// gtkMajor extracts the GTK major version a binding package is tied to,
// or 0 when the package is toolkit-agnostic.
func (d dependency) gtkMajor() domain.GTKVersion {
	switch {
	case strings.Contains(d.name, "gtk-3") || strings.Contains(d.name, "gtk3"):
		return domain.GTK3
	case strings.Contains(d.name, "gtk-4") || strings.Contains(d.name, "gtk4"):
		return domain.GTK4
	default:
		return 0
	}
}

// dependencyGroup is a set of alternatives joined by "|"; any one satisfies it.
type dependencyGroup []dependency

func (g dependencyGroup) String() string {
	parts := make([]string, len(g))
	for i, d := range g {
		parts[i] = d.name
	}
	return strings.Join(parts, " | ")
}

// satisfiedBy returns the alternative the given toolkit version resolves to.
// A toolkit-matching alternative wins; otherwise the first toolkit-agnostic
// alternative does. A group whose alternatives all target the other GTK
// major version is unsatisfiable.
func (g dependencyGroup) satisfiedBy(gtk domain.GTKVersion) (dependency, bool) {
	for _, d := range g {
		if d.gtkMajor() == gtk {
			return d, true
		}
	}
	for _, d := range g {
		if d.gtkMajor() == 0 {
			return d, true
		}
	}
	return dependency{}, false
}

// parseControlDependencies extracts the dependency groups of the
// Build-Depends and Depends fields. Continuation lines are folded per the
// control-file syntax; substitution variables like ${misc:Depends} are
// ignored since the packaging tool expands them.
func parseControlDependencies(control string) ([]dependencyGroup, error) {
	fields := map[string]string{}

	var current string
	for _, line := range strings.Split(control, "\n") {
		if line == "" || strings.HasPrefix(line, "#") {
			current = ""
			continue
		}
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			if current != "" {
				fields[current] += " " + strings.TrimSpace(line)
			}
			continue
		}
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, zerr.With(zerr.New("malformed control line"), "line", line)
		}
		current = ""
		switch name {
		case "Build-Depends", "Depends":
			current = name
			fields[current] += separator(fields[current]) + strings.TrimSpace(value)
		}
	}

	var groups []dependencyGroup
	for _, value := range []string{fields["Build-Depends"], fields["Depends"]} {
		for _, entry := range strings.Split(value, ",") {
			entry = strings.TrimSpace(entry)
			if entry == "" || strings.HasPrefix(entry, "${") {
				continue
			}
			group, err := parseGroup(entry)
			if err != nil {
				return nil, err
			}
			groups = append(groups, group)
		}
	}

	return groups, nil
}

func separator(existing string) string {
	if existing == "" {
		return ""
	}
	return ", "
}

func parseGroup(entry string) (dependencyGroup, error) {
	var group dependencyGroup
	for _, alt := range strings.Split(entry, "|") {
		alt = strings.TrimSpace(alt)
		if alt == "" {
			return nil, zerr.With(zerr.New("empty dependency alternative"), "entry", entry)
		}

		name := alt
		constraint := ""
		if i := strings.IndexByte(alt, '('); i >= 0 {
			j := strings.IndexByte(alt, ')')
			if j < i {
				return nil, zerr.With(zerr.New("unbalanced version constraint"), "entry", entry)
			}
			name = strings.TrimSpace(alt[:i])
			constraint = strings.TrimSpace(alt[i+1 : j])
		}
		if name == "" {
			return nil, zerr.With(zerr.New("empty dependency name"), "entry", entry)
		}

		group = append(group, dependency{name: name, constraint: constraint})
	}
	return group, nil
}
