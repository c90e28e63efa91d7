package domain

import (
	"slices"
	"strings"
)

// DependencySet maps package names to version constraints for one target.
// An empty constraint means any version the platform resolver picks.
type DependencySet map[string]string

// Names returns the package names in sorted order.
func (d DependencySet) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// String renders the set for logs, one "name constraint" pair per entry.
func (d DependencySet) String() string {
	parts := make([]string, 0, len(d))
	for _, name := range d.Names() {
		if c := d[name]; c != "" {
			parts = append(parts, name+" "+c)
			continue
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, ", ")
}

// ProvisionReceipt records what a provisioner actually installed or validated.
// The pipeline checks it against the freeze target before any recipe runs, so
// a toolkit mismatch is caught at build time rather than at link time.
type ProvisionReceipt struct {
	Target     Target
	GTK        GTKVersion
	Libadwaita bool
	Packages   DependencySet
}

// MatchesToolkit reports whether the receipt satisfies the target's toolkit
// requirements.
func (r ProvisionReceipt) MatchesToolkit(t Target) bool {
	return r.GTK == t.GTK && r.Libadwaita == t.Libadwaita
}
