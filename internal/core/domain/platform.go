// Package domain contains the core types for the release pipeline.
package domain

import (
	"fmt"
	"strconv"

	"go.trai.ch/zerr"
)

// Platform identifies one distribution channel.
type Platform string

const (
	// PlatformDebian builds a Debian source and binary package.
	PlatformDebian Platform = "debian"
	// PlatformFlatpak builds a single-file Flatpak bundle.
	PlatformFlatpak Platform = "flatpak"
	// PlatformWindowsX64 freezes a 64-bit Windows installer.
	PlatformWindowsX64 Platform = "windows-x86_64"
	// PlatformWindowsX86 freezes a 32-bit Windows installer.
	PlatformWindowsX86 Platform = "windows-i686"
	// PlatformMacOS freezes a macOS disk image.
	PlatformMacOS Platform = "macos"
)

// GTKVersion is the major version of the GUI toolkit a target links against.
type GTKVersion int

const (
	// GTK3 selects the GTK 3 bindings.
	GTK3 GTKVersion = 3
	// GTK4 selects the GTK 4 bindings.
	GTK4 GTKVersion = 4
)

// EnvString renders the major version for the freeze-script environment.
func (v GTKVersion) EnvString() string {
	return strconv.Itoa(int(v))
}

// Target is one entry of the build matrix: a platform plus the toolkit
// configuration it is provisioned and frozen against. Targets are constructed
// at pipeline-definition time and never mutated.
type Target struct {
	Platform   Platform
	Arch       string
	GTK        GTKVersion
	Libadwaita bool
}

// DefaultMatrix returns the static build matrix. Every entry maps to exactly
// one provisioner configuration and one freeze recipe.
func DefaultMatrix() []Target {
	return []Target{
		{Platform: PlatformDebian, Arch: "amd64", GTK: GTK3},
		{Platform: PlatformFlatpak, Arch: "x86_64", GTK: GTK4, Libadwaita: true},
		{Platform: PlatformWindowsX64, Arch: "x86_64", GTK: GTK3},
		{Platform: PlatformWindowsX86, Arch: "i686", GTK: GTK3},
		{Platform: PlatformMacOS, Arch: "x86_64", GTK: GTK3},
	}
}

// ParsePlatform converts a user-supplied name to a Platform.
func ParsePlatform(s string) (Platform, error) {
	switch Platform(s) {
	case PlatformDebian, PlatformFlatpak, PlatformWindowsX64, PlatformWindowsX86, PlatformMacOS:
		return Platform(s), nil
	default:
		return "", zerr.With(ErrUnknownPlatform, "platform", s)
	}
}

// Validate checks the internal consistency of the target. Libadwaita styling
// only exists for GTK 4, and a mismatch must fail before provisioning starts.
func (t Target) Validate() error {
	if _, err := ParsePlatform(string(t.Platform)); err != nil {
		return err
	}

	if t.GTK != GTK3 && t.GTK != GTK4 {
		return zerr.With(ErrInvalidToolkit, "gtk_version", int(t.GTK))
	}

	if t.Libadwaita && t.GTK != GTK4 {
		mismatch := zerr.With(ErrInvalidToolkit, "gtk_version", int(t.GTK))
		return zerr.With(mismatch, "reason", "libadwaita requires GTK 4")
	}

	if t.IsWindows() && t.Arch != "x86_64" && t.Arch != "i686" {
		return zerr.With(ErrInvalidToolkit, "arch", t.Arch)
	}

	return nil
}

// IsWindows reports whether the target is one of the Windows matrix entries.
func (t Target) IsWindows() bool {
	return t.Platform == PlatformWindowsX64 || t.Platform == PlatformWindowsX86
}

// MSYSPrefix returns the MSYS package name prefix for the target architecture.
// Only meaningful for Windows targets.
func (t Target) MSYSPrefix() string {
	return "mingw-w64-" + t.Arch + "-"
}

// Dir returns the per-platform output directory name under the artifact root.
// The archiving collaborator locates artifacts from this name alone.
func (t Target) Dir() string {
	return string(t.Platform)
}

// String renders the target for logs and error metadata.
func (t Target) String() string {
	s := fmt.Sprintf("%s/%s gtk%d", t.Platform, t.Arch, t.GTK)
	if t.Libadwaita {
		s += "+libadwaita"
	}
	return s
}
