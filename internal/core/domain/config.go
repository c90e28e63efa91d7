package domain

// ReleaseConfig is the validated pipeline configuration loaded from
// release.yaml at the checkout root. It is passed explicitly into every
// pipeline invocation; there is no process-wide mutable configuration.
type ReleaseConfig struct {
	// AppName is the upstream project name used in artifact filenames.
	AppName string
	// AppID is the reverse-DNS application ID (Flatpak bundle ID).
	AppID string

	// SdistCmd builds the source distribution consumed by the Debian recipe.
	SdistCmd []string
	// DebianControl is the path of the Debian package-metadata manifest.
	DebianControl string
	// FlatpakManifest is the path of the declarative Flatpak manifest.
	FlatpakManifest string
	// WindowsFreezeCmd freezes the application tree on Windows.
	WindowsFreezeCmd []string
	// WindowsExtraDepsCmd installs runtime extras the native package manager
	// does not cover (fonts, codecs).
	WindowsExtraDepsCmd []string
	// MacDepsCmd is the single macOS dependency-installation script.
	MacDepsCmd []string
	// MacFreezeCmd freezes the application bundle and wraps it into a dmg.
	MacFreezeCmd []string

	// OutputDir is the artifact root the archiving collaborator consumes.
	OutputDir string

	// Signed enables package signing where the platform toolchain supports
	// it. It is set from the command line, never from the config file;
	// unsigned is the default for CI builds.
	Signed bool
}
