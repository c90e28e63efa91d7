package domain

// ArtifactKind classifies one freeze output.
type ArtifactKind string

const (
	// ArtifactSourcePackage is a platform source package (e.g. Debian .dsc set).
	ArtifactSourcePackage ArtifactKind = "source-package"
	// ArtifactBinaryPackage is a platform binary package (e.g. .deb).
	ArtifactBinaryPackage ArtifactKind = "binary-package"
	// ArtifactBundleFile is a single-file containerized bundle (.flatpak).
	ArtifactBundleFile ArtifactKind = "bundle"
	// ArtifactInstaller is an installer package (.msi).
	ArtifactInstaller ArtifactKind = "installer"
	// ArtifactPackageDir is a raw frozen directory tree.
	ArtifactPackageDir ArtifactKind = "package-dir"
	// ArtifactDiskImage is a disk image (.dmg).
	ArtifactDiskImage ArtifactKind = "disk-image"
)

// ArtifactBundle is one freeze output: a file or directory at a path that is
// deterministic given the target and release version, so the collector can
// locate it without scanning.
type ArtifactBundle struct {
	Kind ArtifactKind
	// Path is the freeze output location, absolute or relative to the checkout.
	Path string
	// Dir marks Path as a directory tree rather than a single file.
	Dir bool
	// Optional marks outputs that a recipe may legitimately omit (e.g. the
	// .changes file of an unsigned Debian build on older toolchains).
	Optional bool
}
