// Package collect normalizes freeze output into the per-platform artifact
// directory tree the archiving collaborator consumes.
package collect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/shipwright/internal/core/domain"
	"go.trai.ch/shipwright/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ManifestFilename is the artifact manifest written next to the collected
// artifacts in each platform directory.
const ManifestFilename = "artifacts.yaml"

// Factory implements ports.CollectorFactory.
type Factory struct {
	logger ports.Logger
}

// NewFactory creates a new Factory.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger}
}

// ForOutput returns a collector writing under the given artifact root.
func (f *Factory) ForOutput(dir string) ports.Collector {
	return &DirCollector{root: dir, logger: f.logger}
}

// DirCollector copies artifact bundles into <root>/<platform>/ and writes a
// checksum manifest. Symlinks are dereferenced during the copy so the
// exported tree is self-contained; freeze scripts on macOS in particular
// leave framework symlinks behind.
type DirCollector struct {
	root   string
	logger ports.Logger
}

type manifestEntry struct {
	Name  string `yaml:"name"`
	Kind  string `yaml:"kind"`
	Size  int64  `yaml:"size"`
	XXH64 string `yaml:"xxh64,omitempty"`
}

type manifestFile struct {
	Version   string          `yaml:"version"`
	Target    string          `yaml:"target"`
	Artifacts []manifestEntry `yaml:"artifacts"`
}

// Collect copies the bundles into the target's platform directory.
func (c *DirCollector) Collect(ctx context.Context, target domain.Target, version domain.ReleaseVersion, bundles []domain.ArtifactBundle) error {
	destDir := filepath.Join(c.root, target.Dir())
	if err := os.MkdirAll(destDir, 0o750); err != nil {
		return zerr.Wrap(err, "creating artifact directory")
	}

	manifest := manifestFile{
		Version: version.String(),
		Target:  target.String(),
	}

	for _, bundle := range bundles {
		if err := ctx.Err(); err != nil {
			return err
		}

		info, err := os.Stat(bundle.Path)
		if errors.Is(err, fs.ErrNotExist) {
			if bundle.Optional {
				continue
			}
			missing := zerr.With(domain.ErrArtifactMissing, "path", bundle.Path)
			return zerr.With(missing, "kind", string(bundle.Kind))
		}
		if err != nil {
			return zerr.Wrap(err, domain.ErrArtifactMissing.Error())
		}

		name := filepath.Base(bundle.Path)
		entry := manifestEntry{Name: name, Kind: string(bundle.Kind)}

		if bundle.Dir || info.IsDir() {
			size, files, err := copyTree(bundle.Path, filepath.Join(destDir, name))
			if err != nil {
				return zerr.With(zerr.Wrap(err, "copying artifact tree"), "path", bundle.Path)
			}
			// A tree without a single file means the freeze produced
			// nothing and still reported success.
			if files == 0 {
				missing := zerr.With(domain.ErrArtifactMissing, "path", bundle.Path)
				return zerr.With(missing, "reason", "artifact tree is empty")
			}
			entry.Size = size
		} else {
			if info.Size() == 0 {
				missing := zerr.With(domain.ErrArtifactMissing, "path", bundle.Path)
				return zerr.With(missing, "reason", "artifact is empty")
			}
			sum, err := copyFileHashed(bundle.Path, filepath.Join(destDir, name), info.Mode().Perm())
			if err != nil {
				return zerr.With(zerr.Wrap(err, "copying artifact"), "path", bundle.Path)
			}
			entry.Size = info.Size()
			entry.XXH64 = sum
		}

		manifest.Artifacts = append(manifest.Artifacts, entry)
		c.logger.Info(fmt.Sprintf("collected %s (%s)", name, bundle.Kind))
	}

	data, err := yaml.Marshal(&manifest)
	if err != nil {
		return zerr.Wrap(err, "encoding artifact manifest")
	}
	if err := os.WriteFile(filepath.Join(destDir, ManifestFilename), data, 0o600); err != nil {
		return zerr.Wrap(err, "writing artifact manifest")
	}
	return nil
}

// Discard removes the target's platform directory.
func (c *DirCollector) Discard(target domain.Target) error {
	if err := os.RemoveAll(filepath.Join(c.root, target.Dir())); err != nil {
		return zerr.Wrap(err, "discarding artifact directory")
	}
	return nil
}

// copyFileHashed copies src to dst with the given mode and returns the xxh64
// checksum of the copied bytes. Reading through the source path follows
// symlinks, so dst is always a regular file.
func copyFileHashed(src, dst string, mode fs.FileMode) (string, error) {
	in, err := os.Open(src) //nolint:gosec // paths derive from freeze recipes
	if err != nil {
		return "", err
	}
	defer in.Close() //nolint:errcheck // read-only file

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode) //nolint:gosec // within artifact root
	if err != nil {
		return "", err
	}

	hash := xxhash.New()
	if _, err := io.Copy(io.MultiWriter(out, hash), in); err != nil {
		_ = out.Close()
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", hash.Sum64()), nil
}

// copyTree copies the directory at src to dst, dereferencing symlinks, and
// returns the total number of bytes and files copied.
func copyTree(src, dst string) (int64, int, error) {
	var total int64
	var files int

	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		targetPath := filepath.Join(dst, rel)

		// Stat follows symlinks, so linked files are copied as regular files.
		info, err := os.Stat(path)
		if err != nil {
			return err
		}

		// WalkDir does not descend into symlinked directories.
		if d.Type()&fs.ModeSymlink != 0 && info.IsDir() {
			n, f, err := copyTree(path, targetPath)
			total += n
			files += f
			return err
		}

		if info.IsDir() {
			return os.MkdirAll(targetPath, 0o750)
		}

		if _, err := copyFileHashed(path, targetPath, info.Mode().Perm()); err != nil {
			return err
		}
		total += info.Size()
		files++
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return total, files, nil
}
