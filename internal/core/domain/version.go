package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// describeRe matches `git describe` output for annotated release tags:
// v3.2.1 exactly on the tag, v3.2.1-4-gabc1234 when four commits past it.
var describeRe = regexp.MustCompile(`^v(\d+\.\d+\.\d+)(?:-(\d+)-g([0-9a-f]+))?$`)

// ReleaseVersion is the canonical version of one release build, derived once
// per pipeline from the full repository history and immutable afterwards.
// Builds of the same lineage compare monotonically: successive commits past a
// tag increase the dev distance.
type ReleaseVersion struct {
	tag      *semver.Version
	distance int
	commit   string
}

// ParseDescribe converts `git describe` output into a ReleaseVersion.
func ParseDescribe(out string) (ReleaseVersion, error) {
	m := describeRe.FindStringSubmatch(strings.TrimSpace(out))
	if m == nil {
		return ReleaseVersion{}, zerr.With(ErrVersionUnresolved, "describe", strings.TrimSpace(out))
	}

	tag, err := semver.NewVersion(m[1])
	if err != nil {
		return ReleaseVersion{}, zerr.With(zerr.Wrap(err, ErrVersionUnresolved.Error()), "tag", m[1])
	}

	v := ReleaseVersion{tag: tag}
	if m[2] != "" {
		distance, err := strconv.Atoi(m[2])
		if err != nil {
			return ReleaseVersion{}, zerr.With(ErrVersionUnresolved, "distance", m[2])
		}
		v.distance = distance
		v.commit = m[3]
	}

	return v, nil
}

// IsRelease reports whether the checkout sits exactly on the release tag.
func (v ReleaseVersion) IsRelease() bool {
	return v.distance == 0
}

// String renders the version threaded into artifact filenames and metadata.
// Exactly on tag v3.2.1 this is "3.2.1"; four commits past it at abc1234 it is
// "3.2.1-dev.4+gabc1234".
func (v ReleaseVersion) String() string {
	if v.tag == nil {
		return ""
	}
	if v.distance == 0 {
		return v.tag.String()
	}
	return fmt.Sprintf("%s-dev.%d+g%s", v.tag, v.distance, v.commit)
}

// Compare orders two versions of the same lineage. Dev builds with larger
// commit distance compare higher; build metadata is ignored, per semver.
func (v ReleaseVersion) Compare(o ReleaseVersion) int {
	if c := v.tag.Compare(o.tag); c != 0 {
		return c
	}
	switch {
	case v.distance < o.distance:
		return -1
	case v.distance > o.distance:
		return 1
	default:
		return 0
	}
}

// Equal reports byte-for-byte identity of the rendered version. Sibling
// platform pipelines built from the same commit must satisfy this.
func (v ReleaseVersion) Equal(o ReleaseVersion) bool {
	return v.String() == o.String()
}
