// Package version provides parsing and ordering of migration file versions.
//
// Migration files are named <major>.<minor>.<patch>-<label>.sql, for example
// 1.2.3-AddUsers.sql. The three numeric components form the version key that
// determines migration application order; the full filename stem (1.2.3-AddUsers)
// is the migration identifier recorded in the generated script's history table.
//
// Versions are compared component-wise as integers, never as strings, so that
// 1.10.0 sorts after 1.9.0. The components are deliberately kept as a triple
// rather than collapsed into a single number, since any linear combination of
// differently-scaled components silently corrupts ordering once a component
// outgrows its allotted range.
package version

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// filenamePattern matches <major>.<minor>.<patch>-<label>.sql where the three
// version components are digits and the label is any non-empty text without
// path separators.
var filenamePattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)-([^/\\]+)\.sql$`)

type (
	// Version is the ordered (major, minor, patch) triple parsed from a
	// migration filename. It is comparable and usable as a map key, which
	// the loader relies on for duplicate detection.
	Version struct {
		Major int
		Minor int
		Patch int
	}
)

// Parse extracts the version triple and migration identifier from a migration
// filename. The identifier is the filename stem before the .sql extension.
//
// Example:
//
//	v, name, err := version.Parse("1.2.3-AddUsers.sql")
//	// v = Version{1, 2, 3}, name = "1.2.3-AddUsers"
//
// Returns an error if the filename does not match the required
// <major>.<minor>.<patch>-<label>.sql pattern.
func Parse(filename string) (Version, string, error) {
	m := filenamePattern.FindStringSubmatch(filename)
	if m == nil {
		return Version{}, "", errors.Errorf("invalid migration filename: %s (expected <major>.<minor>.<patch>-<label>.sql)", filename)
	}

	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Version{}, "", errors.Wrapf(err, "invalid major version in: %s", filename)
	}

	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return Version{}, "", errors.Wrapf(err, "invalid minor version in: %s", filename)
	}

	patch, err := strconv.Atoi(m[3])
	if err != nil {
		return Version{}, "", errors.Wrapf(err, "invalid patch version in: %s", filename)
	}

	v := Version{Major: major, Minor: minor, Patch: patch}
	return v, fmt.Sprintf("%s.%s.%s-%s", m[1], m[2], m[3], m[4]), nil
}

// Compare returns -1, 0, or 1 depending on whether v sorts before, equal to,
// or after other. Components are compared numerically, major first.
func (v Version) Compare(other Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	return compareInt(v.Patch, other.Patch)
}

// String returns the dotted form of the version, e.g. "1.2.3".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
