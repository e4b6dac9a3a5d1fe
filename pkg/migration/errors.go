package migration

import (
	"fmt"
	"strings"

	"github.com/sqlbundle/sqlbundle/pkg/version"
)

type (
	// InvalidFilenameError indicates a file in a migration directory whose
	// name does not match the <major>.<minor>.<patch>-<label>.sql pattern.
	// A malformed migration set must never produce a partially-correct
	// deployment script, so this is fatal for the enclosing database.
	InvalidFilenameError struct {
		// Filename is the offending file name, relative to the migration directory.
		Filename string
	}

	// DuplicateVersionError indicates that two or more files in the same
	// migration directory resolve to the same version triple. Ordering
	// between them would be undefined, so this is fatal for the enclosing
	// database rather than a warning.
	DuplicateVersionError struct {
		// Version is the version triple declared by more than one file.
		Version version.Version

		// Files are the names of the conflicting files, in the order they
		// were encountered.
		Files []string
	}
)

func (e *InvalidFilenameError) Error() string {
	return fmt.Sprintf("invalid migration filename: %s (expected <major>.<minor>.<patch>-<label>.sql)", e.Filename)
}

func (e *DuplicateVersionError) Error() string {
	return fmt.Sprintf("duplicate migration version %s: %s", e.Version, strings.Join(e.Files, ", "))
}
