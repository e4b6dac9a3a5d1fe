package utils

import (
	"strings"

	"github.com/pkg/errors"
)

// forbiddenNameChars are characters that would break out of the quoting used
// in generated statements. Database names are emitted verbatim, so they are
// rejected up front rather than escaped.
const forbiddenNameChars = "'\"`[]\\/"

// ValidateDatabaseName checks that a database name is safe to embed in
// generated deployment statements. Names are used verbatim both as bracketed
// identifiers (CREATE DATABASE [name]) and as string literals in existence
// checks, so anything containing quote, bracket, or path separator
// characters is rejected.
//
// Examples:
//   - "Sales" -> nil
//   - "Sales_2024" -> nil
//   - "Sa'les" -> error
//   - "" -> error
func ValidateDatabaseName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("database name must not be empty")
	}

	if strings.ContainsAny(name, forbiddenNameChars) {
		return errors.Errorf("database name %q contains forbidden characters (any of %s)", name, forbiddenNameChars)
	}

	return nil
}
