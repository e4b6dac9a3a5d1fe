// Package utils provides common utility functions used throughout the sqlbundle codebase.
//
// This package contains shared utilities that are used by multiple packages to avoid
// code duplication and ensure consistent behavior across the application.
//
// # Identifier Utilities (identifier.go)
//
// The identifier utilities provide consistent handling of SQL Server style
// identifiers, including bracket quoting for names used in generated
// deployment statements.
//
// # Script Building (scriptbuilder.go)
//
// ScriptBuilder offers value-returning, line-oriented composition of script
// text with explicit line terminators, so generated scripts are assembled
// from pure functions rather than shared mutable state.
//
// # Name Validation (validation.go)
//
// Database names flow verbatim into generated statements, so validation
// rejects names containing quoting or bracket characters before they reach
// script assembly.
package utils
