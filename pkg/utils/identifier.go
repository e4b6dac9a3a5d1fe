package utils

import "strings"

// BracketIdentifier wraps an identifier in square brackets, the SQL Server
// quoting convention used throughout the generated deployment scripts.
//
// Examples:
//   - "Sales" -> "[Sales]"
//   - "[Sales]" -> "[Sales]" (already bracketed, not double-bracketed)
//   - "" -> ""
func BracketIdentifier(name string) string {
	if name == "" {
		return ""
	}

	if IsBracketed(name) {
		return name
	}

	return "[" + name + "]"
}

// IsBracketed checks if a string is already wrapped in square brackets.
//
// Examples:
//   - "[Sales]" -> true
//   - "Sales" -> false
//   - "" -> false
func IsBracketed(s string) bool {
	return len(s) >= 2 && s[0] == '[' && s[len(s)-1] == ']' &&
		!strings.ContainsAny(s[1:len(s)-1], "[]")
}

// StripBrackets removes square brackets from an identifier if present.
//
// Examples:
//   - "[Sales]" -> "Sales"
//   - "Sales" -> "Sales"
func StripBrackets(s string) string {
	if IsBracketed(s) {
		return s[1 : len(s)-1]
	}
	return s
}
