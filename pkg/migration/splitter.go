package migration

import "strings"

// SplitBatches divides raw migration SQL into batch fragments, splitting
// wherever a line equals the GO batch separator after trimming whitespace
// (case-insensitive). Separator lines themselves are dropped; every other
// line is preserved byte-for-byte, including blank lines and line terminators.
//
// The result always contains at least one fragment: input with no separator
// lines yields a single fragment equal to the whole input, and the fragment
// after the last separator is included even when empty. Callers that wrap
// fragments individually rely on this trailing fragment for consistent
// guard placement.
//
// Example:
//
//	migration.SplitBatches("A\nGO\nB\nGO\nC") // ["A\n", "B\n", "C"]
func SplitBatches(sql string) []string {
	var (
		batches []string
		current strings.Builder
	)

	rest := sql
	for {
		line, remainder, found := strings.Cut(rest, "\n")

		if isBatchSeparator(line) {
			batches = append(batches, current.String())
			current.Reset()
		} else {
			current.WriteString(line)
			if found {
				current.WriteString("\n")
			}
		}

		if !found {
			break
		}
		rest = remainder
	}

	return append(batches, current.String())
}

// isBatchSeparator reports whether a single line (without its terminator) is
// a GO batch separator. Leading/trailing whitespace is tolerated, which also
// covers the carriage return left behind by CRLF line endings.
func isBatchSeparator(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), "GO")
}
