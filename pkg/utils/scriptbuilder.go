package utils

import (
	"fmt"
	"strings"
)

// ScriptBuilder provides line-oriented composition of SQL script text with
// explicit line terminators. It exists so script sections can be built as
// values and joined by their callers, instead of accumulating output in a
// shared mutable buffer with embedded formatting state.
//
// Example usage:
//
//	text := NewScriptBuilder().
//		Line("BEGIN").
//		Linef("    PRINT '%s'", "hello").
//		Line("END").
//		String()
//	// Output: "BEGIN\n    PRINT 'hello'\nEND\n"
type ScriptBuilder struct {
	buf strings.Builder
}

// NewScriptBuilder creates a new empty ScriptBuilder.
func NewScriptBuilder() *ScriptBuilder {
	return &ScriptBuilder{}
}

// Line appends a single line followed by a line terminator.
func (b *ScriptBuilder) Line(line string) *ScriptBuilder {
	b.buf.WriteString(line)
	b.buf.WriteString("\n")
	return b
}

// Linef appends a formatted line followed by a line terminator.
//
// Example:
//
//	b.Linef("CREATE DATABASE %s", "[Sales]")  // "CREATE DATABASE [Sales]\n"
func (b *ScriptBuilder) Linef(format string, args ...any) *ScriptBuilder {
	return b.Line(fmt.Sprintf(format, args...))
}

// Raw appends text exactly as given, without adding a terminator. Used for
// migration fragments, whose original bytes must be preserved.
func (b *ScriptBuilder) Raw(text string) *ScriptBuilder {
	b.buf.WriteString(text)
	return b
}

// EnsureNewline appends a line terminator unless the accumulated text is
// empty or already ends with one. Called after Raw so a following Line
// starts at column zero even when the raw text had no trailing newline.
func (b *ScriptBuilder) EnsureNewline() *ScriptBuilder {
	s := b.buf.String()
	if s != "" && !strings.HasSuffix(s, "\n") {
		b.buf.WriteString("\n")
	}
	return b
}

// String returns the accumulated script text.
func (b *ScriptBuilder) String() string {
	return b.buf.String()
}
