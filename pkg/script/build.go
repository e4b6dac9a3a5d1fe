package script

import (
	"strings"

	"github.com/sqlbundle/sqlbundle/pkg/migration"
)

// Build produces the complete guarded text for one migration file.
//
// The file's SQL is split on GO separator lines and every fragment is
// wrapped in the migration guard under the same identifier. Because a batch
// separator ends the enclosing conditional scope, the guard is closed before
// each separator and re-opened after it, so every fragment still executes
// only while the migration is unrecorded. The "applying" notice appears with
// the first fragment only, and the completion statement is appended after
// the last fragment inside its guard.
//
// Replaying the resulting text against a target with no history applies the
// whole migration and records it; replaying it again is a no-op, since every
// guard evaluates against the recorded identifier.
func Build(f *migration.File) string {
	fragments := migration.SplitBatches(f.RawSQL)

	blocks := make([]string, 0, len(fragments))
	for i, fragment := range fragments {
		block := fragment

		if i == len(fragments)-1 {
			if block != "" && !strings.HasSuffix(block, "\n") {
				block += "\n"
			}
			block += CompletionStatement(f.Name) + "\n"
		}

		blocks = append(blocks, MigrationGuard(f.Name, block, i == 0))
	}

	return strings.Join(blocks, BatchSeparator+"\n")
}
