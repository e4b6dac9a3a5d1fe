package script

import (
	"fmt"

	"github.com/sqlbundle/sqlbundle/pkg/utils"
)

const (
	// BatchSeparator is the token emitted between independently-executable
	// batches in generated scripts. Input files may spell it in any case;
	// output always uses this literal form on a line of its own.
	BatchSeparator = "GO"

	// HistoryTable is the metadata table inside each target database that
	// records which migration identifiers have been applied and when.
	HistoryTable = "_Migrations"
)

// MigrationGuard wraps a SQL block so it executes only if no row in the
// history table records the given migration identifier as applied. When
// withNotice is true, a PRINT announcing the migration precedes the block;
// callers wrapping multiple fragments of one file enable the notice on the
// first fragment only.
//
// The block is emitted verbatim inside the conditional scope:
//
//	IF NOT EXISTS (SELECT * FROM [_Migrations] WHERE [Name] = '1.0.0-Init')
//	BEGIN
//	    PRINT 'Applying migration 1.0.0-Init'
//	<block>
//	END
func MigrationGuard(name, block string, withNotice bool) string {
	b := utils.NewScriptBuilder().
		Linef("IF NOT EXISTS (SELECT * FROM [%s] WHERE [Name] = '%s')", HistoryTable, name).
		Line("BEGIN")

	if withNotice {
		b.Linef("    PRINT 'Applying migration %s'", name)
	}

	return b.Raw(block).
		EnsureNewline().
		Line("END").
		String()
}

// ExistenceGuard wraps a SQL block so it executes only if no catalog object
// with the given name exists. Unlike MigrationGuard this is independent of
// migration history; it guards bootstrap DDL such as the history table
// itself, which must be creatable before any history rows exist.
func ExistenceGuard(objectName, block string) string {
	return utils.NewScriptBuilder().
		Linef("IF NOT EXISTS (SELECT * FROM sys.objects WHERE [name] = '%s')", objectName).
		Line("BEGIN").
		Raw(block).
		EnsureNewline().
		Line("END").
		String()
}

// CompletionStatement returns the statement that records a migration
// identifier as applied, with the time of application. It belongs after the
// final fragment of a migration's guarded block, still inside the open
// conditional scope, so the record is written in the same pass that applied
// the migration.
func CompletionStatement(name string) string {
	return fmt.Sprintf("INSERT INTO [%s] ([Name], [DateApplied]) VALUES ('%s', GETDATE())", HistoryTable, name)
}
