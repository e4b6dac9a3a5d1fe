package script

import (
	"slices"
	"strings"

	"github.com/sqlbundle/sqlbundle/pkg/migration"
	"github.com/sqlbundle/sqlbundle/pkg/utils"
	"github.com/sqlbundle/sqlbundle/pkg/version"
)

// Assemble produces the final deployment script for one database from its
// migration files. The script contains, in order and separated by batch
// separators:
//
//  1. a database-creation preamble that creates the database only if absent
//  2. a USE batch switching to the target database
//  3. the _Migrations history table bootstrap, wrapped in an existence guard
//  4. one guarded block per migration in ascending version order, with a
//     separator between consecutive migrations but none after the last
//
// Files are sorted here with an explicit version comparator, so callers may
// pass them in any order. Two files declaring the same version triple make
// application order undefined; Assemble rejects them with a
// *migration.DuplicateVersionError rather than picking one.
//
// The returned script is a pure function of its inputs. Writing it to disk
// is the caller's concern, and no output should be persisted when Assemble
// returns an error.
func Assemble(database string, files []*migration.File) (string, error) {
	ordered := slices.Clone(files)
	slices.SortFunc(ordered, func(a, b *migration.File) int {
		return a.Version.Compare(b.Version)
	})

	seen := make(map[version.Version]string, len(ordered))
	for _, f := range ordered {
		if prev, ok := seen[f.Version]; ok {
			return "", &migration.DuplicateVersionError{
				Version: f.Version,
				Files:   []string{prev, f.Name},
			}
		}
		seen[f.Version] = f.Name
	}

	sections := []string{
		databasePreamble(database),
		useDatabase(database),
		historyTableBootstrap(),
	}

	for _, f := range ordered {
		sections = append(sections, Build(f))
	}

	return strings.Join(sections, BatchSeparator+"\n"), nil
}

// databasePreamble creates the target database only when no database of
// that name exists. CREATE DATABASE cannot run inside the guarded
// conditional used for migrations, so this stage carries its own check
// against the server catalog.
func databasePreamble(database string) string {
	return utils.NewScriptBuilder().
		Linef("IF NOT EXISTS (SELECT * FROM sys.databases WHERE [name] = '%s')", database).
		Line("BEGIN").
		Linef("    CREATE DATABASE %s", utils.BracketIdentifier(database)).
		Line("END").
		String()
}

// useDatabase switches the session to the target database so the history
// table bootstrap and every migration run inside it. It gets its own batch:
// the database may not exist until the preamble's batch has completed.
func useDatabase(database string) string {
	return utils.NewScriptBuilder().
		Linef("USE %s", utils.BracketIdentifier(database)).
		String()
}

// historyTableBootstrap creates the _Migrations table when absent. The guard
// checks the object catalog rather than migration history, since the history
// table is the thing being created.
func historyTableBootstrap() string {
	ddl := utils.NewScriptBuilder().
		Linef("    CREATE TABLE [%s] (", HistoryTable).
		Line("        [Name] NVARCHAR(255) NOT NULL,").
		Line("        [DateApplied] DATETIME NOT NULL").
		Line("    )").
		String()

	return ExistenceGuard(HistoryTable, ddl)
}
