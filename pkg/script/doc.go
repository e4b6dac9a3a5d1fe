// Package script assembles idempotent deployment scripts from migration files.
//
// The package turns a database's ordered migration files into one
// self-contained script that can be replayed safely: every migration is
// wrapped in a guard that consults the _Migrations history table, so a
// second run against the same target is a no-op. Assembly is pure text
// transformation; nothing in this package connects to a database.
//
// The layers, bottom up:
//
//   - guard wrapping (MigrationGuard, ExistenceGuard, CompletionStatement)
//     produces the conditional scaffolding around SQL blocks
//   - Build produces the complete guarded text for one migration file,
//     re-opening the guard around every internal GO batch boundary
//   - Assemble concatenates the database-creation preamble, the _Migrations
//     bootstrap, and every migration block into the final script
//
// All functions return their text; callers decide where it goes.
package script
