// Package migration provides loading and validation of versioned SQL
// migration files.
//
// A migration directory holds one .sql file per incremental change, named
// <major>.<minor>.<patch>-<label>.sql. This package walks such a directory,
// parses every filename into a version key, rejects malformed names and
// duplicate version triples, and returns the files sorted in ascending
// version order ready for script assembly.
//
// It also provides the batch splitter that divides a migration file's SQL
// into fragments on GO separator lines, mirroring the SQL Server batch
// convention. SQL content is treated as opaque text; fragments preserve the
// original bytes of every non-separator line.
package migration
