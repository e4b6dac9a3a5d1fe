package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// run drives the full CLI against a project directory, the way main does.
func run(t *testing.T, dir string, args ...string) error {
	t.Helper()

	// The root command resolves the project from --dir and the process
	// working directory; reset between runs so tests stay independent.
	currentProject = nil
	t.Cleanup(func() { currentProject = nil })

	argv := append([]string{"sqlbundle", "--dir", dir}, args...)
	return Run(context.Background(), "test", argv)
}

func writeMigration(t *testing.T, root, database, filename, sql string) {
	t.Helper()

	dir := filepath.Join(root, "databases", database)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte(sql), 0o644))
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, run(t, dir, "init"))

	for _, path := range []string{"sqlbundle.yaml", "databases", "scripts"} {
		_, err := os.Stat(filepath.Join(dir, path))
		require.NoError(t, err, "missing %s", path)
	}

	// Idempotent: a second run succeeds and keeps the existing config.
	require.NoError(t, run(t, dir, "init"))
}

func TestBuildCommand(t *testing.T) {
	t.Run("writes_script_per_database", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, run(t, dir, "init"))

		writeMigration(t, dir, "Sales", "1.0.0-Init.sql", "CREATE TABLE Foo (Id INT)\n")
		writeMigration(t, dir, "Sales", "1.0.1-AddCol.sql", "ALTER TABLE Foo ADD Bar INT\n")
		writeMigration(t, dir, "Billing", "1.0.0-Init.sql", "CREATE TABLE Inv (Id INT)\n")

		require.NoError(t, run(t, dir, "build"))

		sales, err := os.ReadFile(filepath.Join(dir, "scripts", "Sales-migrations.sql"))
		require.NoError(t, err)
		require.Contains(t, string(sales), "CREATE DATABASE [Sales]")
		require.Contains(t, string(sales), "PRINT 'Applying migration 1.0.0-Init'")
		require.Contains(t, string(sales), "PRINT 'Applying migration 1.0.1-AddCol'")

		_, err = os.Stat(filepath.Join(dir, "scripts", "Billing-migrations.sql"))
		require.NoError(t, err)
	})

	t.Run("database_flag_restricts_build", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, run(t, dir, "init"))

		writeMigration(t, dir, "Sales", "1.0.0-Init.sql", "A\n")
		writeMigration(t, dir, "Billing", "1.0.0-Init.sql", "B\n")

		require.NoError(t, run(t, dir, "build", "--database", "Sales"))

		_, err := os.Stat(filepath.Join(dir, "scripts", "Sales-migrations.sql"))
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, "scripts", "Billing-migrations.sql"))
		require.True(t, os.IsNotExist(err))
	})

	t.Run("unknown_database_flag", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, run(t, dir, "init"))

		err := run(t, dir, "build", "--database", "Nope")
		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown database")
	})

	t.Run("invalid_filename_fails_database_but_not_others", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, run(t, dir, "init"))

		writeMigration(t, dir, "Broken", "init.sql", "A\n")
		writeMigration(t, dir, "Sales", "1.0.0-Init.sql", "B\n")

		err := run(t, dir, "build")
		require.Error(t, err)
		require.Contains(t, err.Error(), "Broken")

		// The failing database produced no output file.
		_, statErr := os.Stat(filepath.Join(dir, "scripts", "Broken-migrations.sql"))
		require.True(t, os.IsNotExist(statErr))

		// The healthy database still built.
		_, statErr = os.Stat(filepath.Join(dir, "scripts", "Sales-migrations.sql"))
		require.NoError(t, statErr)
	})

	t.Run("duplicate_version_fails_database", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, run(t, dir, "init"))

		writeMigration(t, dir, "Sales", "1.0.0-A.sql", "A\n")
		writeMigration(t, dir, "Sales", "1.0.0-B.sql", "B\n")

		err := run(t, dir, "build")
		require.Error(t, err)

		_, statErr := os.Stat(filepath.Join(dir, "scripts", "Sales-migrations.sql"))
		require.True(t, os.IsNotExist(statErr))
	})

	t.Run("requires_project", func(t *testing.T) {
		err := run(t, t.TempDir(), "build")
		require.Error(t, err)
		require.Contains(t, err.Error(), "sqlbundle.yaml not found")
	})
}

func TestValidateCommand(t *testing.T) {
	t.Run("clean_set", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, run(t, dir, "init"))

		writeMigration(t, dir, "Sales", "1.0.0-Init.sql", "A\n")

		require.NoError(t, run(t, dir, "validate"))

		// Validation writes nothing.
		entries, err := os.ReadDir(filepath.Join(dir, "scripts"))
		require.NoError(t, err)
		require.Empty(t, entries)
	})

	t.Run("reports_bad_filenames", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, run(t, dir, "init"))

		writeMigration(t, dir, "Sales", "oops.sql", "A\n")

		err := run(t, dir, "validate")
		require.Error(t, err)
		require.Contains(t, err.Error(), "Sales")
	})
}
