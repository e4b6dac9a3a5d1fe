package cmd

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/sqlbundle/sqlbundle/pkg/config"
	"github.com/sqlbundle/sqlbundle/pkg/migration"
	"github.com/sqlbundle/sqlbundle/pkg/script"
	"github.com/urfave/cli/v3"
)

// build returns a CLI command that assembles one idempotent deployment
// script per database and writes it to the configured destination directory
// as <database>-migrations.sql.
//
// Databases are independent: a database whose migration set fails validation
// produces no output file, is reported, and does not stop the remaining
// databases from being built. The command exits non-zero if any database
// failed.
//
// Flags:
//   - --database: restrict the build to a single named database
//
// Example usage:
//
//	sqlbundle build
//	sqlbundle build --database Sales
func build() *cli.Command {
	return &cli.Command{
		Name:   "build",
		Usage:  "Assemble deployment scripts for every database",
		Before: requireProject,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "database",
				Aliases: []string{"db"},
				Usage:   "only build the named database",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return eachDatabase(cmd, func(cfg *config.Config, database string, files []*migration.File) error {
				text, err := script.Assemble(database, files)
				if err != nil {
					return err
				}

				path, err := currentProject.WriteScript(cfg, database, text)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.Writer, "Wrote %s (%d migrations)\n", path, len(files))
				return nil
			})
		},
	}
}

// eachDatabase runs fn for every selected database's loaded migration set,
// continuing past per-database failures. Each failure is reported as it
// happens; the returned error summarizes them so the process exits non-zero
// without any failure being silently skipped.
func eachDatabase(cmd *cli.Command, fn func(cfg *config.Config, database string, files []*migration.File) error) error {
	cfg, err := currentProject.LoadConfig()
	if err != nil {
		return err
	}

	databases, err := currentProject.Databases(cfg)
	if err != nil {
		return err
	}

	if only := cmd.String("database"); only != "" {
		if !slices.Contains(databases, only) {
			return errors.Errorf("unknown database: %s", only)
		}
		databases = []string{only}
	}

	if len(databases) == 0 {
		fmt.Fprintln(cmd.Writer, "No databases found")
		return nil
	}

	var failed []string
	for _, database := range databases {
		files, err := migration.LoadDir(os.DirFS(currentProject.DatabaseDir(cfg, database)))
		if err == nil {
			err = fn(cfg, database, files)
		}

		if err != nil {
			fmt.Fprintf(cmd.Writer, "Error processing %s: %v\n", database, err)
			failed = append(failed, database)
		}
	}

	if len(failed) > 0 {
		return errors.Errorf("failed to process %d of %d databases: %s",
			len(failed), len(databases), strings.Join(failed, ", "))
	}

	return nil
}
