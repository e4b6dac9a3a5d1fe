package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/sqlbundle/sqlbundle/pkg/project"
	"github.com/urfave/cli/v3"
)

// initCmd returns a CLI command that initializes a new sqlbundle project in
// the current directory. This command creates the standard project structure
// with a configuration file and directory layout.
//
// The initialization process is idempotent - running it multiple times will
// not overwrite existing files, making it safe to run in existing
// directories.
//
// Created structure:
//   - sqlbundle.yaml: Configuration file naming source and destination
//   - databases/: One subdirectory per database, holding migration files
//   - scripts/: Destination for generated deployment scripts
//
// Example usage:
//
//	# Initialize a project in the current directory
//	sqlbundle init
func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize a project in the current directory",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			pwd, err := os.Getwd()
			if err != nil {
				return err
			}

			if err := project.New(pwd).Initialize(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.Writer, "Initialized sqlbundle project in %s\n", pwd)
			return nil
		},
	}
}
