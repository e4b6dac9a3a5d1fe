// Package cmd provides CLI commands for the sqlbundle tool.
//
// This package implements the command-line interface for sqlbundle,
// providing commands for project scaffolding, migration validation, and
// deployment script generation.
//
// # Available Commands
//
//   - init: Initialize a new sqlbundle project structure
//   - validate: Check every database's migration set without writing output
//   - build: Assemble one idempotent deployment script per database
//
// # Command Structure
//
// Each command is implemented as a separate function that returns a
// *cli.Command, following the urfave/cli/v3 pattern. The root command
// carries a global --dir flag and auto-detects projects by the presence of
// sqlbundle.yaml.
//
// # Example Usage
//
//	sqlbundle init                        # Scaffold a project
//	sqlbundle validate                    # Check migration filenames/versions
//	sqlbundle build                       # Write <database>-migrations.sql files
//	sqlbundle build --database Sales      # Restrict to one database
package cmd
