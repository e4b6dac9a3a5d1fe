package cmd

import (
	"context"
	"fmt"

	"github.com/sqlbundle/sqlbundle/pkg/config"
	"github.com/sqlbundle/sqlbundle/pkg/migration"
	"github.com/urfave/cli/v3"
)

// validate returns a CLI command that checks every database's migration set
// without writing any output. It exercises the same loading path as build,
// so a clean validate guarantees a clean build.
//
// Flags:
//   - --database: restrict validation to a single named database
//
// Example usage:
//
//	sqlbundle validate
//	sqlbundle validate --database Sales
func validate() *cli.Command {
	return &cli.Command{
		Name:   "validate",
		Usage:  "Check migration sets without writing scripts",
		Before: requireProject,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "database",
				Aliases: []string{"db"},
				Usage:   "only validate the named database",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return eachDatabase(cmd, func(cfg *config.Config, database string, files []*migration.File) error {
				fmt.Fprintf(cmd.Writer, "OK %s (%d migrations)\n", database, len(files))
				return nil
			})
		},
	}
}
