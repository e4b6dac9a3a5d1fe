package cmd

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/sqlbundle/sqlbundle/pkg/consts"
	"github.com/sqlbundle/sqlbundle/pkg/project"
	"github.com/urfave/cli/v3"
)

var currentProject *project.Project

// Run creates and executes the main sqlbundle CLI application with the given
// version and command-line arguments. This function serves as the entry
// point for all CLI operations and handles global configuration.
//
// The function creates a CLI application with:
//   - Global --dir flag for specifying the project directory
//   - Project auto-detection based on sqlbundle.yaml presence
//   - Command registration and routing
//   - Context propagation for cancellation support
//
// Example usage:
//
//	# Run in current directory (auto-detect project)
//	err := Run(ctx, "v1.0.0", []string{"sqlbundle", "build"})
//
//	# Run in a specific directory
//	err := Run(ctx, "v1.0.0", []string{"sqlbundle", "--dir", "/path/to/project", "validate"})
//
// Returns an error if command execution fails or if project detection
// encounters issues.
func Run(ctx context.Context, version string, args []string) error {
	app := &cli.Command{
		Name:  "sqlbundle",
		Usage: "A tool for bundling SQL migrations into idempotent deployment scripts",
		Description: `sqlbundle consolidates a tree of versioned, per-database SQL migration
files into a single re-runnable deployment script per database. Migrations
are ordered by their version triple and wrapped in guards that make
re-application a no-op.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dir",
				Aliases:     []string{"d"},
				Usage:       "the project directory",
				Value:       ".",
				DefaultText: "Current directory",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			projectDir := cmd.String("dir")

			if err := os.Chdir(projectDir); err != nil {
				return ctx, err
			}

			// Only a directory carrying sqlbundle.yaml counts as a project.
			_, err := os.Stat(consts.ConfigFile)
			if os.IsNotExist(err) {
				return ctx, nil
			}

			if err != nil {
				return ctx, err
			}

			pwd, err := os.Getwd()
			if err != nil {
				return ctx, errors.Wrap(err, "failed to get current working directory")
			}

			currentProject = project.New(pwd)
			return ctx, nil
		},
		Commands: []*cli.Command{
			initCmd(),
			validate(),
			build(),
		},
	}

	return app.Run(ctx, args)
}

// requireProject guards commands that only make sense inside a project.
func requireProject(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if currentProject == nil {
		return ctx, errors.Errorf("%s not found - run 'sqlbundle init' first", consts.ConfigFile)
	}

	return ctx, nil
}
