package project

import (
	_ "embed"
	"os"
	"path/filepath"
	"slices"
	"testing/fstest"

	"github.com/pkg/errors"
	"github.com/sqlbundle/sqlbundle/pkg/config"
	"github.com/sqlbundle/sqlbundle/pkg/consts"
	"github.com/sqlbundle/sqlbundle/pkg/utils"
)

var (
	//go:embed embed/sqlbundle.yaml
	defaultConfig []byte

	image = fstest.MapFS{
		consts.DefaultSourceDir:      {Mode: os.ModeDir | consts.ModeDir},
		consts.DefaultDestinationDir: {Mode: os.ModeDir | consts.ModeDir},
		consts.ConfigFile:            {Data: defaultConfig},
	}
)

type (
	// Project manages a sqlbundle project rooted at a directory containing
	// sqlbundle.yaml, the per-database migration tree, and the script
	// destination directory.
	Project struct {
		root string
	}
)

// New creates a Project instance for the given root directory. The directory
// does not need to exist yet; Initialize will create it.
//
// Example:
//
//	proj := project.New("/path/to/project")
//	if err := proj.Initialize(); err != nil {
//		log.Fatal(err)
//	}
func New(path string) *Project {
	return &Project{root: path}
}

// Root returns the project root directory.
func (p *Project) Root() string {
	return p.root
}

// Initialize sets up the project directory structure and default
// configuration. It is idempotent: only missing files and directories are
// created, and existing content is preserved.
func (p *Project) Initialize() error {
	if err := os.MkdirAll(p.root, consts.ModeDir); err != nil {
		return errors.Wrapf(err, "failed to create project root: %s", p.root)
	}

	for path, entry := range image {
		fullPath := filepath.Join(p.root, path)

		if _, err := os.Stat(fullPath); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return errors.Wrapf(err, "failed to stat: %s", fullPath)
		}

		if entry.Mode.IsDir() {
			if err := os.MkdirAll(fullPath, consts.ModeDir); err != nil {
				return errors.Wrapf(err, "failed to create directory: %s", fullPath)
			}
			continue
		}

		if err := os.WriteFile(fullPath, entry.Data, consts.ModeFile); err != nil {
			return errors.Wrapf(err, "failed to write file: %s", fullPath)
		}
	}

	return nil
}

// LoadConfig reads the project's sqlbundle.yaml.
func (p *Project) LoadConfig() (*config.Config, error) {
	return config.LoadConfigFile(filepath.Join(p.root, consts.ConfigFile))
}

// Databases lists the database names in the configured source directory:
// every immediate subdirectory is one database, and its name is used
// verbatim in generated statements. Names that would break generated
// statement quoting are rejected here, before any script text is built.
// The result is sorted for deterministic processing order.
func (p *Project) Databases(cfg *config.Config) ([]string, error) {
	sourceDir := filepath.Join(p.root, cfg.Source)

	entries, err := os.ReadDir(sourceDir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read source directory: %s", sourceDir)
	}

	var databases []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		name := entry.Name()
		if err := utils.ValidateDatabaseName(name); err != nil {
			return nil, errors.Wrapf(err, "unusable database directory: %s", filepath.Join(sourceDir, name))
		}

		if cfg.Includes(name) {
			databases = append(databases, name)
		}
	}

	slices.Sort(databases)
	return databases, nil
}

// DatabaseDir returns the migration directory for the named database.
func (p *Project) DatabaseDir(cfg *config.Config, database string) string {
	return filepath.Join(p.root, cfg.Source, database)
}
