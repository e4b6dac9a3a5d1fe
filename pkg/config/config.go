package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sqlbundle/sqlbundle/pkg/consts"
	"gopkg.in/yaml.v3"
)

type (
	// Config represents the project configuration for deployment script
	// generation.
	Config struct {
		// Source is the directory containing one subdirectory per database,
		// each holding that database's migration files
		Source string `yaml:"source"`

		// Destination is the directory deployment scripts are written to
		Destination string `yaml:"destination"`

		// Databases optionally restricts generation to the named databases.
		// When empty, every subdirectory of Source is processed.
		Databases []string `yaml:"databases,omitempty"`
	}
)

// LoadConfig parses a project configuration from the provided io.Reader.
//
// The function expects YAML-formatted configuration data naming the source
// migration tree and the destination directory for generated scripts. Unset
// values fall back to the standard layout (databases/ and scripts/).
//
// Example:
//
//	yamlData := `
//	source: databases
//	destination: scripts
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Migration source: %s\n", cfg.Source)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal project config")
	}

	if cfg.Source == "" {
		cfg.Source = consts.DefaultSourceDir
	}
	if cfg.Destination == "" {
		cfg.Destination = consts.DefaultDestinationDir
	}

	return &cfg, nil
}

// LoadConfigFile loads a project configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
//
// Example:
//
//	cfg, err := config.LoadConfigFile("sqlbundle.yaml")
//	if err != nil {
//		log.Fatal("Failed to load config:", err)
//	}
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// Includes reports whether the given database is selected by this
// configuration. An empty Databases list selects everything.
func (c *Config) Includes(database string) bool {
	if len(c.Databases) == 0 {
		return true
	}

	for _, db := range c.Databases {
		if db == database {
			return true
		}
	}
	return false
}
