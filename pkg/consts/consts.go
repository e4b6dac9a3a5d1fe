package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ConfigFile is the well-known project configuration file name
	ConfigFile = "sqlbundle.yaml"

	// ScriptSuffix is appended to the database name to form the output file name
	ScriptSuffix = "-migrations.sql"

	// DefaultSourceDir is the default directory containing per-database migration directories
	DefaultSourceDir = "databases"

	// DefaultDestinationDir is the default directory deployment scripts are written to
	DefaultDestinationDir = "scripts"
)
