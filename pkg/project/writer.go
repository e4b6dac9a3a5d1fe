package project

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sqlbundle/sqlbundle/pkg/config"
	"github.com/sqlbundle/sqlbundle/pkg/consts"
)

// WriteScript persists an assembled deployment script for the named database
// into the configured destination directory, returning the final path.
//
// The script is written to a temporary file in the destination directory and
// renamed into place, so a failure part way through never leaves a truncated
// <database>-migrations.sql behind. Any existing script for the database is
// replaced atomically.
func (p *Project) WriteScript(cfg *config.Config, database, text string) (string, error) {
	destDir := filepath.Join(p.root, cfg.Destination)
	if err := os.MkdirAll(destDir, consts.ModeDir); err != nil {
		return "", errors.Wrapf(err, "failed to create destination directory: %s", destDir)
	}

	finalPath := filepath.Join(destDir, database+consts.ScriptSuffix)

	tmp, err := os.CreateTemp(destDir, database+".*.tmp")
	if err != nil {
		return "", errors.Wrapf(err, "failed to create temp file in: %s", destDir)
	}
	tmpPath := tmp.Name()

	// The temp file is removed on any failure path; only a complete write
	// ever reaches the final name.
	if _, err := tmp.WriteString(text); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return "", errors.Wrapf(err, "failed to write script: %s", finalPath)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", errors.Wrapf(err, "failed to close temp file: %s", tmpPath)
	}

	if err := os.Chmod(tmpPath, consts.ModeFile); err != nil {
		_ = os.Remove(tmpPath)
		return "", errors.Wrapf(err, "failed to set mode on: %s", tmpPath)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return "", errors.Wrapf(err, "failed to move script into place: %s", finalPath)
	}

	return finalPath, nil
}
