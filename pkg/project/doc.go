// Package project provides sqlbundle project management: initialization of
// the standard directory layout, discovery of per-database migration
// directories, and atomic persistence of generated deployment scripts.
//
// # Project Structure
//
// A sqlbundle project follows this layout:
//
//	project-root/
//	├── sqlbundle.yaml          # Source/destination configuration
//	├── databases/              # One subdirectory per database
//	│   └── Sales/
//	│       ├── 1.0.0-Init.sql
//	│       └── 1.0.1-AddCol.sql
//	└── scripts/                # Generated <database>-migrations.sql files
//
// Initialization is idempotent: existing files and directories are never
// overwritten, so it is safe to run in a populated directory.
//
// # Output Writing
//
// Generated scripts are written through a temporary file and renamed into
// place. A failed write therefore never leaves a truncated
// <database>-migrations.sql behind.
package project
