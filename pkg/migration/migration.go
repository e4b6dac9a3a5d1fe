package migration

import (
	"io"
	"io/fs"
	"slices"

	"github.com/pkg/errors"
	"github.com/sqlbundle/sqlbundle/pkg/version"
)

type (
	// File represents one discovered migration file. Instances are created
	// once per directory scan and are immutable afterwards.
	File struct {
		// Version is the (major, minor, patch) triple parsed from the
		// filename, used to order migrations within a database.
		Version version.Version

		// Name is the canonical migration identifier: the filename stem
		// before the .sql extension, e.g. "1.2.3-AddUsers". It is both the
		// idempotency key recorded in the generated script's history table
		// and the label used in console messages.
		Name string

		// RawSQL is the full text content of the file at read time.
		RawSQL string
	}
)

// Load creates a migration File from the provided filename and reader. The
// filename (not a path) supplies both the version key and the migration
// identifier; the reader supplies the SQL content.
//
// Example:
//
//	f, err := migration.Load("1.0.0-Init.sql", strings.NewReader("CREATE TABLE Foo (Id INT)"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(f.Name) // 1.0.0-Init
//
// Returns an *InvalidFilenameError if the filename does not match the
// required pattern, or a wrapped I/O error if the reader fails.
func Load(filename string, r io.Reader) (*File, error) {
	v, name, err := version.Parse(filename)
	if err != nil {
		return nil, &InvalidFilenameError{Filename: filename}
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read migration: %s", filename)
	}

	return &File{
		Version: v,
		Name:    name,
		RawSQL:  string(content),
	}, nil
}

// LoadDir loads every migration file from the provided filesystem and returns
// them sorted in ascending version order. The filesystem can be a regular
// directory (os.DirFS), an embedded filesystem, or any fs.FS implementation.
//
// Every regular file in the tree is treated as a migration unit and must
// match the <major>.<minor>.<patch>-<label>.sql pattern; the first
// non-conforming filename aborts the load with an *InvalidFilenameError.
// Two files declaring the same version triple abort the load with a
// *DuplicateVersionError. There is no partial-success mode: a directory
// either loads completely or not at all.
//
// Example:
//
//	files, err := migration.LoadDir(os.DirFS("databases/Sales"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, f := range files {
//		fmt.Printf("%s: %d bytes\n", f.Name, len(f.RawSQL))
//	}
func LoadDir(dir fs.FS) ([]*File, error) {
	var files []*File
	seen := make(map[version.Version]string)

	if err := fs.WalkDir(dir, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		f, err := dir.Open(path)
		if err != nil {
			return errors.Wrapf(err, "failed to open: %s", path)
		}
		defer func() { _ = f.Close() }()

		m, err := Load(d.Name(), f)
		if err != nil {
			return err
		}

		if prev, ok := seen[m.Version]; ok {
			return &DuplicateVersionError{
				Version: m.Version,
				Files:   []string{prev, d.Name()},
			}
		}
		seen[m.Version] = d.Name()

		files = append(files, m)
		return nil
	}); err != nil {
		return nil, err
	}

	// WalkDir order is lexical; migration order is numeric.
	slices.SortFunc(files, func(a, b *File) int {
		return a.Version.Compare(b.Version)
	})

	return files, nil
}
