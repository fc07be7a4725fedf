package source

import (
	"os"
	"path/filepath"
)

// StripRoot promotes the contents of a lone top-level directory in dir up
// one level, removing the wrapper that code hosting archive exports add
// (e.g. "repo-main/"). Nothing happens when dir holds zero or several
// entries, or when the only entry is not a directory.
func StripRoot(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	if len(entries) != 1 || !entries[0].IsDir() {
		return nil
	}

	// Move the wrapper aside first so a child with the same name as the
	// wrapper can take its place.
	wrapper := filepath.Join(dir, entries[0].Name())
	staged := wrapper + ".nyoom-strip"
	if err := os.Rename(wrapper, staged); err != nil {
		return err
	}

	children, err := os.ReadDir(staged)
	if err != nil {
		return err
	}

	for _, child := range children {
		if err := os.Rename(filepath.Join(staged, child.Name()), filepath.Join(dir, child.Name())); err != nil {
			return err
		}
	}

	return os.Remove(staged)
}
