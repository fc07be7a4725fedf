// Package fsutil holds the filesystem primitives shared by source retrieval
// and chrome installation.
package fsutil

import (
	"os"
	"path/filepath"

	"github.com/otiai10/copy"
	"github.com/sirupsen/logrus"

	nyoomerrors "github.com/ryanccn/nyoom/internal/errors"
	"github.com/ryanccn/nyoom/internal/logging"
)

// CopyTree recursively copies the contents of src into dst, creating dst
// when it does not exist. Regular files keep their permission bits and empty
// directories are kept. Symlinks inside the tree are skipped. A symlinked
// src root is resolved first.
func CopyTree(src, dst string) error {
	return CopyTreeWithLogger(src, dst, nil)
}

// CopyTreeWithLogger is CopyTree reporting skipped symlinks to log
func CopyTreeWithLogger(src, dst string, log logrus.FieldLogger) error {
	log = logging.Or(log)

	root, err := filepath.EvalSymlinks(src)
	if err != nil {
		return err
	}

	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return nyoomerrors.NewPathError(src, "copy", nyoomerrors.ErrNotADirectory)
	}

	if err := os.MkdirAll(dst, 0755); err != nil {
		return err
	}

	opts := copy.Options{
		OnSymlink: func(path string) copy.SymlinkAction {
			log.WithField("path", path).Debug("skipping symlink")
			return copy.Skip
		},
	}

	return copy.Copy(root, dst, opts)
}

// IsSymlink checks if a path is a symlink
func IsSymlink(path string) (bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return false, err
	}
	return info.Mode()&os.ModeSymlink != 0, nil
}

// IsDir reports whether path exists and is a directory, following symlinks
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Exists reports whether anything exists at path without following symlinks
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
