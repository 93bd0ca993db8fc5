package filesystem

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/linkkeeper/pkg/errors"
)

// WriteFileAtomic writes data to a temporary file next to name and renames
// it over name.
func WriteFileAtomic(fsys FS, name string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(name)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir)
	}

	tmp := filepath.Join(dir, "."+filepath.Base(name)+".tmp")
	if err := fsys.WriteFile(tmp, data, perm); err != nil {
		_ = fsys.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", tmp)
	}

	if err := fsys.Rename(tmp, name); err != nil {
		_ = fsys.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to replace %s", name)
	}
	return nil
}

// EnsureFile creates an empty file at name when nothing exists there yet.
// It reports whether the file was created.
func EnsureFile(fsys FS, name string) (bool, error) {
	_, err := fsys.Stat(name)
	if err == nil {
		return false, nil
	}
	if !stderrors.Is(err, fs.ErrNotExist) {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", name)
	}

	if err := fsys.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", name)
	}
	if err := fsys.WriteFile(name, nil, 0644); err != nil {
		return false, errors.Wrapf(err, errors.ErrFileCreate, "failed to create %s", name)
	}
	return true, nil
}

// Exists reports whether name exists
func Exists(fsys FS, name string) bool {
	_, err := fsys.Stat(name)
	return err == nil
}
