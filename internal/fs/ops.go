//go:build linux || darwin

package fs

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

const (
	// DirMode is rwxrwxr-x, applied before the umask.
	DirMode os.FileMode = 0o775
	// FileMode is rw-rw-rw-, applied before the umask.
	FileMode os.FileMode = 0o666
)

// Mkdir creates exactly one directory.
func Mkdir(path string) error {
	return os.Mkdir(path, DirMode)
}

// Rmdir removes an empty directory. It never unlinks a regular file.
func Rmdir(path string) error {
	if err := unix.Rmdir(path); err != nil {
		return &os.PathError{Op: "rmdir", Path: path, Err: err}
	}
	return nil
}

// OpenForTouch opens path write-only, creating it when create is set.
func OpenForTouch(path string, create bool) (*os.File, error) {
	flags := os.O_WRONLY
	if create {
		flags |= os.O_CREATE
	}
	return os.OpenFile(path, flags, FileMode)
}

// Reason returns the underlying cause of err without the op and path that
// *os.PathError and *os.SyscallError prepend.
func Reason(err error) string {
	var pe *os.PathError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	var se *os.SyscallError
	if errors.As(err, &se) {
		return se.Err.Error()
	}
	return err.Error()
}
