//go:build linux || darwin

package fs

import (
	"os"

	"golang.org/x/sys/unix"
)

// Times holds a file's access and modification timestamps.
type Times struct {
	Atime unix.Timespec
	Mtime unix.Timespec
}

// Now reads the realtime clock.
func Now() (unix.Timespec, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_REALTIME, &ts); err != nil {
		return ts, os.NewSyscallError("clock_gettime", err)
	}
	return ts, nil
}

// FileTimes returns the current timestamps of an open file.
func FileTimes(f *os.File) (Times, error) {
	var st unix.Stat_t
	if err := unix.Fstat(int(f.Fd()), &st); err != nil {
		return Times{}, &os.PathError{Op: "fstat", Path: f.Name(), Err: err}
	}
	return statTimes(&st), nil
}

// SetTimes replaces both timestamps of the open file f in a single
// utimensat call.
func SetTimes(f *os.File, t Times) error {
	if err := setTimes(f, []unix.Timespec{t.Atime, t.Mtime}); err != nil {
		return &os.PathError{Op: "utimensat", Path: f.Name(), Err: err}
	}
	return nil
}
