package fs

import (
	"errors"
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

func statTimes(st *unix.Stat_t) Times {
	return Times{Atime: st.Atim, Mtime: st.Mtim}
}

// setTimes goes through /proc/self/fd so the update lands on the open
// descriptor even if its path was renamed or replaced. Without /proc it
// falls back to the name f was opened with.
func setTimes(f *os.File, ts []unix.Timespec) error {
	proc := "/proc/self/fd/" + strconv.Itoa(int(f.Fd()))
	err := unix.UtimesNanoAt(unix.AT_FDCWD, proc, ts, 0)
	if errors.Is(err, unix.ENOENT) {
		if _, statErr := os.Stat("/proc/self/fd"); statErr != nil {
			return unix.UtimesNano(f.Name(), ts)
		}
	}
	return err
}
