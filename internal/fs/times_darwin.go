package fs

import (
	"os"

	"golang.org/x/sys/unix"
)

func statTimes(st *unix.Stat_t) Times {
	return Times{Atime: st.Atimespec, Mtime: st.Mtimespec}
}

// TODO: switch to futimens once x/sys exposes it on darwin; the update
// currently follows the name f was opened with.
func setTimes(f *os.File, ts []unix.Timespec) error {
	return unix.UtimesNano(f.Name(), ts)
}
