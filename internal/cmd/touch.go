package cmd

import (
	"errors"
	"os"

	"github.com/rowantrollope/busyfs/internal/fs"
)

// Touch creates each file operand if allowed and sets the requested
// timestamps to the current time.
func (r *Router) Touch(args TouchArgs) Status {
	if len(args.Paths) == 0 {
		return r.missingOperand("touch")
	}

	status := StatusSuccess
	for _, path := range args.Paths {
		status = status.Then(r.touchOne(path, args))
	}
	return status
}

func (r *Router) touchOne(path string, args TouchArgs) Status {
	f, err := fs.OpenForTouch(path, args.Create)
	if err != nil {
		if !args.Create && errors.Is(err, os.ErrNotExist) {
			return StatusSuccess
		}
		r.Formatter.PathErrorf(path, "cannot touch: %s", fs.Reason(err))
		return StatusUnknown
	}
	defer func() {
		// Nothing was written, so a failed close loses no data.
		if err := f.Close(); err != nil {
			r.Formatter.PathErrorf(path, "close: %s", fs.Reason(err))
		}
	}()

	if !args.Atime && !args.Mtime {
		return StatusSuccess
	}

	now, err := r.Now()
	if err != nil {
		r.Formatter.Errorf("unable to get system time: %s\n", fs.Reason(err))
		return StatusTime
	}

	times := fs.Times{Atime: now, Mtime: now}
	if !args.Atime || !args.Mtime {
		// utimensat takes both timestamps; read back the one we keep.
		cur, err := r.FileTimes(f)
		if err != nil {
			r.Formatter.PathErrorf(path, "cannot stat: %s", fs.Reason(err))
			return StatusStat
		}
		if !args.Atime {
			times.Atime = cur.Atime
		}
		if !args.Mtime {
			times.Mtime = cur.Mtime
		}
	}

	if err := r.SetTimes(f, times); err != nil {
		r.Formatter.PathErrorf(path, "cannot set times: %s", fs.Reason(err))
		return StatusStat
	}
	return StatusSuccess
}
