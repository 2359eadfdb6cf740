package cmd

import (
	"github.com/rowantrollope/busyfs/internal/fs"
)

// Rmdir removes each empty directory operand.
func (r *Router) Rmdir(args RmdirArgs) Status {
	if len(args.Paths) == 0 {
		return r.missingOperand("rmdir")
	}

	status := StatusSuccess
	for _, path := range args.Paths {
		if err := fs.Rmdir(path); err != nil {
			r.Formatter.PathErrorf(path, "cannot remove: %s", fs.Reason(err))
			status = status.Then(StatusUnknown)
		}
	}
	return status
}
