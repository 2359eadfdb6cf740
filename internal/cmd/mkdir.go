package cmd

import (
	"errors"
	"os"

	"github.com/rowantrollope/busyfs/internal/fs"
)

// Mkdir creates each directory operand, and with Parents every missing
// ancestor first.
func (r *Router) Mkdir(args MkdirArgs) Status {
	if len(args.Paths) == 0 {
		return r.missingOperand("mkdir")
	}

	status := StatusSuccess
	for _, path := range args.Paths {
		status = status.Then(r.mkdirOne(path, args.Parents))
	}
	return status
}

func (r *Router) mkdirOne(path string, parents bool) Status {
	steps := []string{path}
	if parents {
		steps = fs.PrefixPaths(path)
	}

	for _, step := range steps {
		err := fs.Mkdir(step)
		if err == nil {
			continue
		}
		// Intermediate components may legitimately exist already.
		if parents && errors.Is(err, os.ErrExist) {
			continue
		}
		r.Formatter.PathErrorf(step, "cannot create directory: %s", fs.Reason(err))
		return StatusUnknown
	}
	return StatusSuccess
}
