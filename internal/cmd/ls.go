package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/rowantrollope/busyfs/internal/fs"
)

// List prints the entries of each directory operand and the names of the
// other operands. With no operands it lists the working directory.
func (r *Router) List(args ListArgs) Status {
	paths := args.Paths
	if len(paths) == 0 {
		cwd, err := r.Getwd()
		if err != nil {
			r.Formatter.Errorf("unable to determine current directory: %s\n", fs.Reason(err))
			return StatusNoCwd
		}
		paths = []string{cwd}
	}

	status := StatusSuccess
	printed := false
	var dirs []string
	for _, path := range paths {
		typ, err := fs.Classify(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			r.Formatter.PathErrorf(path, "%s", fs.Reason(err))
		case err != nil:
			r.Formatter.PathErrorf(path, "%s", fs.Reason(err))
			status = status.Then(StatusStat)
		case typ == fs.TypeDir && !args.Shallow:
			dirs = append(dirs, path)
		default:
			r.Formatter.Println(path)
			printed = true
		}
	}

	headers := printed || len(dirs) > 1
	for i, dir := range dirs {
		if headers {
			r.Formatter.PrintHeader(dir, i == 0 && !printed)
		}
		status = status.Then(r.listDir(dir, args.All))
	}
	return status
}

func (r *Router) listDir(path string, all bool) Status {
	dir, err := fs.OpenDir(path)
	if err != nil {
		r.Formatter.PathErrorf(path, "%s", fs.Reason(err))
		return StatusReadDir
	}
	defer func() {
		if err := dir.Close(); err != nil {
			r.Formatter.PathErrorf(path, "close: %s", fs.Reason(err))
		}
	}()

	for {
		name, err := dir.Next()
		if err == io.EOF {
			return StatusSuccess
		}
		if err != nil {
			r.Formatter.PathErrorf(path, "error reading directory: %s", fs.Reason(err))
			return StatusReadDir
		}
		if !all && fs.IsHidden(name) {
			continue
		}
		r.Formatter.Println(name)
	}
}
