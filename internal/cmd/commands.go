package cmd

import (
	flag "github.com/spf13/pflag"
)

// Command describes one subcommand: its names, help text and flags.
type Command struct {
	Name     string
	Aliases  []string
	Synopsis string
	Summary  string

	// bind registers the command's flags on fs and returns the function that
	// builds its arguments from the parsed flags and operands.
	bind func(fs *flag.FlagSet) runner
}

type runner func(r *Router, operands []string) Status

// ListArgs are the parsed arguments of ls.
type ListArgs struct {
	Paths   []string
	All     bool
	Shallow bool
}

// MkdirArgs are the parsed arguments of mkdir.
type MkdirArgs struct {
	Paths   []string
	Parents bool
}

// RmdirArgs are the parsed arguments of rmdir.
type RmdirArgs struct {
	Paths []string
}

// TouchArgs are the parsed arguments of touch.
type TouchArgs struct {
	Paths  []string
	Create bool
	Atime  bool
	Mtime  bool
}

var commands = []*Command{
	{
		Name:     "ls",
		Aliases:  []string{"list"},
		Synopsis: "ls [-a] [-d] [PATH...]",
		Summary:  "List directory contents",
		bind: func(fs *flag.FlagSet) runner {
			all := fs.BoolP("all", "a", false, "Do not ignore entries starting with .")
			shallow := fs.BoolP("directory", "d", false, "List directories themselves, not their contents")
			return func(r *Router, operands []string) Status {
				return r.List(ListArgs{Paths: operands, All: *all, Shallow: *shallow})
			}
		},
	},
	{
		Name:     "touch",
		Synopsis: "touch [-c] [-a] [-m] FILE...",
		Summary:  "Create files or update their timestamps",
		bind: func(fs *flag.FlagSet) runner {
			noCreate := fs.BoolP("no-create", "c", false, "Do not create missing files")
			atime := fs.BoolP("atime", "a", false, "Change only the access time")
			mtime := fs.BoolP("mtime", "m", false, "Change only the modification time")
			return func(r *Router, operands []string) Status {
				return r.Touch(TouchArgs{
					Paths:  operands,
					Create: !*noCreate,
					Atime:  *atime || !*mtime,
					Mtime:  *mtime || !*atime,
				})
			}
		},
	},
	{
		Name:     "mkdir",
		Aliases:  []string{"create-directory"},
		Synopsis: "mkdir [-p] DIRECTORY...",
		Summary:  "Create directories",
		bind: func(fs *flag.FlagSet) runner {
			parents := fs.BoolP("parents", "p", false, "Create parent directories as needed")
			return func(r *Router, operands []string) Status {
				return r.Mkdir(MkdirArgs{Paths: operands, Parents: *parents})
			}
		},
	},
	{
		Name:     "rmdir",
		Aliases:  []string{"remove-directory"},
		Synopsis: "rmdir DIRECTORY...",
		Summary:  "Remove empty directories",
		bind: func(fs *flag.FlagSet) runner {
			return func(r *Router, operands []string) Status {
				return r.Rmdir(RmdirArgs{Paths: operands})
			}
		},
	},
}
