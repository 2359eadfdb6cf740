package cmd

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

func (r *Router) runHelp(args []string) Status {
	if len(args) == 0 {
		r.printUsage(r.Formatter.Writer)
		return StatusSuccess
	}
	c, ok := r.commands[args[0]]
	if !ok {
		r.Formatter.Errorf("No help available for '%s'\n", args[0])
		return StatusInvalidUsage
	}
	r.printCommandUsage(r.Formatter.Writer, c)
	return StatusSuccess
}

func (r *Router) printUsage(w io.Writer) {
	name := r.Config.Multiplexer
	fmt.Fprintf(w, "Usage: %s [--help] [--version] <command> [options] [operands...]\n", name)
	fmt.Fprintf(w, "       %*s <command> [options] [operands...]\n", len(name), "")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-26s%s%s\n", c.Synopsis, c.Summary, aliasList(c))
	}
	fmt.Fprintln(w, "")
	fmt.Fprintf(w, "A link to %s named after a command runs that command directly.\n", name)
}

func (r *Router) printCommandUsage(w io.Writer, c *Command) {
	fmt.Fprintf(w, "Usage: %s\n", c.Synopsis)
	fmt.Fprintf(w, "%s%s\n", c.Summary, aliasList(c))

	fs := flag.NewFlagSet(c.Name, flag.ContinueOnError)
	c.bind(fs)
	if fs.HasFlags() {
		fmt.Fprintln(w, "")
		fmt.Fprint(w, fs.FlagUsages())
	}
}
