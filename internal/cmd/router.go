package cmd

import (
	"errors"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/rowantrollope/busyfs/internal/config"
	"github.com/rowantrollope/busyfs/internal/fs"
	"github.com/rowantrollope/busyfs/internal/output"
	flag "github.com/spf13/pflag"
	"golang.org/x/sys/unix"
)

// Invocation is the command name the process was started under plus the
// arguments that follow it.
type Invocation struct {
	Name string
	Args []string
}

// NewInvocation resolves the invocation name from argv[0].
func NewInvocation(argv []string) (Invocation, error) {
	if len(argv) == 0 {
		return Invocation{}, errors.New("missing program name")
	}
	name, ok := fs.BaseName(argv[0])
	if !ok {
		return Invocation{}, errors.New(argv[0] + ": not a command")
	}
	return Invocation{Name: name, Args: argv[1:]}, nil
}

// Router dispatches an invocation to the appropriate handler.
type Router struct {
	Config    *config.Config
	Formatter *output.Formatter

	// Getwd resolves the default ls operand.
	Getwd func() (string, error)

	// Now, FileTimes and SetTimes are the clock and timestamp calls touch makes.
	Now       func() (unix.Timespec, error)
	FileTimes func(f *os.File) (fs.Times, error)
	SetTimes  func(f *os.File, t fs.Times) error

	commands map[string]*Command
}

// NewRouter creates a command router with all registered commands.
func NewRouter(cfg *config.Config, formatter *output.Formatter) *Router {
	r := &Router{
		Config:    cfg,
		Formatter: formatter,
		Getwd:     os.Getwd,
		Now:       fs.Now,
		FileTimes: fs.FileTimes,
		SetTimes:  fs.SetTimes,
		commands:  make(map[string]*Command),
	}
	r.registerCommands()
	return r
}

func (r *Router) registerCommands() {
	for _, c := range commands {
		r.commands[c.Name] = c
		for _, alias := range c.Aliases {
			r.commands[alias] = c
		}
	}
}

// Dispatch runs the command selected by argv and returns its exit status.
func (r *Router) Dispatch(argv []string) Status {
	inv, err := NewInvocation(argv)
	if err != nil {
		r.Formatter.Errorf("%s\n", err)
		r.printUsage(r.Formatter.ErrWriter)
		return StatusInvalidUsage
	}

	if inv.Name == r.Config.Multiplexer {
		return r.runMultiplexer(inv.Args)
	}
	return r.Execute(inv.Name, inv.Args)
}

func (r *Router) runMultiplexer(args []string) Status {
	flags := flag.NewFlagSet(r.Config.Multiplexer, flag.ContinueOnError)
	flags.SetInterspersed(false) // Stop parsing at the subcommand
	flags.SetOutput(io.Discard)
	help := flags.BoolP("help", "h", false, "Show usage and exit")
	showVersion := flags.Bool("version", false, "Show version and exit")

	if err := flags.Parse(args); err != nil {
		r.Formatter.Errorf("%s: %s\n", r.Config.Multiplexer, err)
		r.printUsage(r.Formatter.ErrWriter)
		return StatusInvalidUsage
	}

	switch {
	case *help:
		r.printUsage(r.Formatter.Writer)
		return StatusSuccess
	case *showVersion:
		r.Formatter.Printf("%s %s\n", r.Config.Multiplexer, r.Config.Version)
		return StatusSuccess
	case flags.NArg() == 0:
		r.printUsage(r.Formatter.Writer)
		return StatusSuccess
	}

	rest := flags.Args()
	if rest[0] == "help" {
		return r.runHelp(rest[1:])
	}
	return r.Execute(rest[0], rest[1:])
}

// Execute parses args against the grammar of the named command and runs it.
func (r *Router) Execute(name string, args []string) Status {
	c, ok := r.commands[name]
	if !ok {
		r.Formatter.Errorf("%s: unknown command\n", name)
		r.printUsage(r.Formatter.ErrWriter)
		return StatusInvalidUsage
	}

	fs := flag.NewFlagSet(c.Name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	run := c.bind(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			r.printCommandUsage(r.Formatter.Writer, c)
			return StatusSuccess
		}
		r.Formatter.Errorf("%s: %s\n", c.Name, err)
		r.printCommandUsage(r.Formatter.ErrWriter, c)
		return StatusInvalidUsage
	}
	return run(r, fs.Args())
}

// IsBuiltin returns true if name selects a command.
func (r *Router) IsBuiltin(name string) bool {
	_, ok := r.commands[name]
	return ok
}

// CommandNames returns all registered command names and aliases, sorted.
func (r *Router) CommandNames() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Router) missingOperand(name string) Status {
	r.Formatter.Errorf("%s: missing operand\n", name)
	r.Formatter.Errorf("Try '%s --help' for more information.\n", name)
	return StatusInvalidUsage
}

func aliasList(c *Command) string {
	if len(c.Aliases) == 0 {
		return ""
	}
	return " (alias: " + strings.Join(c.Aliases, ", ") + ")"
}
