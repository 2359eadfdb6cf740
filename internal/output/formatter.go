package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Formatter handles stdout listings and stderr diagnostics.
// Output ends up in machine logs, so it never carries escape sequences.
type Formatter struct {
	Writer    io.Writer
	ErrWriter io.Writer

	plain *color.Color
}

// NewFormatter creates a new output formatter on stdout and stderr.
func NewFormatter() *Formatter {
	return NewFormatterTo(os.Stdout, os.Stderr)
}

// NewFormatterTo creates a formatter writing to the given streams.
func NewFormatterTo(w, errW io.Writer) *Formatter {
	plain := color.New()
	plain.DisableColor()
	return &Formatter{
		Writer:    w,
		ErrWriter: errW,
		plain:     plain,
	}
}

// Printf prints formatted text to stdout.
func (f *Formatter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(f.Writer, format, args...)
}

// Println prints a line to stdout.
func (f *Formatter) Println(args ...interface{}) {
	fmt.Fprintln(f.Writer, args...)
}

// Errorf prints a formatted error message to stderr.
func (f *Formatter) Errorf(format string, args ...interface{}) {
	f.plain.Fprintf(f.ErrWriter, format, args...)
}

// PathErrorf prints a one-line diagnostic prefixed with the offending path.
func (f *Formatter) PathErrorf(path, format string, args ...interface{}) {
	f.Errorf("%s: %s\n", path, fmt.Sprintf(format, args...))
}

// --- ls output ---

// PrintHeader prints the "<path>:" line that opens a directory group.
// Every group but the first is separated from the previous one by a blank line.
func (f *Formatter) PrintHeader(path string, first bool) {
	if !first {
		fmt.Fprintln(f.Writer)
	}
	fmt.Fprintf(f.Writer, "%s:\n", f.plain.Sprint(path))
}
