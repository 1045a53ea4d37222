// Package prog provides the entry point to conslist, a program that applies
// list operations to a sequence read from stdin.
package prog

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"src.conslist.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[prog] ")

// Flags keeps command-line flags.
type Flags struct {
	Log string

	Help, JSON, YAML bool
}

func newFlagSet(f *Flags) *flag.FlagSet {
	fs := flag.NewFlagSet("conslist", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.Log, "log", "", "a file to write debug log to")
	fs.BoolVar(&f.Help, "help", false, "show usage help and quit")
	fs.BoolVar(&f.JSON, "json", false, "write the result as JSON")
	fs.BoolVar(&f.YAML, "yaml", false, "write the result as YAML")

	return fs
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: conslist [flags] op...")
	fmt.Fprintln(out, "Reads a YAML or JSON sequence from stdin and applies each op in order.")
	fmt.Fprintln(out, "Supported ops:")
	for _, op := range ops {
		fmt.Fprintf(out, "  %-15s %s\n", op.usage, op.help)
	}
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Run parses command-line flags and runs the program. It returns the exit
// status of the program.
func Run(fds [3]*os.File, args []string) int {
	f := &Flags{}
	fs := newFlagSet(f)
	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// -h is not defined, but (*flag.FlagSet).Parse returns ErrHelp
			// for it. Treat it like any other undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if f.Log != "" {
		err = logutil.SetOutputFile(f.Log)
		if err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}

	if f.Help {
		usage(fds[1], fs)
		return 0
	}

	err = run(fds, f, fs.Args())
	if err == nil {
		return 0
	}
	fmt.Fprintln(fds[2], err)
	var bad badUsageError
	if errors.As(err, &bad) {
		usage(fds[2], fs)
	}
	return 2
}

// BadUsage returns a special error that causes Run to print out a message and
// the usage information, and exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }
