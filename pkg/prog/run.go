package prog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"src.conslist.dev/pkg/errutil"
	"src.conslist.dev/pkg/list"
)

func run(fds [3]*os.File, f *Flags, args []string) error {
	if f.JSON && f.YAML {
		return BadUsage("-json and -yaml are mutually exclusive")
	}
	bound, err := parseOps(args)
	if err != nil {
		return err
	}

	l, err := readList(fds[0])
	if err != nil {
		return err
	}
	logger.Printf("read list of %d elements", l.Len())

	for _, b := range bound {
		if err := b.op.apply(&l, b.arg); err != nil {
			return err
		}
		logger.Printf("%s: %d elements left", b.op.name, l.Len())
	}

	return writeList(fds[1], f, l)
}

// readList decodes one YAML document from r. JSON input is accepted since it
// is also valid YAML. Empty input is decoded as an empty list.
func readList(r io.Reader) (list.List[any], error) {
	var l list.List[any]
	err := yaml.NewDecoder(r).Decode(&l)
	if err != nil && !errors.Is(err, io.EOF) {
		return list.List[any]{}, fmt.Errorf("cannot read input: %w", err)
	}
	return l, nil
}

func writeList(out *os.File, f *Flags, l list.List[any]) error {
	switch {
	case f.JSON:
		data, err := json.Marshal(l)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "%s\n", data)
		return err
	case f.YAML:
		enc := yaml.NewEncoder(out)
		return errutil.Multi(enc.Encode(l), enc.Close())
	case isTerminal(out.Fd()):
		_, err := fmt.Fprintln(out, l.Repr(0))
		return err
	default:
		_, err := fmt.Fprintln(out, l)
		return err
	}
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
