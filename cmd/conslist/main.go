// Command conslist reads a sequence from stdin, applies list operations to it
// and writes the result to stdout.
package main

import (
	"os"

	"src.conslist.dev/pkg/prog"
)

func main() {
	os.Exit(prog.Run([3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args))
}
