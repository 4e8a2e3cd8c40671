package cmd

import (
	"io"
	"os"
)

// openInput returns the reader a subcommand should scan: the named
// file, or stdin when no argument (or "-") was given.
func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(args[0])
}
