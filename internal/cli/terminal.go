package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether out is an interactive terminal.
func IsTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
