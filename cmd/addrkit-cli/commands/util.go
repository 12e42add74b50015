package commands

import (
	"os"

	"golang.org/x/term"
)

// isStdinPiped returns true if our input comes from a pipe or redirect
// instead of an interactive terminal
func isStdinPiped() bool {
	return !term.IsTerminal(int(os.Stdin.Fd()))
}

// isStdoutPiped returns true if the output goes to a pipe or redirect
func isStdoutPiped() bool {
	return !term.IsTerminal(int(os.Stdout.Fd()))
}
