// Package prompt asks the user questions.
//
// Commands depend on the Prompter interface. Terminal uses pterm's
// interactive widgets and needs a TTY; Lines reads answers one per line
// from any reader so input can be piped. Scripted replays canned answers
// in tests.
package prompt

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Prompter asks questions and returns the answers
type Prompter interface {
	// Select shows options and returns the index of the chosen one
	Select(message string, options []string) (int, error)

	// Text asks for a line of text; an empty answer yields defaultValue
	Text(message, defaultValue string) (string, error)

	// Secret asks for text without echoing it
	Secret(message string) (string, error)

	// Confirm asks a yes/no question
	Confirm(message string, defaultValue bool) (bool, error)
}

// Default returns Terminal when stdin is a terminal and Lines over the
// standard streams otherwise
func Default() Prompter {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return NewTerminal()
	}
	return NewLines(os.Stdin, os.Stderr)
}
